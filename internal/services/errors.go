// Package services defines the business logic for swap requests, profiles,
// and skills. This file centralizes the service-level error values so that
// they can be consistently returned by service methods and checked by callers
// with errors.Is.
//
// The taxonomy matters: permanent business rejections must never be confused
// with transient infrastructure failures, because callers may retry the
// latter and must never retry the former. Translation into user-facing
// messages or HTTP status codes is performed at the handler layer.
package services

import "errors"

// Permanent rejections of a create request. Identical inputs against
// identical store state always produce the same rejection.
var (
	// ErrSelfSwap is returned when a user addresses a swap request to
	// themselves.
	ErrSelfSwap = errors.New("cannot send a swap request to yourself")

	// ErrReceiverNotVisible is returned when the receiver does not exist or
	// their profile is private. A private profile cannot be targeted even
	// with a valid id, and the two cases are deliberately indistinguishable.
	ErrReceiverNotVisible = errors.New("receiver profile is not visible")

	// ErrSkillNotOwned is returned when the offered skill is not owned by the
	// sender, or the requested skill is not owned by the receiver.
	ErrSkillNotOwned = errors.New("skill is not owned by the expected user")

	// ErrDuplicatePending is returned when a pending swap already exists for
	// the same ordered (sender, receiver) pair.
	ErrDuplicatePending = errors.New("a pending swap request to this user already exists")
)

// Permanent rejections of a respond request.
var (
	// ErrSwapNotFound indicates that the requested swap does not exist.
	ErrSwapNotFound = errors.New("swap request not found")

	// ErrNotAuthorized is returned when the acting user is not the actor the
	// action requires (receiver for accept/reject, sender for delete). It is
	// reported before any state inspection so callers cannot probe a swap's
	// status through error ordering.
	ErrNotAuthorized = errors.New("not authorized to perform this action")

	// ErrInvalidTransition is returned when the swap's current status does
	// not permit the requested action; terminal states permit none.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReceiverUnavailable is returned when an accept is attempted while
	// the receiver's availability flag is off. The swap stays pending.
	ErrReceiverUnavailable = errors.New("receiver is not available for swaps")
)

// Transient failures. Callers may retry these; they are never business
// rejections.
var (
	// ErrConcurrentModification is returned when a respond lost the
	// optimistic-concurrency race twice in a row.
	ErrConcurrentModification = errors.New("swap request was modified concurrently")

	// ErrStoreTimeout is returned when the store did not answer within the
	// operation's deadline.
	ErrStoreTimeout = errors.New("store operation timed out")
)

// Profile and skill service errors.
var (
	// ErrProfileNotFound indicates the requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmptyUserID is returned when an operation is attempted without a
	// user id.
	ErrEmptyUserID = errors.New("user id is empty")

	// ErrDuplicateProfile is returned when registering a profile for a user
	// that already has one.
	ErrDuplicateProfile = errors.New("profile already exists")

	// ErrInvalidAvailability is returned when a profile carries an unknown
	// availability hint.
	ErrInvalidAvailability = errors.New("unknown availability value")

	// ErrSkillNotFound indicates the requested skill does not exist.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrEmptySkillName is returned when a skill is created with a blank name.
	ErrEmptySkillName = errors.New("skill name is empty")
)

// IsRetryable reports whether err is a transient failure the caller may
// safely retry. Business rejections are never retryable.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrStoreTimeout)
}
