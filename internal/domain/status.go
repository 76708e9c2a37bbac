// Package domain defines the persistence models and core value types for the
// skill-swap application. This file holds the SwapRequest status state machine:
// the closed set of statuses, the response actions, and the single transition
// table every caller must go through. Keeping the table here (and nowhere else)
// is what prevents call sites from drifting into inconsistent status strings.
package domain

import "fmt"

// SwapStatus is the lifecycle status of a SwapRequest. It is a closed
// enumeration: only the constants below are valid, and transitions are
// restricted to the table encoded in CanTransition.
type SwapStatus string

const (
	// StatusPending is the initial status: the request awaits the receiver.
	StatusPending SwapStatus = "pending"
	// StatusAccepted is terminal: the receiver accepted the swap.
	StatusAccepted SwapStatus = "accepted"
	// StatusRejected is terminal: the receiver declined the swap.
	StatusRejected SwapStatus = "rejected"
	// StatusDeleted is terminal: the sender withdrew the request. The row is
	// kept for history; deletion is a status, never a physical removal.
	StatusDeleted SwapStatus = "deleted"
)

// ParseStatus validates a raw string as a SwapStatus.
func ParseStatus(s string) (SwapStatus, error) {
	switch SwapStatus(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusDeleted:
		return SwapStatus(s), nil
	}
	return "", fmt.Errorf("unknown swap status %q", s)
}

// Terminal reports whether no further transition is permitted from s.
func (s SwapStatus) Terminal() bool { return s != StatusPending }

// SwapAction is a response action applied to a pending SwapRequest.
type SwapAction string

const (
	ActionAccept SwapAction = "accept"
	ActionReject SwapAction = "reject"
	ActionDelete SwapAction = "delete"
)

// ParseAction validates a raw string as a SwapAction.
func ParseAction(s string) (SwapAction, error) {
	switch SwapAction(s) {
	case ActionAccept, ActionReject, ActionDelete:
		return SwapAction(s), nil
	}
	return "", fmt.Errorf("unknown swap action %q", s)
}

// Target returns the status an action transitions a pending request to.
func (a SwapAction) Target() SwapStatus {
	switch a {
	case ActionAccept:
		return StatusAccepted
	case ActionReject:
		return StatusRejected
	case ActionDelete:
		return StatusDeleted
	}
	return ""
}

// CanTransition reports whether action may be applied to a request currently
// in status from. Only pending requests transition; every terminal status
// rejects every action, which makes repeat transitions idempotently invalid.
func CanTransition(from SwapStatus, action SwapAction) bool {
	if from != StatusPending {
		return false
	}
	switch action {
	case ActionAccept, ActionReject, ActionDelete:
		return true
	}
	return false
}

// RequiredActor identifies which side of the swap may perform an action:
// the receiver accepts or rejects, the sender deletes.
func (a SwapAction) RequiredActor(s *SwapRequest) string {
	if a == ActionDelete {
		return s.SenderID
	}
	return s.ReceiverID
}
