// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, forbidden, conflict) mirror common HTTP
//     status semantics to aid interoperability.
//   - Domain-specific codes (e.g., duplicate_pending, invalid_transition) carry
//     swap-lifecycle rejections that a bare status code cannot convey: a 409 can
//     mean "you already have a pending request" or "this swap is already closed",
//     and clients need to tell the two apart.
//   - Retryable codes (concurrent_modification, store_timeout) are always paired
//     with a Retry-After header; every other code is a permanent rejection and
//     must not be retried with identical input.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "duplicate_pending",
//	  "message": "a pending swap request to this user already exists"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Swap lifecycle — permanent rejections:
	ErrCodeSelfSwap            = "self_swap_forbidden"
	ErrCodeReceiverNotVisible  = "receiver_not_visible"
	ErrCodeSkillNotOwned       = "skill_ownership_mismatch"
	ErrCodeDuplicatePending    = "duplicate_pending"
	ErrCodeInvalidTransition   = "invalid_transition"
	ErrCodeReceiverUnavailable = "receiver_unavailable"

	// Swap lifecycle — transient (paired with Retry-After):
	ErrCodeConcurrentModification = "concurrent_modification"
	ErrCodeStoreTimeout           = "store_timeout"

	// Generic operation failures:
	ErrCodeCreateFailed = "create_failed"
	ErrCodeListFailed   = "list_failed"
)
