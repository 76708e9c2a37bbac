// Package services – SwapValidator
//
// This file implements the validation gate for swap creation: pure decision
// logic that, given the proposed swap and current store state, either
// approves it or rejects it with a specific sentinel error. It performs no
// mutation — every check is a read against the collaborator lookups.
//
// Check order is part of the contract. Receiver visibility comes first
// because it is the cheapest and most informative "not found / not allowed"
// signal to a caller, and the first failing check wins so rejections are
// deterministic and testable.
package services

import "context"

// SwapValidator approves or rejects swap creation requests.
type SwapValidator struct {
	Users   UserDirectory
	Skills  SkillDirectory
	Pending PendingChecker
}

// ValidateCreate runs the creation checks in order and returns the first
// failure:
//
//  1. receiver exists and is public           → ErrReceiverNotVisible
//  2. sender != receiver                      → ErrSelfSwap
//  3. offered skill owned by sender           → ErrSkillNotOwned
//  4. requested skill owned by receiver       → ErrSkillNotOwned
//  5. no pending row for (sender, receiver)   → ErrDuplicatePending
//
// The duplicate-pending check is scoped to the ordered pair: a pending swap
// in the mirror direction does not block this one. Lookup failures (store
// errors) are propagated untouched so the engine can classify them as
// transient.
func (v *SwapValidator) ValidateCreate(ctx context.Context, senderID, receiverID, offeredSkillID, requestedSkillID string) error {
	recv, err := v.Users.GetUser(ctx, receiverID)
	if err != nil {
		return err
	}
	if !recv.Exists || !recv.IsPublic {
		return ErrReceiverNotVisible
	}

	if senderID == receiverID {
		return ErrSelfSwap
	}

	owner, err := v.Skills.GetSkillOwner(ctx, offeredSkillID)
	if err != nil {
		if err == ErrSkillNotFound {
			return ErrSkillNotOwned
		}
		return err
	}
	if owner != senderID {
		return ErrSkillNotOwned
	}

	owner, err = v.Skills.GetSkillOwner(ctx, requestedSkillID)
	if err != nil {
		if err == ErrSkillNotFound {
			return ErrSkillNotOwned
		}
		return err
	}
	if owner != receiverID {
		return ErrSkillNotOwned
	}

	exists, err := v.Pending.HasPending(ctx, senderID, receiverID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePending
	}
	return nil
}
