// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the SwapRequest
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. The one deliberate exception is
// UpdateSwapStatus, which carries the optimistic-concurrency predicate —
// keeping the compare-and-swap in a single place is what lets the service
// layer reason about respond races.
//
// Error semantics:
//   - When a swap is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - When a conditional status update loses the version race,
//     UpdateSwapStatus returns ErrVersionConflict.
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrVersionConflict is returned by UpdateSwapStatus when the row's version
// changed between the caller's read and the conditional write.
var ErrVersionConflict = errors.New("swap version conflict")

// CreateSwap inserts a new pending SwapRequest row. The swap ID is a randomly
// generated UUID and CreatedAt is set to UTC. Validation is the service
// layer's job; this function persists whatever it is given.
func CreateSwap(ctx context.Context, db *gorm.DB, senderID, receiverID, offeredSkillID, requestedSkillID, message string) (*domain.SwapRequest, error) {
	s := &domain.SwapRequest{
		ID:               uuid.NewString(),
		SenderID:         senderID,
		ReceiverID:       receiverID,
		OfferedSkillID:   offeredSkillID,
		RequestedSkillID: requestedSkillID,
		Status:           domain.StatusPending,
		Message:          message,
		CreatedAt:        time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSwap fetches a single swap by its ID. Returns ErrNotFound when missing.
func GetSwap(ctx context.Context, db *gorm.DB, id string) (*domain.SwapRequest, error) {
	var s domain.SwapRequest
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// PendingExists reports whether a pending swap already exists for the ordered
// (sender, receiver) pair. The mirror direction is a distinct pair and does
// not count.
func PendingExists(ctx context.Context, db *gorm.DB, senderID, receiverID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.SwapRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, domain.StatusPending).
		Count(&n).Error
	return n > 0, err
}

// UpdateSwapStatus performs the optimistic compare-and-swap transition:
// the row is updated only if its version still equals the version the caller
// read. On success the version is incremented; if no row matches (the swap
// changed, or vanished), ErrVersionConflict is returned and the caller decides
// whether to re-read and retry.
func UpdateSwapStatus(ctx context.Context, db *gorm.DB, id string, version int64, to domain.SwapStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.SwapRequest{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{
			"status":     to,
			"version":    version + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// swapScope composes the WHERE clause for user-scoped listings.
func swapScope(db *gorm.DB, userID string, status domain.SwapStatus, dir domain.Direction) *gorm.DB {
	q := db.Model(&domain.SwapRequest{})
	switch dir {
	case domain.DirectionSent:
		q = q.Where("sender_id = ?", userID)
	case domain.DirectionReceived:
		q = q.Where("receiver_id = ?", userID)
	default:
		q = q.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return q
}

// CountSwapsForUser returns the number of swaps matching the user scope and
// optional status/direction filters.
func CountSwapsForUser(ctx context.Context, db *gorm.DB, userID string, status domain.SwapStatus, dir domain.Direction) (int64, error) {
	var total int64
	err := swapScope(db.WithContext(ctx), userID, status, dir).Count(&total).Error
	return total, err
}

// ListSwapsForUser returns a page of swaps involving userID, newest-first by
// creation time (ID breaks ties for deterministic ordering). status == ""
// means any status; dir defaults to both directions.
func ListSwapsForUser(ctx context.Context, db *gorm.DB, userID string, status domain.SwapStatus, dir domain.Direction, offset, limit int) ([]domain.SwapRequest, error) {
	var out []domain.SwapRequest
	q := swapScope(db.WithContext(ctx), userID, status, dir).
		Order("created_at DESC, id DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// ListRecentResponded returns the most recent swaps involving userID that have
// left the pending state, ordered by last update. Used to derive the user's
// notification feed.
func ListRecentResponded(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.SwapRequest, error) {
	var out []domain.SwapRequest
	q := db.WithContext(ctx).
		Model(&domain.SwapRequest{}).
		Where("(sender_id = ? OR receiver_id = ?) AND status <> ?", userID, userID, domain.StatusPending).
		Order("updated_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
