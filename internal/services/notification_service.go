// Package services – NotificationService
//
// This file derives a user's notification feed from their recent swap
// activity: every swap involving the user that has left the pending state
// becomes one entry, newest activity first. The feed is computed on read —
// the engine's emitted events feed external sinks, not this endpoint.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/repo"
)

// Notification is one entry in a user's feed.
type Notification struct {
	SwapID     string            `json:"swap_id"`
	Action     string            `json:"action"` // "swap_accepted", "swap_rejected", "swap_deleted"
	SenderID   string            `json:"sender_id"`
	ReceiverID string            `json:"receiver_id"`
	Status     domain.SwapStatus `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NotificationService computes notification feeds.
type NotificationService struct {
	// DB is the GORM handle used for reads.
	DB *gorm.DB

	// Limit caps the feed length; values <= 0 default to 10.
	Limit int
}

// ListForUser returns the most recent non-pending swaps involving userID as
// notification entries, newest activity first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = 10
	}
	swaps, err := repo.ListRecentResponded(ctx, s.DB, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(swaps))
	for _, sw := range swaps {
		out = append(out, Notification{
			SwapID:     sw.ID,
			Action:     "swap_" + string(sw.Status),
			SenderID:   sw.SenderID,
			ReceiverID: sw.ReceiverID,
			Status:     sw.Status,
			Timestamp:  sw.UpdatedAt,
		})
	}
	return out, nil
}
