// Package domain defines the persistence models for the skill-swap
// application. This file holds the idempotency record used to make swap
// creation safe to retry.
package domain

import "time"

// Idempotency records the outcome of a previously processed swap-creation
// request, keyed by (user_id, key). Replaying the same key returns the
// originally created swap instead of re-running side effects; the receiver is
// stored so a key reused with different parameters can be rejected.
type Idempotency struct {
	ID         string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:1"`
	Key        string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:2"`
	ReceiverID string    `gorm:"type:TEXT NOT NULL"`
	SwapID     string    `gorm:"type:TEXT NOT NULL"`
	Status     int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt  time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
