// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Profile
// model — the user directory the swap engine reads its visibility and
// availability flags from.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
)

// CreateProfile inserts a profile row for userID. CreatedAt is set to UTC.
func CreateProfile(ctx context.Context, db *gorm.DB, p *domain.Profile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(p).Error
}

// GetProfile fetches a profile by user ID, or ErrNotFound if missing.
func GetProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.Profile, error) {
	var p domain.Profile
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies the given column values to the profile owned by
// userID. Returns ErrNotFound when no row is affected.
func UpdateProfile(ctx context.Context, db *gorm.DB, userID string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPublicProfiles returns public profiles ordered by creation time
// descending. Intended for directory-style browsing, not search.
func ListPublicProfiles(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Profile, error) {
	var out []domain.Profile
	q := db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
