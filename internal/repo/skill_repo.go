// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Skill model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
)

// CreateSkill inserts a skill owned by ownerID with a generated UUID.
func CreateSkill(ctx context.Context, db *gorm.DB, ownerID, name, category, description string) (*domain.Skill, error) {
	s := &domain.Skill{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSkill fetches a skill by ID, or ErrNotFound if missing.
func GetSkill(ctx context.Context, db *gorm.DB, id string) (*domain.Skill, error) {
	var s domain.Skill
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkillsByOwner returns all skills owned by ownerID, name-ordered.
func ListSkillsByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]domain.Skill, error) {
	var out []domain.Skill
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

// ListSkills returns skills ordered by name, optionally filtered to a stored
// category string.
func ListSkills(ctx context.Context, db *gorm.DB, category string, offset, limit int) ([]domain.Skill, error) {
	var out []domain.Skill
	q := db.WithContext(ctx).Order("name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
