// Package services – collaborator lookups
//
// The swap engine's boundary is two read-only lookups: a user directory
// (id → exists / public / available) and a skill-ownership lookup
// (skill id → owning user). They are defined as narrow interfaces so tests
// and alternative backends can stand in; the GORM-backed implementations
// below are what production wiring uses.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/repo"
)

// UserInfo is the projection of a profile the engine cares about.
type UserInfo struct {
	Exists      bool
	IsPublic    bool
	IsAvailable bool
}

// UserDirectory answers existence, visibility, and availability for a user id.
// A missing user is not an error: it returns UserInfo{Exists: false}.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (UserInfo, error)
}

// SkillDirectory resolves a skill id to its owning user. A missing skill
// returns ErrSkillNotFound.
type SkillDirectory interface {
	GetSkillOwner(ctx context.Context, skillID string) (string, error)
}

// PendingChecker reports whether a pending swap exists for an ordered
// (sender, receiver) pair. The validation gate uses it for the pre-check;
// the engine re-runs the same check inside the write transaction.
type PendingChecker interface {
	HasPending(ctx context.Context, senderID, receiverID string) (bool, error)
}

// GormDirectory implements UserDirectory, SkillDirectory, and PendingChecker
// against the application database.
type GormDirectory struct {
	DB *gorm.DB
}

// GetUser loads the profile flags for id.
func (d *GormDirectory) GetUser(ctx context.Context, id string) (UserInfo, error) {
	p, err := repo.GetProfile(ctx, d.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserInfo{}, nil
		}
		return UserInfo{}, err
	}
	return UserInfo{Exists: true, IsPublic: p.IsPublic, IsAvailable: p.IsAvailable}, nil
}

// GetSkillOwner resolves the owning user of skillID.
func (d *GormDirectory) GetSkillOwner(ctx context.Context, skillID string) (string, error) {
	s, err := repo.GetSkill(ctx, d.DB, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSkillNotFound
		}
		return "", err
	}
	return s.OwnerID, nil
}

// HasPending proxies repo.PendingExists.
func (d *GormDirectory) HasPending(ctx context.Context, senderID, receiverID string) (bool, error) {
	return repo.PendingExists(ctx, d.DB, senderID, receiverID)
}
