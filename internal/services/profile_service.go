// Package services – ProfileService
//
// This file implements the ProfileService, the user directory's write side:
// registering a profile and updating its visibility, availability, and
// free-form fields. The swap engine only ever reads profiles (through
// UserDirectory); every mutation funnels through here.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/repo"
)

// validAvailabilities are the accepted schedule hints, carried over from the
// platform's profile vocabulary.
var validAvailabilities = map[string]struct{}{
	"weekdays": {}, "weekends": {}, "evenings": {}, "mornings": {}, "all_day": {},
}

// ProfileService manages profile registration and updates.
type ProfileService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// ProfileUpdate carries the mutable profile fields; nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	Bio          *string
	Location     *string
	Phone        *string
	Availability *string
	IsPublic     *bool
	IsAvailable  *bool
}

// Register creates a profile for userID. The availability hint defaults to
// "weekends" and unknown hints are rejected before any write. A second
// registration for the same user yields ErrDuplicateProfile.
func (s *ProfileService) Register(ctx context.Context, userID string, p ProfileUpdate) (*domain.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	prof := &domain.Profile{
		UserID:       userID,
		Availability: "weekends",
		IsPublic:     true,
		IsAvailable:  true,
	}
	if p.Bio != nil {
		prof.Bio = *p.Bio
	}
	if p.Location != nil {
		prof.Location = *p.Location
	}
	if p.Phone != nil {
		prof.Phone = *p.Phone
	}
	if p.Availability != nil {
		av := strings.ToLower(strings.TrimSpace(*p.Availability))
		if _, ok := validAvailabilities[av]; !ok {
			return nil, ErrInvalidAvailability
		}
		prof.Availability = av
	}
	if p.IsPublic != nil {
		prof.IsPublic = *p.IsPublic
	}
	if p.IsAvailable != nil {
		prof.IsAvailable = *p.IsAvailable
	}

	if err := repo.CreateProfile(ctx, s.DB, prof); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateProfile
		}
		return nil, err
	}
	return prof, nil
}

// Get returns the profile for userID, or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update applies the non-nil fields of upd to the caller's own profile and
// returns the refreshed row.
func (s *ProfileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*domain.Profile, error) {
	fields := map[string]any{}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.Location != nil {
		fields["location"] = *upd.Location
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.Availability != nil {
		av := strings.ToLower(strings.TrimSpace(*upd.Availability))
		if _, ok := validAvailabilities[av]; !ok {
			return nil, ErrInvalidAvailability
		}
		fields["availability"] = av
	}
	if upd.IsPublic != nil {
		fields["is_public"] = *upd.IsPublic
	}
	if upd.IsAvailable != nil {
		fields["is_available"] = *upd.IsAvailable
	}
	if len(fields) > 0 {
		if err := repo.UpdateProfile(ctx, s.DB, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, userID)
}

// ListPublic returns a page of public profiles, newest-first.
func (s *ProfileService) ListPublic(ctx context.Context, page, pageSize int) ([]domain.Profile, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return repo.ListPublicProfiles(ctx, s.DB, (page-1)*pageSize, pageSize)
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
