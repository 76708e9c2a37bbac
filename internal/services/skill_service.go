// Package services – SkillService
//
// This file implements the SkillService: creating and listing the skills a
// user can put into a swap. Skill names are normalized (trimmed, collapsed
// whitespace, title-cased) so "  go   programming " and "Go Programming"
// land as the same stored name.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/repo"
)

// SkillService manages skill creation and listing.
type SkillService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// NameMaxLen caps stored skill names by rune length.
	NameMaxLen int
	// NameLocale drives title casing of skill names.
	NameLocale language.Tag
}

// NewSkillService constructs a SkillService with sane defaults.
func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{DB: db, NameMaxLen: 100, NameLocale: language.English}
}

// Create inserts a skill owned by ownerID. Blank names are rejected with
// ErrEmptySkillName.
func (s *SkillService) Create(ctx context.Context, ownerID, name, category, description string) (*domain.Skill, error) {
	name = s.normalizeName(name)
	if name == "" {
		return nil, ErrEmptySkillName
	}
	return repo.CreateSkill(ctx, s.DB, ownerID, name, strings.TrimSpace(category), strings.TrimSpace(description))
}

// Get returns a skill by id, or ErrSkillNotFound.
func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	sk, err := repo.GetSkill(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return sk, nil
}

// ListForOwner returns all skills owned by ownerID, name-ordered.
func (s *SkillService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Skill, error) {
	return repo.ListSkillsByOwner(ctx, s.DB, ownerID)
}

// List returns a page of skills, optionally restricted to a category string.
func (s *SkillService) List(ctx context.Context, category string, page, pageSize int) ([]domain.Skill, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	return repo.ListSkills(ctx, s.DB, strings.TrimSpace(category), (page-1)*pageSize, pageSize)
}

// normalizeName trims, collapses whitespace, title-cases, and clips a skill
// name.
func (s *SkillService) normalizeName(name string) string {
	name = skillWhitespaceRE.ReplaceAllString(strings.TrimSpace(name), " ")
	if name == "" {
		return ""
	}
	tag := s.NameLocale
	if tag == language.Und {
		tag = language.English
	}
	name = cases.Title(tag, cases.NoLower).String(strings.ToLower(name))
	if s.NameMaxLen > 0 && utf8.RuneCountInString(name) > s.NameMaxLen {
		name = string([]rune(name)[:s.NameMaxLen])
	}
	return name
}

// skillWhitespaceRE collapses consecutive whitespace to a single space.
var skillWhitespaceRE = regexp.MustCompile(`\s+`)
