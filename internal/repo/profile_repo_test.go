package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
)

func TestProfileCRUD(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Profile{})

	p := &domain.Profile{UserID: "u1", Bio: "hi", Availability: "weekends", IsPublic: true, IsAvailable: true}
	if err := CreateProfile(context.Background(), db, p); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("CreatedAt must be set")
	}

	got, err := GetProfile(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Bio != "hi" || !got.IsPublic {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	if err := UpdateProfile(context.Background(), db, "u1", map[string]any{"bio": "new", "is_public": false}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, _ = GetProfile(context.Background(), db, "u1")
	if got.Bio != "new" || got.IsPublic {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestProfileNotFound(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Profile{})

	if _, err := GetProfile(context.Background(), db, "ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	err := UpdateProfile(context.Background(), db, "ghost", map[string]any{"bio": "x"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on zero rows, got %v", err)
	}
}

func TestListPublicProfiles(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Profile{})

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, p := range []domain.Profile{
		{UserID: "old", IsPublic: true},
		{UserID: "new", IsPublic: true},
		{UserID: "hidden", IsPublic: false},
	} {
		p.CreatedAt = t1.Add(time.Duration(i) * time.Hour)
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed %s: %v", p.UserID, err)
		}
	}

	out, err := ListPublicProfiles(context.Background(), db, 0, 0)
	if err != nil {
		t.Fatalf("ListPublicProfiles: %v", err)
	}
	if len(out) != 2 || out[0].UserID != "new" || out[1].UserID != "old" {
		t.Fatalf("expected new,old newest-first, got %+v", out)
	}

	out, err = ListPublicProfiles(context.Background(), db, 1, 1)
	if err != nil || len(out) != 1 || out[0].UserID != "old" {
		t.Fatalf("offset/limit failed, got %+v err=%v", out, err)
	}
}
