package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-swap-backend/internal/domain"
)

func TestIdempotency_RoundTrip(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	rec, err := CreateIdempotency(context.Background(), db, "u1", "k1", "u2", "swap-1", 201, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.SwapID != "swap-1" || rec.ReceiverID != "u2" || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(context.Background(), db, "u1", "k1", now)
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.SwapID != "swap-1" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	// The key is scoped to the user.
	if _, err := GetIdempotency(context.Background(), db, "u9", "k1", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestIdempotency_BlankKeyAndExpiry(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	if _, err := GetIdempotency(context.Background(), db, "u1", "  ", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank key, got %v", err)
	}

	if _, err := CreateIdempotency(context.Background(), db, "u1", "k1", "u2", "swap-1", 201, time.Millisecond); err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	// Look up after the record's expiry instant.
	if _, err := GetIdempotency(context.Background(), db, "u1", "k1", now.Add(time.Minute)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired record, got %v", err)
	}
}

func TestIdempotency_Duplicate(t *testing.T) {
	db := newSwapRepoDB(t, &domain.Idempotency{})

	if _, err := CreateIdempotency(context.Background(), db, "u1", "k1", "u2", "swap-1", 201, time.Hour); err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	_, err := CreateIdempotency(context.Background(), db, "u1", "k1", "u3", "swap-2", 201, time.Hour)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// A different user may reuse the same key.
	if _, err := CreateIdempotency(context.Background(), db, "u2", "k1", "u3", "swap-3", 201, time.Hour); err != nil {
		t.Fatalf("key reuse across users: %v", err)
	}
}
