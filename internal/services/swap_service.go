// Package services – SwapService
//
// This file implements the swap lifecycle engine. It owns the SwapRequest
// state machine: the validated create, the accept/reject/delete transitions
// under an at-most-one-successful-transition guarantee, and the user-scoped
// listings. Two races are explicitly closed here:
//
//   - Create race: the duplicate-pending check is re-run inside the write
//     transaction, so two concurrent creates for the same ordered pair yield
//     exactly one pending row (SQLite serializes writers, which makes the
//     in-transaction re-check equivalent to a unique index).
//   - Respond race: transitions are an optimistic compare-and-swap on the
//     row's version column. The loser re-reads and retries once; losing again
//     surfaces ErrConcurrentModification, and a retry that finds the swap
//     already terminal surfaces ErrInvalidTransition.
//
// Store timeouts map to ErrStoreTimeout so callers can distinguish transient
// infrastructure failures from business rejections. Lifecycle events are
// emitted after commit, best-effort, and never fail the operation.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// swap/actor identifiers.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/notify"
	"github.com/tbourn/go-swap-backend/internal/repo"
)

// SwapService implements the swap-request lifecycle engine.
type SwapService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Gate validates creation requests before any write happens.
	Gate *SwapValidator
	// Users answers the receiver-availability precondition on accept.
	Users UserDirectory
	// Emitter receives lifecycle events, best-effort.
	Emitter notify.Emitter

	// StoreTimeout bounds each operation when the caller supplies no
	// deadline of its own. Zero disables the bound.
	StoreTimeout time.Duration
}

// NewSwapService wires the engine against the application database with the
// GORM-backed directory and the given event sink.
func NewSwapService(db *gorm.DB, emitter notify.Emitter, storeTimeout time.Duration) *SwapService {
	dir := &GormDirectory{DB: db}
	return &SwapService{
		DB:           db,
		Gate:         &SwapValidator{Users: dir, Skills: dir, Pending: dir},
		Users:        dir,
		Emitter:      emitter,
		StoreTimeout: storeTimeout,
	}
}

// bound applies the service's store timeout when the context has no deadline.
func (s *SwapService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.StoreTimeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			return context.WithTimeout(ctx, s.StoreTimeout)
		}
	}
	return ctx, func() {}
}

// mapStore classifies a store error: context expiry becomes the transient
// ErrStoreTimeout, everything else is propagated raw.
func mapStore(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrStoreTimeout
	}
	return err
}

// emit forwards a lifecycle event when an emitter is configured. Emission is
// fire-and-forget and never influences the operation's result.
func (s *SwapService) emit(typ notify.EventType, sw *domain.SwapRequest) {
	if s.Emitter == nil {
		return
	}
	s.Emitter.Emit(notify.Event{
		Type:       typ,
		SwapID:     sw.ID,
		SenderID:   sw.SenderID,
		ReceiverID: sw.ReceiverID,
		OccurredAt: time.Now().UTC(),
	})
}

// Create validates and persists a new pending swap request from senderID to
// receiverID, exchanging offeredSkillID for requestedSkillID. The optional
// message is stored verbatim and is immutable afterwards.
//
// The validation gate runs first; on approval the insert happens inside a
// transaction that re-checks the duplicate-pending invariant against the
// transaction's own snapshot, closing the race between check and insert.
// On success a SwapRequestCreated event is emitted.
func (s *SwapService) Create(ctx context.Context, senderID, receiverID, offeredSkillID, requestedSkillID, message string) (*domain.SwapRequest, error) {
	tr := otel.Tracer("services/SwapService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("swap.sender_id", senderID),
			attribute.String("swap.receiver_id", receiverID),
		),
	)
	defer span.End()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.Gate.ValidateCreate(ctx, senderID, receiverID, offeredSkillID, requestedSkillID); err != nil {
		return nil, mapStore(err)
	}

	var created *domain.SwapRequest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check the duplicate-pending invariant at commit scope: a
		// concurrent create that won the race is visible here even though
		// both passed the gate's pre-check.
		exists, err := repo.PendingExists(ctx, tx, senderID, receiverID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicatePending
		}
		created, err = repo.CreateSwap(ctx, tx, senderID, receiverID, offeredSkillID, requestedSkillID, message)
		return err
	})
	if err != nil {
		return nil, mapStore(err)
	}

	s.emit(notify.EventSwapCreated, created)
	return created, nil
}

// eventFor maps a successful transition to its lifecycle event.
func eventFor(action domain.SwapAction) notify.EventType {
	switch action {
	case domain.ActionAccept:
		return notify.EventSwapAccepted
	case domain.ActionReject:
		return notify.EventSwapRejected
	default:
		return notify.EventSwapDeleted
	}
}

// Respond applies a response action (accept, reject, delete) to the swap on
// behalf of actorID.
//
// Semantics, validated against a fresh snapshot on every attempt:
//   - actorID must be the action's required actor (receiver for
//     accept/reject, sender for delete); otherwise ErrNotAuthorized. The
//     authorization check runs before the state check so an unauthorized
//     caller learns nothing about the swap's current status.
//   - the swap must be pending; terminal states yield ErrInvalidTransition
//     for every action, making repeat transitions idempotently invalid.
//   - accept additionally requires the receiver's availability flag;
//     otherwise ErrReceiverUnavailable with the status unchanged.
//
// The write is an optimistic compare-and-swap on the version column. A lost
// race triggers one internal re-read-and-retry; losing again returns
// ErrConcurrentModification. On success the matching lifecycle event is
// emitted and the updated swap returned.
func (s *SwapService) Respond(ctx context.Context, swapID, actorID string, action domain.SwapAction) (*domain.SwapRequest, error) {
	tr := otel.Tracer("services/SwapService")
	ctx, span := tr.Start(ctx, "Respond",
		trace.WithAttributes(
			attribute.String("swap.id", swapID),
			attribute.String("swap.actor_id", actorID),
			attribute.String("swap.action", string(action)),
		),
	)
	defer span.End()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	if _, err := domain.ParseAction(string(action)); err != nil {
		return nil, ErrInvalidTransition
	}

	const attempts = 2 // initial try + one retry after a lost race
	for i := 0; i < attempts; i++ {
		sw, err := repo.GetSwap(ctx, s.DB, swapID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSwapNotFound
			}
			return nil, mapStore(err)
		}

		if actorID != action.RequiredActor(sw) {
			return nil, ErrNotAuthorized
		}
		if !domain.CanTransition(sw.Status, action) {
			return nil, ErrInvalidTransition
		}
		if action == domain.ActionAccept {
			recv, err := s.Users.GetUser(ctx, sw.ReceiverID)
			if err != nil {
				return nil, mapStore(err)
			}
			if !recv.Exists || !recv.IsAvailable {
				return nil, ErrReceiverUnavailable
			}
		}

		err = repo.UpdateSwapStatus(ctx, s.DB, sw.ID, sw.Version, action.Target())
		if errors.Is(err, repo.ErrVersionConflict) {
			continue // somebody else transitioned first; re-read and re-validate
		}
		if err != nil {
			return nil, mapStore(err)
		}

		sw.Status = action.Target()
		sw.Version++
		sw.UpdatedAt = time.Now().UTC()
		s.emit(eventFor(action), sw)
		return sw, nil
	}
	return nil, ErrConcurrentModification
}

// Get returns a swap by id, restricted to its participants: any other actor
// receives ErrNotAuthorized.
func (s *SwapService) Get(ctx context.Context, swapID, userID string) (*domain.SwapRequest, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	sw, err := repo.GetSwap(ctx, s.DB, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, mapStore(err)
	}
	if !sw.Participant(userID) {
		return nil, ErrNotAuthorized
	}
	return sw, nil
}

// ListForUser returns a page of the user's swaps, newest-first, with optional
// status and direction filters, plus the total count for pagination metadata.
func (s *SwapService) ListForUser(ctx context.Context, userID string, status domain.SwapStatus, dir domain.Direction, page, pageSize int) ([]domain.SwapRequest, int64, error) {
	tr := otel.Tracer("services/SwapService")
	ctx, span := tr.Start(ctx, "ListForUser",
		trace.WithAttributes(
			attribute.String("swap.user_id", userID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	ctx, cancel := s.bound(ctx)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountSwapsForUser(ctx, s.DB, userID, status, dir)
	if err != nil {
		return nil, 0, mapStore(err)
	}
	if total == 0 {
		return []domain.SwapRequest{}, 0, nil
	}

	items, err := repo.ListSwapsForUser(ctx, s.DB, userID, status, dir, offset, pageSize)
	if err != nil {
		return nil, 0, mapStore(err)
	}
	return items, total, nil
}
