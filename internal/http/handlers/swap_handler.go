// Swap HTTP handlers.
//
// This file exposes REST endpoints for the swap-request lifecycle:
//   - POST /swaps               (create, idempotent via Idempotency-Key)
//   - GET  /swaps               (list, filtered + paginated, ETag support)
//   - GET  /swaps/pending       (received pending requests)
//   - GET  /swaps/{id}          (fetch, participants only)
//   - POST /swaps/{id}/respond  (accept | reject | delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The lifecycle error taxonomy is
// mapped here and nowhere else; transient errors carry a Retry-After header so
// clients can tell them apart from permanent rejections.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/http/middleware"
	"github.com/tbourn/go-swap-backend/internal/repo"
	"github.com/tbourn/go-swap-backend/internal/services"
	"github.com/tbourn/go-swap-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SwapService defines the swap lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SwapService interface {
	// Create validates and persists a new pending swap request.
	Create(ctx context.Context, senderID, receiverID, offeredSkillID, requestedSkillID, message string) (*domain.SwapRequest, error)
	// Respond applies accept/reject/delete on behalf of actorID.
	Respond(ctx context.Context, swapID, actorID string, action domain.SwapAction) (*domain.SwapRequest, error)
	// Get returns a swap visible to userID.
	Get(ctx context.Context, swapID, userID string) (*domain.SwapRequest, error)
	// ListForUser returns a page of the user's swaps and the total count.
	ListForUser(ctx context.Context, userID string, status domain.SwapStatus, dir domain.Direction, page, pageSize int) ([]domain.SwapRequest, int64, error)
}

// ProfileService defines profile registration and update operations.
type ProfileService interface {
	// Register creates a profile for userID.
	Register(ctx context.Context, userID string, p services.ProfileUpdate) (*domain.Profile, error)
	// Get returns the profile for userID.
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	// Update applies the non-nil fields to the caller's own profile.
	Update(ctx context.Context, userID string, p services.ProfileUpdate) (*domain.Profile, error)
	// ListPublic returns a page of public profiles.
	ListPublic(ctx context.Context, page, pageSize int) ([]domain.Profile, error)
}

// SkillService defines skill creation and listing operations.
type SkillService interface {
	// Create inserts a skill owned by ownerID.
	Create(ctx context.Context, ownerID, name, category, description string) (*domain.Skill, error)
	// Get returns a skill by id.
	Get(ctx context.Context, id string) (*domain.Skill, error)
	// ListForOwner returns all skills owned by ownerID.
	ListForOwner(ctx context.Context, ownerID string) ([]domain.Skill, error)
	// List returns a page of skills, optionally category-filtered.
	List(ctx context.Context, category string, page, pageSize int) ([]domain.Skill, error)
}

// NotificationService derives a user's notification feed.
type NotificationService interface {
	// ListForUser returns the user's recent swap activity.
	ListForUser(ctx context.Context, userID string) ([]services.Notification, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for swaps, profiles, skills, and
// notifications. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	swapSvc    SwapService
	profileSvc ProfileService
	skillSvc   SkillService
	notifSvc   NotificationService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(swapSvc SwapService, profileSvc ProfileService, skillSvc SkillService, notifSvc NotificationService) *Handlers {
	return &Handlers{swapSvc: swapSvc, profileSvc: profileSvc, skillSvc: skillSvc, notifSvc: notifSvc}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// CreateSwapRequest is the JSON payload for creating a swap request.
type CreateSwapRequest struct {
	// ReceiverID is the user the request is addressed to.
	ReceiverID string `json:"receiver_id" binding:"required" example:"user456"`
	// OfferedSkillID is a skill owned by the sender.
	OfferedSkillID string `json:"offered_skill_id" binding:"required" format:"uuid"`
	// RequestedSkillID is a skill owned by the receiver.
	RequestedSkillID string `json:"requested_skill_id" binding:"required" format:"uuid"`
	// Message is an optional free-form note, immutable after creation.
	Message string `json:"message,omitempty" example:"Happy to trade lessons"`
}

// RespondSwapRequest is the JSON payload for responding to a swap request.
type RespondSwapRequest struct {
	// Action is one of accept, reject, delete.
	Action string `json:"action" binding:"required,oneof=accept reject delete" example:"accept"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListSwapsResponse wraps a page of swaps and pagination information.
type ListSwapsResponse struct {
	Swaps      []domain.SwapRequest `json:"swaps"`
	Pagination Pagination           `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// swapError translates the lifecycle error taxonomy into HTTP responses. It is
// the single place the sentinel → status/code mapping lives.
func swapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfSwap):
		fail(c, http.StatusBadRequest, ErrCodeSelfSwap, err.Error())
	case errors.Is(err, services.ErrReceiverNotVisible):
		fail(c, http.StatusNotFound, ErrCodeReceiverNotVisible, err.Error())
	case errors.Is(err, services.ErrSkillNotOwned):
		fail(c, http.StatusUnprocessableEntity, ErrCodeSkillNotOwned, err.Error())
	case errors.Is(err, services.ErrDuplicatePending):
		fail(c, http.StatusConflict, ErrCodeDuplicatePending, err.Error())
	case errors.Is(err, services.ErrSwapNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "swap request not found")
	case errors.Is(err, services.ErrNotAuthorized):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		fail(c, http.StatusConflict, ErrCodeInvalidTransition, err.Error())
	case errors.Is(err, services.ErrReceiverUnavailable):
		fail(c, http.StatusConflict, ErrCodeReceiverUnavailable, err.Error())
	case errors.Is(err, services.ErrConcurrentModification):
		failRetryable(c, http.StatusServiceUnavailable, ErrCodeConcurrentModification, err.Error())
	case errors.Is(err, services.ErrStoreTimeout):
		failRetryable(c, http.StatusServiceUnavailable, ErrCodeStoreTimeout, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// CreateSwap godoc
// @ID          createSwap
// @Summary     Create a swap request
// @Description Validates and creates a pending swap request from the current user.
// @Description Supports idempotency via the Idempotency-Key header (same key → same swap).
// @Tags        Swaps
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.CreateSwapRequest  true  "Create swap payload"
//
// @Success     201  {object}  domain.SwapRequest
// @Success     200  {object}  domain.SwapRequest      "Idempotent replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request / self swap"
// @Failure     404  {object}  handlers.ErrorResponse  "Receiver not visible"
// @Failure     409  {object}  handlers.ErrorResponse  "Duplicate pending request / key reuse"
// @Failure     422  {object}  handlers.ErrorResponse  "Skill ownership mismatch"
// @Failure     503  {object}  handlers.ErrorResponse  "Transient failure, retry later"
// @Router      /swaps [post]
func (h *Handlers) CreateSwap(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "receiver_id, offered_skill_id and requested_skill_id are required")
		return
	}
	receiverID := strings.TrimSpace(req.ReceiverID)
	currentUser := userID(c)

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey == "" {
		idemKey = strings.TrimSpace(c.GetHeader(middleware.HeaderIdempotencyKey))
	}
	if idemKey != "" {
		if svc, okSvc := h.swapSvc.(*services.SwapService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, currentUser, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if rec.ReceiverID != receiverID {
					fail(c, http.StatusConflict, ErrCodeConflict, "Idempotency-Key was already used with different parameters")
					return
				}
				if prev, err2 := h.swapSvc.Get(ctx, rec.SwapID, currentUser); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	sw, err := h.swapSvc.Create(ctx, currentUser,
		receiverID, req.OfferedSkillID, req.RequestedSkillID,
		strings.TrimSpace(req.Message))
	if err != nil {
		swapError(c, err)
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if svc, okSvc := h.swapSvc.(*services.SwapService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, currentUser, idemKey, receiverID, sw.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, sw)
}

// ListSwaps godoc
// @ID          listSwaps
// @Summary     List the current user's swaps (paginated)
// @Description Returns a page of swaps involving the user. Supports status/direction filters and weak ETag via If-None-Match.
// @Tags        Swaps
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"                example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"           example(W/\"abc123\")
// @Param       status         query   string  false "Filter by status"                     Enums(pending, accepted, rejected, deleted)
// @Param       direction      query   string  false "Filter by direction"                  Enums(sent, received, both) default(both)
// @Param       page           query   int     false "Page number"                          minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"                       minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListSwapsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /swaps [get]
func (h *Handlers) ListSwaps(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := clampPagination(c)

	var status domain.SwapStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be one of pending, accepted, rejected, deleted")
			return
		}
		status = parsed
	}
	dir, err := domain.ParseDirection(strings.TrimSpace(c.Query("direction")))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "direction must be sent, received or both")
		return
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okSvc := h.swapSvc.(*services.SwapService); okSvc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.SwapsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"swaps:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	// Fetch page.
	items, total, err := h.swapSvc.ListForUser(ctx, uid, status, dir, page, pageSize)
	if err != nil {
		swapError(c, err)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListSwapsResponse{
		Swaps: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// ListPendingSwaps godoc
// @ID          listPendingSwaps
// @Summary     List pending swap requests addressed to the current user
// @Description Shorthand for GET /swaps?status=pending&direction=received.
// @Tags        Swaps
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       page       query   int     false "Page number"            minimum(1) default(1)
// @Param       page_size  query   int     false "Items per page"         minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListSwapsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /swaps/pending [get]
func (h *Handlers) ListPendingSwaps(c *gin.Context) {
	uid := userID(c)
	page, pageSize := clampPagination(c)

	items, total, err := h.swapSvc.ListForUser(c.Request.Context(), uid,
		domain.StatusPending, domain.DirectionReceived, page, pageSize)
	if err != nil {
		swapError(c, err)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListSwapsResponse{
		Swaps: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetSwap godoc
// @ID          getSwap
// @Summary     Fetch a swap request
// @Description Returns a single swap request. Only its participants may read it.
// @Tags        Swaps
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Swap ID (UUID)"         format(uuid)
//
// @Success     200  {object} domain.SwapRequest
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Not a participant"
// @Failure     404  {object} handlers.ErrorResponse "Swap not found"
// @Router      /swaps/{id} [get]
func (h *Handlers) GetSwap(c *gin.Context) {
	swapID := c.Param("id")
	if _, err := uuid.Parse(swapID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "swap id must be a UUID")
		return
	}

	sw, err := h.swapSvc.Get(c.Request.Context(), swapID, userID(c))
	if err != nil {
		swapError(c, err)
		return
	}
	ok(c, http.StatusOK, sw)
}

// RespondSwap godoc
// @ID          respondSwap
// @Summary     Respond to a swap request
// @Description Applies accept (receiver), reject (receiver) or delete (sender) to a pending swap.
// @Tags        Swaps
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user456)
// @Param       id         path    string  true  "Swap ID (UUID)"         format(uuid)
// @Param       body       body    handlers.RespondSwapRequest  true  "Response action"
//
// @Success     200  {object} domain.SwapRequest
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Wrong actor for this action"
// @Failure     404  {object} handlers.ErrorResponse "Swap not found"
// @Failure     409  {object} handlers.ErrorResponse "Invalid transition / receiver unavailable"
// @Failure     503  {object} handlers.ErrorResponse "Transient failure, retry later"
// @Router      /swaps/{id}/respond [post]
func (h *Handlers) RespondSwap(c *gin.Context) {
	swapID := c.Param("id")
	if _, err := uuid.Parse(swapID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "swap id must be a UUID")
		return
	}

	var req RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be accept, reject or delete")
		return
	}
	action, err := domain.ParseAction(strings.ToLower(strings.TrimSpace(req.Action)))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "action must be accept, reject or delete")
		return
	}

	sw, err := h.swapSvc.Respond(c.Request.Context(), swapID, userID(c), action)
	if err != nil {
		swapError(c, err)
		return
	}
	ok(c, http.StatusOK, sw)
}
