// Profile HTTP handlers.
//
// This file exposes REST endpoints for user profiles:
//   - POST /profile          (register the current user's profile)
//   - PUT  /profile          (update the current user's profile)
//   - GET  /profiles         (browse public profiles, paginated)
//   - GET  /profiles/{id}    (read a profile; private ones read as 404)
//
// Handlers are transport-thin: they validate input, call the profile service,
// and translate results into HTTP responses. Visibility is enforced here for
// reads: a private profile is indistinguishable from a missing one unless the
// caller is its owner.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-swap-backend/internal/services"
)

// ProfileRequest is the JSON payload for registering or updating a profile.
// All fields are optional; on update, omitted fields are left unchanged.
type ProfileRequest struct {
	Bio      *string `json:"bio,omitempty" example:"Weekend woodworker"`
	Location *string `json:"location,omitempty" example:"Athens"`
	Phone    *string `json:"phone,omitempty" example:"+301234567890"`
	// Availability is one of weekdays, weekends, evenings, mornings, all_day.
	Availability *string `json:"availability,omitempty" example:"weekends"`
	IsPublic     *bool   `json:"is_public,omitempty" example:"true"`
	IsAvailable  *bool   `json:"is_available,omitempty" example:"true"`
}

func (r ProfileRequest) toUpdate() services.ProfileUpdate {
	return services.ProfileUpdate{
		Bio:          r.Bio,
		Location:     r.Location,
		Phone:        r.Phone,
		Availability: r.Availability,
		IsPublic:     r.IsPublic,
		IsAvailable:  r.IsAvailable,
	}
}

// profileError translates profile service errors into HTTP responses.
func profileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
	case errors.Is(err, services.ErrDuplicateProfile):
		fail(c, http.StatusConflict, ErrCodeConflict, "profile already exists")
	case errors.Is(err, services.ErrInvalidAvailability):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "availability must be one of weekdays, weekends, evenings, mornings, all_day")
	case errors.Is(err, services.ErrEmptyUserID):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user id required")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// RegisterProfile godoc
// @ID          registerProfile
// @Summary     Register the current user's profile
// @Description Creates the profile row for the current user with optional fields.
// @Tags        Profiles
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.ProfileRequest  true  "Profile payload"
//
// @Success     201  {object}  domain.Profile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Profile already exists"
// @Router      /profile [post]
func (h *Handlers) RegisterProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Register(c.Request.Context(), userID(c), req.toUpdate())
	if err != nil {
		profileError(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the current user's profile
// @Description Applies the provided fields to the current user's profile; omitted fields stay unchanged.
// @Tags        Profiles
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.ProfileRequest  true  "Profile payload"
//
// @Success     200  {object}  domain.Profile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Profile not found"
// @Router      /profile [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Update(c.Request.Context(), userID(c), req.toUpdate())
	if err != nil {
		profileError(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Read a user's profile
// @Description Returns a profile by user id. Private profiles are only visible to their owner and read as 404 to everyone else.
// @Tags        Profiles
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Profile owner's user ID"  example(user456)
//
// @Success     200  {object}  domain.Profile
// @Failure     404  {object}  handlers.ErrorResponse  "Profile not found"
// @Router      /profiles/{id} [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	target := c.Param("id")
	p, err := h.profileSvc.Get(c.Request.Context(), target)
	if err != nil {
		profileError(c, err)
		return
	}
	if !p.IsPublic && target != userID(c) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
		return
	}
	ok(c, http.StatusOK, p)
}

// ListProfiles godoc
// @ID          listProfiles
// @Summary     Browse public profiles
// @Description Returns a page of public profiles, newest-first. Directory browsing only, no search.
// @Tags        Profiles
// @Produce     json
//
// @Param       page       query  int  false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.Profile
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles [get]
func (h *Handlers) ListProfiles(c *gin.Context) {
	page, pageSize := clampPagination(c)
	out, err := h.profileSvc.ListPublic(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}
