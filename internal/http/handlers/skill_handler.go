// Skill HTTP handlers.
//
// This file exposes REST endpoints for skills:
//   - POST /skills                 (create a skill owned by the current user)
//   - GET  /skills                 (browse skills, optional category filter)
//   - GET  /skills/{id}            (read one skill)
//   - GET  /profiles/{id}/skills   (a user's skills)
//
// Categories are plain stored strings; there is no taxonomy.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-swap-backend/internal/services"
)

// CreateSkillRequest is the JSON payload for creating a skill.
type CreateSkillRequest struct {
	// Name is the skill name; it is normalized (trimmed, title-cased) on save.
	Name string `json:"name" binding:"required,min=1,max=100" example:"Go Programming"`
	// Category is an optional free-form grouping string.
	Category string `json:"category,omitempty" example:"tech"`
	// Description optionally describes the skill.
	Description string `json:"description,omitempty" example:"Backend services and tooling"`
}

// CreateSkill godoc
// @ID          createSkill
// @Summary     Create a skill
// @Description Creates a skill owned by the current user. The name is normalized before storing.
// @Tags        Skills
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateSkillRequest  true  "Create skill payload"
//
// @Success     201  {object}  domain.Skill
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /skills [post]
func (h *Handlers) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required (1-100 chars)")
		return
	}

	sk, err := h.skillSvc.Create(c.Request.Context(), userID(c), req.Name, req.Category, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrEmptySkillName) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "skill name must not be blank")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, sk)
}

// GetSkill godoc
// @ID          getSkill
// @Summary     Read a skill
// @Description Returns a single skill by id.
// @Tags        Skills
// @Produce     json
//
// @Param       id  path  string  true  "Skill ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Skill
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Skill not found"
// @Router      /skills/{id} [get]
func (h *Handlers) GetSkill(c *gin.Context) {
	skillID := c.Param("id")
	if _, err := uuid.Parse(skillID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "skill id must be a UUID")
		return
	}

	sk, err := h.skillSvc.Get(c.Request.Context(), skillID)
	if err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "skill not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sk)
}

// ListSkills godoc
// @ID          listSkills
// @Summary     Browse skills
// @Description Returns a page of skills, name-ordered, optionally filtered by stored category string.
// @Tags        Skills
// @Produce     json
//
// @Param       category   query  string  false "Filter by category"  example(tech)
// @Param       page       query  int     false "Page number"         minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"      minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   domain.Skill
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /skills [get]
func (h *Handlers) ListSkills(c *gin.Context) {
	page, pageSize := clampPagination(c)
	out, err := h.skillSvc.List(c.Request.Context(), strings.TrimSpace(c.Query("category")), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// ListUserSkills godoc
// @ID          listUserSkills
// @Summary     List a user's skills
// @Description Returns all skills owned by the given user, name-ordered.
// @Tags        Skills
// @Produce     json
//
// @Param       id  path  string  true  "Skill owner's user ID"  example(user456)
//
// @Success     200  {array}   domain.Skill
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles/{id}/skills [get]
func (h *Handlers) ListUserSkills(c *gin.Context) {
	out, err := h.skillSvc.ListForOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}
