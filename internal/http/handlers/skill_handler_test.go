package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/services"
)

func newSkillHandlers(s SkillService) *Handlers {
	return New(stubSwapSvc{}, stubProfileSvc{}, s, stubNotifSvc{})
}

// ---------- CreateSkill ----------

func TestCreateSkill_Validation_Success_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Missing name -> 400 from binding
	{
		h := newSkillHandlers(stubSkillSvc{})
		r := gin.New()
		r.POST("/skills", h.CreateSkill)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/skills", bytes.NewBufferString(`{"category":"tech"}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing name -> %d", w.Code)
		}
	}

	// Blank name survives binding but the service rejects it -> 400
	{
		h := newSkillHandlers(stubSkillSvc{
			create: func(context.Context, string, string, string, string) (*domain.Skill, error) {
				return nil, services.ErrEmptySkillName
			},
		})
		r := gin.New()
		r.POST("/skills", h.CreateSkill)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/skills", bytes.NewBufferString(`{"name":"   "}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("blank name -> %d", w.Code)
		}
	}

	// Success -> 201, owner comes from the user header
	{
		var gotOwner, gotName string
		h := newSkillHandlers(stubSkillSvc{
			create: func(ctx context.Context, owner, name, category, desc string) (*domain.Skill, error) {
				gotOwner, gotName = owner, name
				return &domain.Skill{ID: uuid.NewString(), OwnerID: owner, Name: name, Category: category}, nil
			},
		})
		r := gin.New()
		r.POST("/skills", h.CreateSkill)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/skills",
			bytes.NewBufferString(`{"name":"Go Programming","category":"tech"}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
		}
		if gotOwner != "u1" || gotName != "Go Programming" {
			t.Fatalf("service args mismatch: owner=%q name=%q", gotOwner, gotName)
		}
	}

	// Store error -> 500 with create_failed
	{
		h := newSkillHandlers(stubSkillSvc{
			create: func(context.Context, string, string, string, string) (*domain.Skill, error) {
				return nil, gorm.ErrInvalidField
			},
		})
		r := gin.New()
		r.POST("/skills", h.CreateSkill)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/skills", bytes.NewBufferString(`{"name":"X"}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("store error -> %d", w.Code)
		}
		if got := decodeErr(t, w.Body).Code; got != ErrCodeCreateFailed {
			t.Fatalf("error code = %q", got)
		}
	}
}

// ---------- GetSkill ----------

func TestGetSkill_UUID_NotFound_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newSkillHandlers(stubSkillSvc{
		get: func(ctx context.Context, id string) (*domain.Skill, error) {
			return nil, services.ErrSkillNotFound
		},
	})
	r := gin.New()
	r.GET("/skills/:id", h.GetSkill)

	// bad UUID
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/skills/not-uuid", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("uuid 400 -> %d", w.Code)
	}

	// unknown id -> 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/skills/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("not found -> %d", w.Code)
	}

	// success
	skillID := uuid.NewString()
	h = newSkillHandlers(stubSkillSvc{
		get: func(ctx context.Context, id string) (*domain.Skill, error) {
			return &domain.Skill{ID: id, OwnerID: "u2", Name: "Baking"}, nil
		},
	})
	r = gin.New()
	r.GET("/skills/:id", h.GetSkill)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/skills/"+skillID, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get -> %d body=%s", w.Code, w.Body.String())
	}
	var out domain.Skill
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.ID != skillID || out.Name != "Baking" {
		t.Fatalf("unexpected skill: %#v", out)
	}
}

// ---------- ListSkills / ListUserSkills ----------

func TestListSkills_CategoryFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotCategory string
	h := newSkillHandlers(stubSkillSvc{
		list: func(ctx context.Context, category string, page, pageSize int) ([]domain.Skill, error) {
			gotCategory = category
			return []domain.Skill{{ID: uuid.NewString(), Name: "Go Programming", Category: category}}, nil
		},
	})
	r := gin.New()
	r.GET("/skills", h.ListSkills)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/skills?category=%20tech%20", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
	}
	if gotCategory != "tech" {
		t.Fatalf("category not trimmed: %q", gotCategory)
	}
}

func TestListUserSkills_Success_And_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Success returns the owner's skills.
	{
		h := newSkillHandlers(stubSkillSvc{
			listForOwner: func(ctx context.Context, owner string) ([]domain.Skill, error) {
				return []domain.Skill{{ID: uuid.NewString(), OwnerID: owner, Name: "Chess"}}, nil
			},
		})
		r := gin.New()
		r.GET("/profiles/:id/skills", h.ListUserSkills)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profiles/u3/skills", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
		}
		var out []domain.Skill
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("json: %v", err)
		}
		if len(out) != 1 || out[0].OwnerID != "u3" {
			t.Fatalf("unexpected skills: %#v", out)
		}
	}

	// Store error -> 500
	{
		h := newSkillHandlers(stubSkillSvc{
			listForOwner: func(context.Context, string) ([]domain.Skill, error) {
				return nil, gorm.ErrInvalidField
			},
		})
		r := gin.New()
		r.GET("/profiles/:id/skills", h.ListUserSkills)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profiles/u3/skills", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("error -> %d", w.Code)
		}
	}
}
