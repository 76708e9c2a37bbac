package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-swap-backend/internal/domain"
	"github.com/tbourn/go-swap-backend/internal/services"
)

func newProfileHandlers(p ProfileService) *Handlers {
	return New(stubSwapSvc{}, p, stubSkillSvc{}, stubNotifSvc{})
}

// ---------- RegisterProfile ----------

func TestRegisterProfile_BadJSON_Success_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Bad JSON -> 400
	{
		h := newProfileHandlers(stubProfileSvc{})
		r := gin.New()
		r.POST("/profile", h.RegisterProfile)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString("{bad"))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad json -> %d", w.Code)
		}
	}

	// Success -> 201, update fields forwarded
	{
		var got services.ProfileUpdate
		h := newProfileHandlers(stubProfileSvc{
			register: func(ctx context.Context, uid string, p services.ProfileUpdate) (*domain.Profile, error) {
				got = p
				return &domain.Profile{UserID: uid, Bio: *p.Bio, IsPublic: true, IsAvailable: true}, nil
			},
		})
		r := gin.New()
		r.POST("/profile", h.RegisterProfile)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile",
			bytes.NewBufferString(`{"bio":"Weekend woodworker","availability":"evenings"}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("register -> %d body=%s", w.Code, w.Body.String())
		}
		if got.Bio == nil || *got.Bio != "Weekend woodworker" {
			t.Fatalf("bio not forwarded: %+v", got)
		}
		if got.Availability == nil || *got.Availability != "evenings" {
			t.Fatalf("availability not forwarded: %+v", got)
		}
		if got.Location != nil || got.IsPublic != nil {
			t.Fatalf("omitted fields should stay nil: %+v", got)
		}
	}

	// Duplicate -> 409
	{
		h := newProfileHandlers(stubProfileSvc{
			register: func(context.Context, string, services.ProfileUpdate) (*domain.Profile, error) {
				return nil, services.ErrDuplicateProfile
			},
		})
		r := gin.New()
		r.POST("/profile", h.RegisterProfile)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("duplicate -> %d", w.Code)
		}
		if got := decodeErr(t, w.Body).Code; got != ErrCodeConflict {
			t.Fatalf("duplicate code = %q", got)
		}
	}
}

// ---------- UpdateProfile ----------

func TestUpdateProfile_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrProfileNotFound, http.StatusNotFound, ErrCodeNotFound},
		{services.ErrInvalidAvailability, http.StatusBadRequest, ErrCodeBadRequest},
		{gorm.ErrInvalidField, http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		svcErr := tc.err
		h := newProfileHandlers(stubProfileSvc{
			update: func(context.Context, string, services.ProfileUpdate) (*domain.Profile, error) {
				return nil, svcErr
			},
		})
		r := gin.New()
		r.PUT("/profile", h.UpdateProfile)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"bio":"x"}`))
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)

		if w.Code != tc.status {
			t.Fatalf("%v -> %d, want %d", tc.err, w.Code, tc.status)
		}
		if got := decodeErr(t, w.Body).Code; got != tc.code {
			t.Fatalf("%v code = %q, want %q", tc.err, got, tc.code)
		}
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newProfileHandlers(stubProfileSvc{
		update: func(ctx context.Context, uid string, p services.ProfileUpdate) (*domain.Profile, error) {
			return &domain.Profile{UserID: uid, Location: *p.Location, IsPublic: true}, nil
		},
	})
	r := gin.New()
	r.PUT("/profile", h.UpdateProfile)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"location":"Athens"}`))
	req.Header.Set("X-User-ID", "u7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("update -> %d body=%s", w.Code, w.Body.String())
	}
	var out domain.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.UserID != "u7" || out.Location != "Athens" {
		t.Fatalf("unexpected profile: %#v", out)
	}
}

// ---------- GetProfile ----------

func TestGetProfile_VisibilityRules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	private := &domain.Profile{UserID: "u9", Bio: "hidden", IsPublic: false}
	h := newProfileHandlers(stubProfileSvc{
		get: func(ctx context.Context, uid string) (*domain.Profile, error) {
			if uid == "u9" {
				return private, nil
			}
			return nil, services.ErrProfileNotFound
		},
	})
	r := gin.New()
	r.GET("/profiles/:id", h.GetProfile)

	// Missing profile -> 404
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/nobody", nil)
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing -> %d", w.Code)
	}

	// Private profile read by a stranger -> indistinguishable from missing.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profiles/u9", nil)
	req.Header.Set("X-User-ID", "u1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("private stranger -> %d", w.Code)
	}

	// Owner can read their own private profile.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profiles/u9", nil)
	req.Header.Set("X-User-ID", "u9")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("private owner -> %d body=%s", w.Code, w.Body.String())
	}
	var out domain.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.Bio != "hidden" {
		t.Fatalf("owner read mismatch: %#v", out)
	}
}

// ---------- ListProfiles ----------

func TestListProfiles_Success_And_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Success passes clamped pagination through.
	{
		var gotPage, gotSize int
		h := newProfileHandlers(stubProfileSvc{
			listPublic: func(ctx context.Context, page, pageSize int) ([]domain.Profile, error) {
				gotPage, gotSize = page, pageSize
				return []domain.Profile{{UserID: "u1", IsPublic: true}}, nil
			},
		})
		r := gin.New()
		r.GET("/profiles", h.ListProfiles)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profiles?page=2&page_size=500", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
		}
		if gotPage != 2 || gotSize != 100 {
			t.Fatalf("pagination not clamped: page=%d size=%d", gotPage, gotSize)
		}
	}

	// Service error -> 500 with list_failed.
	{
		h := newProfileHandlers(stubProfileSvc{
			listPublic: func(context.Context, int, int) ([]domain.Profile, error) {
				return nil, gorm.ErrInvalidField
			},
		})
		r := gin.New()
		r.GET("/profiles", h.ListProfiles)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("error -> %d", w.Code)
		}
		if got := decodeErr(t, w.Body).Code; got != ErrCodeListFailed {
			t.Fatalf("error code = %q", got)
		}
	}
}
