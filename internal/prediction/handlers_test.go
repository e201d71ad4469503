package prediction_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/agricare/agri-backend/internal/auth"
	"github.com/agricare/agri-backend/internal/middleware"
	"github.com/agricare/agri-backend/internal/prediction"
	"github.com/go-chi/chi/v5"
)

// mockUserStore returns a fixed user for any email.
type mockUserStore struct {
	user *auth.User
	err  error
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserStore) Insert(ctx context.Context, user *auth.User) error {
	return nil
}

// newPredictionRouter assembles the gated /prediction routes exactly as the
// app router does.
func newPredictionRouter(users auth.UserStore, sessions *auth.Sessions) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := prediction.NewHandler(users, sessions, logger)

	r := chi.NewRouter()
	r.Route("/prediction", func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))
		r.Get("/", h.Show)
		r.Post("/", h.Submit)
	})
	return r
}

func sessionCookie(t *testing.T, sessions *auth.Sessions, email string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := sessions.Start(rec, email); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func fullForm() url.Values {
	return url.Values{
		"season":       {"Kharif"},
		"crop_variety": {"Wheat"},
		"soil_type":    {"Black"},
		"state":        {"Maharashtra"},
		"district":     {"Pune"},
		"taluka":       {"Haveli"},
		"village":      {"Wagholi"},
		"farm_area":    {"2.5"},
	}
}

// TestShow_NoSession verifies the redirect to the landing page.
func TestShow_NoSession(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	router := newPredictionRouter(&mockUserStore{user: &auth.User{}}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/prediction", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

// TestShow_WithSession verifies the empty form payload for a logged-in user.
func TestShow_WithSession(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	users := &mockUserStore{user: &auth.User{Email: "alice@example.com", FullName: "Alice Farmer"}}
	router := newPredictionRouter(users, sessions)

	req := httptest.NewRequest(http.MethodGet, "/prediction", nil)
	req.AddCookie(sessionCookie(t, sessions, "alice@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"prediction_made":false`) {
		t.Errorf("expected prediction_made:false, got: %s", body)
	}
	if !strings.Contains(body, "Alice Farmer") {
		t.Errorf("expected user in payload, got: %s", body)
	}
}

// TestShow_StaleSession verifies a valid cookie for a deleted user clears
// the session and redirects.
func TestShow_StaleSession(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	router := newPredictionRouter(&mockUserStore{err: auth.ErrUserNotFound}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/prediction", nil)
	req.AddCookie(sessionCookie(t, sessions, "ghost@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), auth.SessionCookie+"=;") {
		t.Error("expected the stale session cookie to be cleared")
	}
}

func postForm(t *testing.T, router http.Handler, sessions *auth.Sessions, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/prediction", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, sessions, "alice@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestSubmit_AllFields verifies the placeholder result comes back for a
// complete form.
func TestSubmit_AllFields(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	users := &mockUserStore{user: &auth.User{Email: "alice@example.com"}}
	router := newPredictionRouter(users, sessions)

	rec := postForm(t, router, sessions, fullForm())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Placeholder: High-Yield Wheat") {
		t.Errorf("expected placeholder result, got: %s", rec.Body.String())
	}
}

// TestSubmit_MissingRequiredField verifies each required field is enforced.
func TestSubmit_MissingRequiredField(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	users := &mockUserStore{user: &auth.User{Email: "alice@example.com"}}
	router := newPredictionRouter(users, sessions)

	for _, field := range []string{"season", "crop_variety", "soil_type", "state", "district", "taluka", "farm_area"} {
		form := fullForm()
		form.Del(field)

		rec := postForm(t, router, sessions, form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("field %s: expected 400, got %d", field, rec.Code)
		}
	}
}

// TestSubmit_VillageOptional verifies the one optional field really is.
func TestSubmit_VillageOptional(t *testing.T) {
	sessions := auth.NewSessions("test-secret")
	users := &mockUserStore{user: &auth.User{Email: "alice@example.com"}}
	router := newPredictionRouter(users, sessions)

	form := fullForm()
	form.Del("village")

	rec := postForm(t, router, sessions, form)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 without village, got %d", rec.Code)
	}
}
