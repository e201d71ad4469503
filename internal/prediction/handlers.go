package prediction

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agricare/agri-backend/internal/auth"
	"github.com/agricare/agri-backend/internal/utils"
)

// placeholderResult stands in for the crop model until one exists.
const placeholderResult = "Placeholder: High-Yield Wheat"

// requiredFields are the form fields a submission must carry; village is
// deliberately absent (optional).
var requiredFields = []string{
	"season", "crop_variety", "soil_type",
	"state", "district", "taluka", "farm_area",
}

// Handler serves the session-gated crop prediction form. RequireSession
// runs in front of both routes, so the email is always in context here.
type Handler struct {
	users    auth.UserStore
	sessions *auth.Sessions
	logger   *slog.Logger
}

func NewHandler(users auth.UserStore, sessions *auth.Sessions, logger *slog.Logger) *Handler {
	return &Handler{users: users, sessions: sessions, logger: logger}
}

// currentUser resolves the session email to a user. A stale session (user
// gone from the store) is cleared and redirected like a missing one.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) *auth.User {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return nil
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			h.logger.Error("prediction: user lookup failed", "error", err)
		}
		h.sessions.Clear(w)
		http.Redirect(w, r, "/", http.StatusFound)
		return nil
	}
	return user
}

// Show handles GET /prediction: the empty form payload.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"user":            user,
		"prediction_made": false,
	})
}

// Submit handles POST /prediction: validates the form and returns the
// placeholder prediction.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	for _, field := range requiredFields {
		if r.FormValue(field) == "" {
			utils.Message(w, http.StatusBadRequest, "Missing required prediction fields")
			return
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"user":              user,
		"prediction_made":   true,
		"prediction_result": placeholderResult,
	})
}
