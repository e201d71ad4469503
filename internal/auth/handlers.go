package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agricare/agri-backend/internal/upload"
	"github.com/agricare/agri-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Handler serves the landing page and the register/login/logout routes.
type Handler struct {
	users    UserStore
	sessions *Sessions
	uploads  *upload.Store
	logger   *slog.Logger
}

func NewHandler(users UserStore, sessions *Sessions, uploads *upload.Store, logger *slog.Logger) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		uploads:  uploads,
		logger:   logger,
	}
}

type indexResponse struct {
	User *User `json:"user"`
}

// Index returns the landing payload, including the current user when a
// valid session cookie is present. A stale session (user no longer in the
// store) renders as anonymous.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var resp indexResponse
	if email, ok := h.sessions.Current(r); ok {
		if user, err := h.users.FindByEmail(r.Context(), email); err == nil {
			resp.User = user
		}
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

// Register handles the multipart registration form: profile_photo (file),
// fullname, email, password. Success stores the photo, inserts the user and
// starts a session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("profile_photo")
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "No profile photo part")
		return
	}
	defer file.Close()

	fullname := r.FormValue("fullname")
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	password := r.FormValue("password")

	if header.Filename == "" {
		utils.Message(w, http.StatusBadRequest, "No selected file")
		return
	}
	if fullname == "" || email == "" || password == "" {
		utils.Message(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Check if user already exists. Check-then-insert, not atomic; the
	// primary key catches the concurrent-registration race.
	if _, err := h.users.FindByEmail(r.Context(), email); err == nil {
		utils.Message(w, http.StatusConflict, "User with this email already exists")
		return
	} else if !errors.Is(err, ErrUserNotFound) {
		h.logger.Error("register: user lookup failed", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Server error")
		return
	}

	filename, err := h.uploads.Save(file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrMissingFile), errors.Is(err, upload.ErrEmptyFilename):
			utils.Message(w, http.StatusBadRequest, "No selected file")
		case errors.Is(err, upload.ErrDisallowedExtension):
			utils.Message(w, http.StatusBadRequest, "Invalid file type")
		default:
			h.logger.Error("register: photo save failed", "error", err)
			utils.Message(w, http.StatusInternalServerError, "Failed to save profile photo")
		}
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("register: hashing failed", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Server error hashing password")
		return
	}

	user := &User{
		Email:        email,
		FullName:     fullname,
		PasswordHash: string(hashed),
		ProfilePhoto: &filename,
	}
	if err := h.users.Insert(r.Context(), user); err != nil {
		h.logger.Error("register: insert failed", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	// Log the new user in right away.
	if err := h.sessions.Start(w, email); err != nil {
		h.logger.Error("register: session start failed", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.Message(w, http.StatusCreated, "User registered successfully!")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and starts a session. Unknown email and wrong
// password get the same 401 body.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		utils.Message(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			h.logger.Error("login: user lookup failed", "error", err)
			utils.Message(w, http.StatusInternalServerError, "Server error")
			return
		}
		utils.Message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.Message(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := h.sessions.Start(w, user.Email); err != nil {
		h.logger.Error("login: session start failed", "error", err)
		utils.Message(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful!",
		"user":    map[string]string{"fullname": user.FullName},
	})
}

// Logout clears the session cookie and redirects to the landing page,
// whether or not a session existed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
