package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	ErrMissingFile         = errors.New("missing file")
	ErrEmptyFilename       = errors.New("empty filename")
	ErrDisallowedExtension = errors.New("disallowed file extension")
)

// allowedExtensions is the image allow-list, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// Store writes uploaded images under a single local directory. Files are
// named by sanitized client filename; colliding names overwrite.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save validates and persists one uploaded file, returning the base
// filename to record against the user (never a path).
func (s *Store) Save(file io.Reader, filename string) (string, error) {
	if file == nil {
		return "", ErrMissingFile
	}
	if filename == "" {
		return "", ErrEmptyFilename
	}

	name := Sanitize(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrDisallowedExtension
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return name, nil
}

// Serve handles GET /uploads/{filename}. Unknown or traversal-shaped names
// are a plain 404.
func (s *Store) Serve(w http.ResponseWriter, r *http.Request) {
	name := Sanitize(chi.URLParam(r, "filename"))
	if name == "" {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.dir, name)
	if _, err := os.Stat(full); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// Sanitize reduces a client-supplied filename to a safe base name: directory
// components, traversal sequences and spaces are stripped. Returns "" when
// nothing usable remains.
func Sanitize(filename string) string {
	// Client may be on Windows; normalize separators before taking the base.
	name := strings.ReplaceAll(filename, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.TrimSpace(name)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
