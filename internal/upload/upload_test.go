package upload_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agricare/agri-backend/internal/upload"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_MissingFile(t *testing.T) {
	store := upload.NewStore(t.TempDir())
	_, err := store.Save(nil, "photo.jpg")
	assert.ErrorIs(t, err, upload.ErrMissingFile)
}

func TestSave_EmptyFilename(t *testing.T) {
	store := upload.NewStore(t.TempDir())
	_, err := store.Save(strings.NewReader("data"), "")
	assert.ErrorIs(t, err, upload.ErrEmptyFilename)
}

func TestSave_DisallowedExtensions(t *testing.T) {
	store := upload.NewStore(t.TempDir())

	// Anything without a dot or outside the image allow-list is rejected.
	for _, name := range []string{
		"script.exe",
		"noextension",
		"archive.tar.gz",
		"photo.png.sh",
		"photo.svg",
		"photo.",
	} {
		_, err := store.Save(strings.NewReader("data"), name)
		assert.ErrorIs(t, err, upload.ErrDisallowedExtension, "filename %q", name)
	}
}

func TestSave_CaseInsensitiveExtensions(t *testing.T) {
	store := upload.NewStore(t.TempDir())

	for _, name := range []string{"a.png", "b.JPG", "c.Jpeg", "d.GIF"} {
		got, err := store.Save(strings.NewReader("data"), name)
		require.NoError(t, err, "filename %q", name)
		assert.Equal(t, name, got)
	}
}

func TestSave_StripsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store := upload.NewStore(dir)

	got, err := store.Save(strings.NewReader("data"), "../../etc/evil.jpg")
	require.NoError(t, err)
	assert.Equal(t, "evil.jpg", got)

	// The file lands inside the upload dir, nowhere else.
	_, err = os.Stat(filepath.Join(dir, "evil.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "..", "evil.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestSave_CreatesDirAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := upload.NewStore(dir)

	_, err := store.Save(strings.NewReader("first"), "photo.jpg")
	require.NoError(t, err)

	// Same name overwrites silently; that is the documented behavior.
	_, err = store.Save(strings.NewReader("second"), "photo.jpg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\sys.gif`, "sys.gif"},
		{"..", ""},
		{".", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, upload.Sanitize(c.in), "input %q", c.in)
	}
}

func serveRequest(t *testing.T, store *upload.Store, filename string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/uploads/{filename}", store.Serve)
	req := httptest.NewRequest(http.MethodGet, "/uploads/"+filename, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestServe_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	store := upload.NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("image"), 0o644))

	rec := serveRequest(t, store, "photo.jpg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image", rec.Body.String())
}

func TestServe_UnknownFile(t *testing.T) {
	store := upload.NewStore(t.TempDir())
	rec := serveRequest(t, store, "nope.jpg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
