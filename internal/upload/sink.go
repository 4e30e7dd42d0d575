package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Type-scoped subdirectories under the upload root. Each entity's assets
// land in its own directory so the static file server can group them.
const (
	AuthorImageDir      = "image/authors"
	CategoryImageDir    = "image/categories"
	SubCategoryImageDir = "image/subcategories"
	UserImageDir        = "image/users"
)

// Sink persists file streams beneath a local upload root.
type Sink struct {
	root string
}

// NewSink creates a Sink rooted at the given directory. The directory itself
// is created lazily on first store.
func NewSink(root string) *Sink {
	return &Sink{root: root}
}

// Store streams src to <root>/<subdir>/<filename>, creating intermediate
// directories as needed, and returns the forward-slash path relative to the
// root. The filename is expected to already carry a uniqueness prefix (see
// UniqueFilename). A broken input stream can leave a partial file behind;
// the error is surfaced, not masked.
func (s *Sink) Store(src io.Reader, subdir, filename string) (string, error) {
	if src == nil {
		return "", ErrInvalidFilePart
	}

	dir := filepath.Join(s.root, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	fullPath := filepath.Join(dir, filename)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// Root returns the sink's root directory, for wiring the static file server.
func (s *Sink) Root() string {
	return s.root
}
