package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// allowed upload extensions, lowercased. Anything else is rejected before
// touching the disk regardless of what MIME type the client claimed.
var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".pdf": {}, ".doc": {}, ".docx": {},
}

// LocalStore persists uploaded files under a single directory and serves
// them back through the /uploads static route. Filenames embed the form
// field, a timestamp and random bytes so concurrent uploads never collide.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures the upload directory exists and returns a store
// rooted at it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir reports the directory files are written to, for static file serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(_ context.Context, field, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("file extension %q is not allowed", ext)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate filename suffix: %w", err)
	}
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

func (s *LocalStore) Remove(_ context.Context, publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("invalid upload path %q", publicPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
