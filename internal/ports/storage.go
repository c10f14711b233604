package ports

import "context"

// FileStore persists uploaded assets and returns the public URL path they
// are served under. Implementations own naming and directory layout.
type FileStore interface {
	Save(ctx context.Context, field, originalName string, data []byte) (string, error)
	Remove(ctx context.Context, publicPath string) error
}
