package ports

import (
	"context"
	"io"
)

// FileStore holds uploaded project files keyed by their sanitized name.
type FileStore interface {
	// Save stores the content under name, replacing any existing file.
	Save(ctx context.Context, name string, content io.Reader) error
	// Remove deletes the named file. A missing file is not an error.
	Remove(ctx context.Context, name string) error
}
