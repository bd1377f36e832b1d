package imagehost

import (
	"context"
	"io"
)

// Uploader is the external image host collaborator: bytes in, durable
// URL out. Uploads may be slow or fail; callers own their deadlines.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}
