package common

import (
	"context"
	"io"
)

// MediaStore is the binary object store used for post media. Upload enforces
// the image/video gate and returns the generated object key; Delete removes
// the object at the given key.
type MediaStore interface {
	Upload(ctx context.Context, authorID, mimeType string, content io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
