package object

import (
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// SniffLen is how many leading bytes stores inspect to detect content type.
const SniffLen = 3072

// Object describes a stored upload.
type Object struct {
	Key         string
	SizeBytes   int64
	ContentType string
}

// ObjectStore saves and retrieves binary objects such as uploaded resumes.
type ObjectStore interface {
	Save(ctx context.Context, owner string, fileName string, r io.Reader) (Object, error)
	SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// DetectContentType returns the MIME type of a payload prefix without
// parameters, e.g. "application/pdf".
func DetectContentType(prefix []byte) string {
	mt := mimetype.Detect(prefix)
	if mt == nil {
		return "application/octet-stream"
	}
	return mt.String()
}
