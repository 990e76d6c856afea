package local

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workwise-backend/internal/shared/storage/object"
	"workwise-backend/internal/shared/util"
)

// Store keeps uploads on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes r below the owner's hashed directory with a random prefix.
func (s *Store) Save(ctx context.Context, owner string, fileName string, r io.Reader) (object.Object, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return object.Object{}, fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return object.Object{}, err
	}

	ownerDir := util.PrincipalKey(owner)
	key := filepath.ToSlash(filepath.Join(ownerDir, randomID()+"_"+name))

	sniff := make([]byte, object.SniffLen)
	n, readErr := io.ReadFull(r, sniff)
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return object.Object{}, fmt.Errorf("read sniff: %w", readErr)
	}
	sniff = sniff[:n]

	size, err := s.SaveWithKey(ctx, key, "", io.MultiReader(bytes.NewReader(sniff), r))
	if err != nil {
		return object.Object{}, err
	}
	return object.Object{
		Key:         key,
		SizeBytes:   size,
		ContentType: object.DetectContentType(sniff),
	}, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// SaveWithKey writes r at key, replacing any existing object.
func (s *Store) SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	return written, nil
}

func (s *Store) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return filepath.Join(s.baseDir, clean), nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

var _ object.ObjectStore = (*Store)(nil)
