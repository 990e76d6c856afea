package util

import (
	"errors"
	"path"
	"strings"
	"unicode"
)

// MaxFileNameLen bounds stored upload names. Longer names keep their
// extension and lose the tail of the base name.
const MaxFileNameLen = 128

var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded file name safe to embed in a storage
// key: separators become underscores, control characters are dropped and
// traversal is rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidFileName
	}
	if len(s) > MaxFileNameLen {
		ext := path.Ext(s)
		if len(ext) >= MaxFileNameLen {
			ext = ""
		}
		s = strings.ToValidUTF8(s[:MaxFileNameLen-len(ext)], "") + ext
	}
	return s, nil
}
