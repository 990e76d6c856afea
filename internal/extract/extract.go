// Package extract pulls plain text out of uploaded resumes so a matcher
// can work on it.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"workwise-backend/internal/shared/storage/object"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupported is returned for formats that have no text extractor,
// including legacy binary .doc files.
var ErrUnsupported = errors.New("extract: unsupported format")

// FromStore reads the object at key, extracts its text and stores the
// result next to it as <key>.extracted.txt.
func FromStore(ctx context.Context, store object.ObjectStore, key, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract key=%s mime=%s: %w", key, mimeType, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract key=%s mime=%s: read: %w", key, mimeType, err)
	}

	text, err := TextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		return "", fmt.Errorf("extract key=%s mime=%s: %w", key, mimeType, err)
	}

	if _, err := store.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return "", fmt.Errorf("extract key=%s: save text: %w", key, err)
	}
	return text, nil
}

// TextFromBytes extracts text from an in-memory resume.
func TextFromBytes(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalizeMimeType(mimeType, fileName, data) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return "", ErrUnsupported
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	doc := findZipEntry(zr, "word/document.xml")
	if doc == nil {
		return "", errors.New("word/document.xml not found")
	}
	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return docxText(rc)
}

// docxText keeps character data and turns paragraph and line breaks into
// newlines.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func findZipEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == name {
			return f
		}
	}
	return nil
}

// normalizeMimeType strips parameters and resolves generic zip uploads to
// DOCX when the archive or file name says so.
func normalizeMimeType(mimeType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" && clean != "application/octet-stream" && clean != "" {
		return clean
	}
	if len(data) > 0 {
		if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil && findZipEntry(zr, "word/document.xml") != nil {
			return MimeDOCX
		}
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".docx":
		return MimeDOCX
	case ".pdf":
		return MimePDF
	}
	return clean
}
