package screening

import "strings"

// MaxFileSize is the largest accepted resume.
const MaxFileSize int64 = 10 << 20

var allowedTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ValidateFile accepts PDF, DOC and DOCX resumes up to MaxFileSize. The
// type is checked before the size.
func ValidateFile(f FileInfo) error {
	mime := strings.ToLower(strings.TrimSpace(strings.Split(f.MIMEType, ";")[0]))
	if _, ok := allowedTypes[mime]; !ok {
		return &RejectionError{
			Err:     ErrInvalidFileType,
			Title:   "Invalid file type",
			Message: "Please upload a PDF, DOC, or DOCX file.",
		}
	}
	if f.Size > MaxFileSize {
		return &RejectionError{
			Err:     ErrFileTooLarge,
			Title:   "File too large",
			Message: "Resume must be less than 10MB.",
		}
	}
	return nil
}
