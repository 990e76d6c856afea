package screening

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/server/respond"
	"workwise-backend/internal/shared/storage/object"
)

// maxRequestSize leaves room above MaxFileSize so oversized resumes still
// reach validation and get the size message.
const maxRequestSize = MaxFileSize + 8<<20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches screening routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screening/resume", h.upload)
	rg.POST("/screening/analyze", h.analyze)
	rg.GET("/screening", h.get)
	rg.DELETE("/screening", h.reset)
	rg.GET("/screening/phases", h.phases)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeRejection(c, ValidateFile(FileInfo{MIMEType: "application/pdf", Size: tooBig.Limit + 1}))
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	mimeType, err := contentType(fileHeader, file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	info := FileInfo{Name: fileHeader.Filename, MIMEType: mimeType, Size: fileHeader.Size}
	snap, err := h.Svc.Upload(c.Request.Context(), middleware.UserIDFromContext(c), info, file)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusAccepted, snap)
}

func (h *Handler) analyze(c *gin.Context) {
	snap, err := h.Svc.Analyze(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusAccepted, snap)
}

func (h *Handler) get(c *gin.Context) {
	respond.OK(c, h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c)))
}

func (h *Handler) reset(c *gin.Context) {
	h.Svc.Reset(c.Request.Context(), middleware.UserIDFromContext(c))
	c.Status(http.StatusNoContent)
}

func (h *Handler) phases(c *gin.Context) {
	progress, err := strconv.Atoi(strings.TrimSpace(c.Query("progress")))
	if err != nil || progress < 0 || progress > 100 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "progress must be an integer between 0 and 100", nil)
		return
	}
	respond.OK(c, gin.H{"progress": progress, "phases": Phases(progress)})
}

// contentType trusts the part header unless it is missing or generic, in
// which case the leading bytes are sniffed.
func contentType(fh *multipart.FileHeader, f multipart.File) (string, error) {
	declared := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if declared != "" && !strings.HasPrefix(declared, "application/octet-stream") {
		return declared, nil
	}
	buf := make([]byte, object.SniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return object.DetectContentType(buf[:n]), nil
}

func writeError(c *gin.Context, err error) {
	var rej *RejectionError
	switch {
	case errors.As(err, &rej):
		writeRejection(c, rej)
	case errors.Is(err, ErrBusy):
		respond.Error(c, http.StatusConflict, "busy", "an upload or analysis is already in progress", nil)
	case errors.Is(err, ErrNotUploaded):
		respond.Error(c, http.StatusConflict, "not_uploaded", "upload a resume before analyzing", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "screening failed", nil)
	}
}

func writeRejection(c *gin.Context, err error) {
	var rej *RejectionError
	if !errors.As(err, &rej) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file", nil)
		return
	}
	status, code := http.StatusBadRequest, "invalid_file_type"
	if errors.Is(rej, ErrFileTooLarge) {
		status, code = http.StatusRequestEntityTooLarge, "file_too_large"
	}
	respond.Error(c, status, code, rej.Message, gin.H{"title": rej.Title})
}
