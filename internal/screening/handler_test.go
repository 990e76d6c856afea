package screening

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"workwise-backend/internal/shared/server/middleware"
	"workwise-backend/internal/shared/storage/object/local"
	"workwise-backend/internal/shared/telemetry"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)

	svc := NewService(local.New(t.TempDir()), CannedMatcher{}, time.Millisecond)
	t.Cleanup(func() {
		svc.Close()
		telemetry.SetOutput(nil)
	})

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func multipartBody(t *testing.T, name, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("X-Guest-Id", "guest-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func pollState(t *testing.T, r http.Handler, want State) Snapshot {
	t.Helper()
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		resp := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/screening", nil))
		var snap Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		if snap.State == want {
			return snap
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", want)
	return Snapshot{}
}

func TestHandlerRejectsWrongType(t *testing.T) {
	r := newTestRouter(t)
	body, ct := multipartBody(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screening/resume", body)
	req.Header.Set("Content-Type", ct)

	resp := serve(r, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "invalid_file_type" || payload.Error.Message != "Please upload a PDF, DOC, or DOCX file." {
		t.Fatalf("unexpected error %+v", payload.Error)
	}
}

func TestHandlerAnalyzeBeforeUpload(t *testing.T) {
	r := newTestRouter(t)
	resp := serve(r, httptest.NewRequest(http.MethodPost, "/api/v1/screening/analyze", nil))
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestHandlerUploadAnalyzeFlow(t *testing.T) {
	r := newTestRouter(t)
	body, ct := multipartBody(t, "resume.doc", "application/msword", []byte{0xD0, 0xCF, 0x11, 0xE0})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/screening/resume", body)
	req.Header.Set("Content-Type", ct)

	resp := serve(r, req)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}
	pollState(t, r, StateUploaded)

	resp = serve(r, httptest.NewRequest(http.MethodPost, "/api/v1/screening/analyze", nil))
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202 from analyze, got %d", resp.Code)
	}
	snap := pollState(t, r, StateAnalyzed)
	if snap.Results == nil || len(snap.Results.Jobs) != 3 || snap.Results.Jobs[0].MatchPercentage != 92 {
		t.Fatalf("unexpected results %+v", snap.Results)
	}

	resp = serve(r, httptest.NewRequest(http.MethodDelete, "/api/v1/screening", nil))
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	pollState(t, r, StateIdle)
}

func TestHandlerPhases(t *testing.T) {
	r := newTestRouter(t)
	resp := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/screening/phases?progress=65", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Phases []Phase `json:"phases"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Phases[0].Progress != 40 || payload.Phases[1].Progress != 25 || payload.Phases[2].Progress != 0 {
		t.Fatalf("unexpected phases %+v", payload.Phases)
	}

	resp = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/screening/phases?progress=abc", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
