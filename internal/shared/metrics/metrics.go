package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	applicationsCreatedTotal   atomic.Uint64
	applicationsDuplicateTotal atomic.Uint64
	screeningUploadsTotal      atomic.Uint64
	screeningRejectedTotal     atomic.Uint64
	screeningAnalysesTotal     atomic.Uint64
	interviewsScheduledTotal   atomic.Uint64
	notificationsFailedTotal   atomic.Uint64
	persistFailedTotal         atomic.Uint64

	workerReceivedTotal  atomic.Uint64
	workerDeliveredTotal atomic.Uint64
	workerDroppedTotal   atomic.Uint64

	applyLatency = newHistogram([]float64{10, 50, 100, 250, 500, 1000, 2000, 5000})
)

func IncApplicationsCreated()   { applicationsCreatedTotal.Add(1) }
func IncApplicationsDuplicate() { applicationsDuplicateTotal.Add(1) }
func IncScreeningUploads()      { screeningUploadsTotal.Add(1) }
func IncScreeningRejected()     { screeningRejectedTotal.Add(1) }
func IncScreeningAnalyses()     { screeningAnalysesTotal.Add(1) }
func IncInterviewsScheduled()   { interviewsScheduledTotal.Add(1) }
func IncNotificationsFailed()   { notificationsFailedTotal.Add(1) }

// Worker counters for queued interview notifications. Dropped messages
// were deleted without delivery because they can never be processed.
func IncWorkerReceived()  { workerReceivedTotal.Add(1) }
func IncWorkerDelivered() { workerDeliveredTotal.Add(1) }
func IncWorkerDropped()   { workerDroppedTotal.Add(1) }

// IncPersistFailed counts best-effort client state writes that did not land.
func IncPersistFailed() { persistFailedTotal.Add(1) }

// ObserveApplyLatencyMs records how long an apply request took end to end.
func ObserveApplyLatencyMs(value float64) {
	if value < 0 {
		value = 0
	}
	applyLatency.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "applications_created_total", "Job applications recorded", applicationsCreatedTotal.Load())
	writeCounter(&buf, "applications_duplicate_total", "Apply calls absorbed because the job was already applied", applicationsDuplicateTotal.Load())
	writeCounter(&buf, "screening_uploads_total", "Resume uploads accepted", screeningUploadsTotal.Load())
	writeCounter(&buf, "screening_rejected_total", "Resume uploads rejected by validation", screeningRejectedTotal.Load())
	writeCounter(&buf, "screening_analyses_total", "Resume analyses completed", screeningAnalysesTotal.Load())
	writeCounter(&buf, "interviews_scheduled_total", "Interviews scheduled", interviewsScheduledTotal.Load())
	writeCounter(&buf, "notifications_failed_total", "Interview notifications that failed", notificationsFailedTotal.Load())
	writeCounter(&buf, "client_state_persist_failed_total", "Client state writes that failed", persistFailedTotal.Load())
	writeCounter(&buf, "worker_notifications_received_total", "Queued notifications received by the worker", workerReceivedTotal.Load())
	writeCounter(&buf, "worker_notifications_delivered_total", "Queued notifications delivered and deleted", workerDeliveredTotal.Load())
	writeCounter(&buf, "worker_notifications_dropped_total", "Queued notifications deleted as unprocessable", workerDroppedTotal.Load())
	writeHistogram(&buf, "apply_latency_ms", "Apply request latency in milliseconds", applyLatency.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
