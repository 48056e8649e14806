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
	scanStartedTotal   atomic.Uint64
	scanCompletedTotal atomic.Uint64
	scanFailedTotal    atomic.Uint64
	scanRejectedTotal  atomic.Uint64

	scanDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

// IncScanStarted increments the started counter.
func IncScanStarted() {
	scanStartedTotal.Add(1)
}

// IncScanCompleted increments the completed counter.
func IncScanCompleted() {
	scanCompletedTotal.Add(1)
}

// IncScanFailed increments the failed counter.
func IncScanFailed() {
	scanFailedTotal.Add(1)
}

// IncScanRejected increments the counter for scans blocked by validation or quota.
func IncScanRejected() {
	scanRejectedTotal.Add(1)
}

// ObserveScanDurationMs records a scan duration in milliseconds.
func ObserveScanDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scanDuration.Observe(value)
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
	writeCounter(&buf, "scan_started_total", "Total resume scans started", scanStartedTotal.Load())
	writeCounter(&buf, "scan_completed_total", "Total resume scans completed", scanCompletedTotal.Load())
	writeCounter(&buf, "scan_failed_total", "Total resume scans failed", scanFailedTotal.Load())
	writeCounter(&buf, "scan_rejected_total", "Total resume scans rejected before the generator call", scanRejectedTotal.Load())
	writeHistogram(&buf, "scan_duration_ms", "Resume scan duration in milliseconds", scanDuration.Snapshot())
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
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
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
