package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncParseStarted()
	IncParseCompleted()
	IncParseFailed()
	IncParseOCRFallback()
	IncSaveCompleted()
	IncSaveFailed()
	ObserveParseDurationMs(320)

	out := Render()
	for _, name := range []string{
		"resume_parse_started_total",
		"resume_parse_completed_total",
		"resume_parse_failed_total",
		"resume_parse_ocr_fallback_total",
		"resume_save_completed_total",
		"resume_save_failed_total",
	} {
		if !strings.Contains(out, "# TYPE "+name+" counter") {
			t.Errorf("missing counter %s in output", name)
		}
	}
	if !strings.Contains(out, "# TYPE resume_parse_duration_ms histogram") {
		t.Errorf("missing histogram type line")
	}
	for _, line := range []string{
		`resume_parse_duration_ms_bucket{le="500"}`,
		`resume_parse_duration_ms_bucket{le="+Inf"}`,
		"resume_parse_duration_ms_sum",
		"resume_parse_duration_ms_count",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing histogram line %q", line)
		}
	}
}

func TestHistogramBucketsCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("count = %d, want 4", snap.count)
	}
	if snap.sum != 5555 {
		t.Fatalf("sum = %v, want 5555", snap.sum)
	}
	want := []uint64{1, 2, 3}
	for i, w := range want {
		if snap.counts[i] != w {
			t.Errorf("bucket %d count = %d, want %d", i, snap.counts[i], w)
		}
	}
}

func TestHandlerContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; version=0.0.4" {
		t.Errorf("content type = %q", ct)
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(500); got != "500" {
		t.Errorf("formatFloat(500) = %q", got)
	}
	if got := formatFloat(0.5); got != "0.5" {
		t.Errorf("formatFloat(0.5) = %q", got)
	}
}
