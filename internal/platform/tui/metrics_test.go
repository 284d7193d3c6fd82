package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/power-crisis/internal/storage"
)

func TestRecordStepCountsEvents(t *testing.T) {
	before := testutil.ToFloat64(gameEvents.WithLabelValues("destroy_equipment"))

	recordStep(time.Millisecond, []string{"destroy_equipment", "restock", "destroy_equipment"})

	if got := testutil.ToFloat64(gameEvents.WithLabelValues("destroy_equipment")) - before; got != 2 {
		t.Errorf("destroy_equipment delta = %v, expected 2", got)
	}
}

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(runsFinished.WithLabelValues("powercrisis"))
	recordRun(storage.Run{GameID: "powercrisis", Seconds: 42})
	if got := testutil.ToFloat64(runsFinished.WithLabelValues("powercrisis")) - before; got != 1 {
		t.Errorf("runs delta = %v, expected 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	recordRejected("rate_limit")

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "powercrisis_sessions_rejected_total") {
		t.Error("metrics page should expose the rejection counter")
	}
}
