package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(503, 30*time.Millisecond)
	c.Record(429, 2*time.Millisecond)
	c.RecordDashboard()
	c.RecordExport(FormatPDF)
	c.RecordExport(FormatPDF)
	c.RecordExport("xml")

	snap := c.Snapshot()
	if snap["requestsTotal"].(uint64) != 3 {
		t.Fatalf("unexpected total: %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"].(uint64) != 1 || snap["rateLimitedTotal"].(uint64) != 1 {
		t.Fatalf("unexpected error counters: %+v", snap)
	}
	if snap["avgDurationMs"].(float64) != 14 {
		t.Fatalf("unexpected average: %v", snap["avgDurationMs"])
	}
	if snap["dashboardsTotal"].(uint64) != 1 {
		t.Fatalf("unexpected dashboards: %v", snap["dashboardsTotal"])
	}
	exports := snap["exportsTotal"].(map[string]uint64)
	if exports[FormatPDF] != 2 || exports[FormatPNG] != 0 {
		t.Fatalf("unexpected exports: %+v", exports)
	}
}

func TestCollectorConcurrentUse(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record(200, time.Millisecond)
			c.RecordDashboard()
		}()
	}
	wg.Wait()
	if got := c.Snapshot()["requestsTotal"].(uint64); got != 50 {
		t.Fatalf("expected 50 requests, got %d", got)
	}
}
