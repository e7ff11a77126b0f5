package metrics

import (
	"sync/atomic"
	"time"
)

const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

type Collector struct {
	totalRequests   atomic.Uint64
	errorRequests   atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64
	dashboards      atomic.Uint64
	exportsHTML     atomic.Uint64
	exportsPNG      atomic.Uint64
	exportsPDF      atomic.Uint64
	exportsJSON     atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	if status >= 500 {
		c.errorRequests.Add(1)
	}
	if status == 429 {
		c.rateLimited.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

// RecordDashboard counts one aggregation pass over a record set.
func (c *Collector) RecordDashboard() {
	c.dashboards.Add(1)
}

func (c *Collector) RecordExport(format string) {
	switch format {
	case FormatHTML:
		c.exportsHTML.Add(1)
	case FormatPNG:
		c.exportsPNG.Add(1)
	case FormatPDF:
		c.exportsPDF.Add(1)
	case FormatJSON:
		c.exportsJSON.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      c.errorRequests.Load(),
		"rateLimitedTotal": c.rateLimited.Load(),
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"dashboardsTotal":  c.dashboards.Load(),
		"exportsTotal": map[string]uint64{
			FormatHTML: c.exportsHTML.Load(),
			FormatPNG:  c.exportsPNG.Load(),
			FormatPDF:  c.exportsPDF.Load(),
			FormatJSON: c.exportsJSON.Load(),
		},
	}
}
