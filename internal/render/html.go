package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"hirequality/internal/domain/charts"
	"hirequality/internal/domain/hirequality"
)

// ChartJSURL is the script the dashboard page loads Chart.js from.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardPage struct {
	Dashboard   hirequality.Dashboard
	SummaryLine string
	ChartJSURL  string
}

// HTML writes the two-panel dashboard page.
func HTML(w io.Writer, d hirequality.Dashboard) error {
	page := dashboardPage{
		Dashboard:   d,
		SummaryLine: SummaryLine(d),
		ChartJSURL:  ChartJSURL,
	}
	if err := dashboardTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}

func SummaryLine(d hirequality.Dashboard) string {
	s := d.Summary
	if s.TotalHires == 0 {
		return "No hires in the selected period"
	}
	noun := "hires"
	if s.TotalHires == 1 {
		noun = "hire"
	}
	return fmt.Sprintf("%d %s, %s%% passed probation, %d rated",
		s.TotalHires, noun, charts.PercentLabel(s.Passed, s.TotalHires), s.Rated)
}
