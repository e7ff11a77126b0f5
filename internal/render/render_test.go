package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirequality/internal/domain/hirequality"
	"hirequality/internal/domain/hires"
)

func exampleDashboard() hirequality.Dashboard {
	return hirequality.BuildDashboard([]hires.HireRecord{
		{ID: "1", HireDate: "2025-01-10", FirstPerformanceRating: "Excellent", ProbationOutcome: "Passed"},
		{ID: "2", HireDate: "2025-01-20", FirstPerformanceRating: "Good", ProbationOutcome: "Failed - Company Decision"},
		{ID: "3", HireDate: "2025-02-05", FirstPerformanceRating: "Excellent", ProbationOutcome: "Passed"},
		{ID: "4", HireDate: "2025-02-15", FirstPerformanceRating: "Poor", ProbationOutcome: "Failed - Employee Left"},
	})
}

func TestHTMLRendersBothPanels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, exampleDashboard()))

	page := buf.String()
	assert.Contains(t, page, "First Performance Rating Distribution")
	assert.Contains(t, page, "Probation Outcomes by Month")
	assert.Contains(t, page, `id="rating-chart"`)
	assert.Contains(t, page, `id="probation-chart"`)
	assert.Contains(t, page, "Feb 2025")
	assert.Contains(t, page, "tooltipFooters")
	assert.Contains(t, page, "4 hires, 50.0% passed probation, 4 rated")
	assert.Less(t, strings.Index(page, "rating-chart"), strings.Index(page, "probation-chart"), "rating panel comes first")
}

func TestHTMLIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, HTML(&first, exampleDashboard()))
	require.NoError(t, HTML(&second, exampleDashboard()))
	assert.Equal(t, first.String(), second.String())
}

func TestHTMLEscapesRecordContent(t *testing.T) {
	d := hirequality.BuildDashboard([]hires.HireRecord{{HireDate: "</script><script>alert(1)</script>"}})
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, d))
	assert.NotContains(t, buf.String(), "<script>alert(1)")
}

func TestSummaryLine(t *testing.T) {
	assert.Equal(t, "No hires in the selected period", SummaryLine(hirequality.BuildDashboard(nil)))
	one := hirequality.BuildDashboard([]hires.HireRecord{{HireDate: "2025-01-01", ProbationOutcome: "Passed"}})
	assert.Equal(t, "1 hire, 100.0% passed probation, 0 rated", SummaryLine(one))
}

func TestRatingPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RatingPNG(&buf, exampleDashboard(), Size{Width: 400, Height: 300}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestProbationPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ProbationPNG(&buf, exampleDashboard(), Size{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.InDelta(t, DefaultSize.Width, img.Bounds().Dx(), 1)
	assert.InDelta(t, DefaultSize.Height, img.Bounds().Dy(), 1)
}

func TestPNGPlaceholderForEmptyDashboard(t *testing.T) {
	empty := hirequality.BuildDashboard(nil)
	for name, fn := range map[string]func(*bytes.Buffer) error{
		"rating":    func(b *bytes.Buffer) error { return RatingPNG(b, empty, Size{Width: 200, Height: 100}) },
		"probation": func(b *bytes.Buffer) error { return ProbationPNG(b, empty, Size{Width: 200, Height: 100}) },
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fn(&buf))
			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 200, img.Bounds().Dx())
			assert.Equal(t, 100, img.Bounds().Dy())
		})
	}
}

func TestProbationPlotNeedsRecognisedOutcomes(t *testing.T) {
	d := hirequality.BuildDashboard([]hires.HireRecord{{HireDate: "2025-01-01", ProbationOutcome: "Pending"}})
	_, err := probationPlot(d)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestIntegerTicks(t *testing.T) {
	ticks := integerTicks{}.Ticks(0, 4.6)
	require.Len(t, ticks, 5)
	for i, tick := range ticks {
		assert.Equal(t, float64(i), tick.Value)
	}
	assert.Equal(t, "4", ticks[4].Label)

	wide := integerTicks{}.Ticks(0, 80)
	assert.LessOrEqual(t, len(wide), 9)
	assert.Equal(t, "0", wide[0].Label)
}

func TestPDF(t *testing.T) {
	for name, d := range map[string]hirequality.Dashboard{
		"populated": exampleDashboard(),
		"empty":     hirequality.BuildDashboard(nil),
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PDF(&buf, d))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}
