package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"hirequality/internal/domain/charts"
	"hirequality/internal/domain/hirequality"
	"hirequality/internal/domain/hires"
)

const noDataMessage = "No data"

type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 640, Height: 420}

func (s Size) normalize() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

// RatingPNG draws the rating distribution pie. An all-zero tally renders the
// placeholder panel.
func RatingPNG(w io.Writer, d hirequality.Dashboard, size Size) error {
	pie, err := ratingPie(d, size.normalize())
	if err == ErrNoData {
		return Placeholder(w, size, noDataMessage)
	}
	if err != nil {
		return err
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render rating chart: %w", err)
	}
	return nil
}

func ratingPie(d hirequality.Dashboard, size Size) (chart.PieChart, error) {
	if d.Pie.Total == 0 {
		return chart.PieChart{}, ErrNoData
	}
	values := make([]chart.Value, 0, len(d.Ratings))
	for _, entry := range d.Ratings {
		if entry.Count == 0 {
			continue
		}
		fill := charts.RatingColors[entry.Label]
		values = append(values, chart.Value{
			Label: charts.SliceLabel(string(entry.Label), entry.Count, d.Pie.Total),
			Value: float64(entry.Count),
			Style: chart.Style{
				FillColor:   drawingColor(fill, charts.FillAlpha),
				StrokeColor: drawingColor(fill, 1),
				StrokeWidth: 2,
				FontSize:    9,
			},
		})
	}
	return chart.PieChart{
		Title:  d.Pie.Title,
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}, nil
}

// ProbationPNG draws the stacked monthly outcome bars. Months without any
// recognised outcome still get a slot on the x axis.
func ProbationPNG(w io.Writer, d hirequality.Dashboard, size Size) error {
	size = size.normalize()
	p, err := probationPlot(d)
	if err == ErrNoData {
		return Placeholder(w, size, noDataMessage)
	}
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(pixels(size.Width), pixels(size.Height), "png")
	if err != nil {
		return fmt.Errorf("create probation chart writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write probation chart: %w", err)
	}
	return nil
}

func probationPlot(d hirequality.Dashboard) (*plot.Plot, error) {
	months := d.Monthly.Months
	if len(months) == 0 {
		return nil, ErrNoData
	}
	maxTotal := 0
	for _, month := range months {
		b := d.Monthly.Buckets[month]
		if sum := b.Passed + b.FailedCompany + b.FailedEmployee; sum > maxTotal {
			maxTotal = sum
		}
	}
	if maxTotal == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = d.Bar.Title
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Number of Hires"
	p.Y.Tick.Marker = integerTicks{}
	p.Legend.Top = true

	barWidth := vg.Points(math.Max(8, math.Min(40, 360/float64(len(months)))))
	var below *plotter.BarChart
	for _, outcome := range hires.Outcomes {
		values := d.Monthly.Series(outcome)
		series := make(plotter.Values, len(values))
		for i, v := range values {
			series[i] = float64(v)
		}
		bars, err := plotter.NewBarChart(series, barWidth)
		if err != nil {
			return nil, fmt.Errorf("build %s bars: %w", outcome, err)
		}
		c := charts.OutcomeColors[outcome]
		bars.Color = rgba(c, charts.FillAlpha)
		bars.LineStyle.Color = rgba(c, 1)
		bars.LineStyle.Width = vg.Points(1)
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		p.Legend.Add(charts.OutcomeSeriesLabels[outcome], bars)
	}

	p.NominalX(d.Bar.Config.Data.Labels...)
	p.Y.Min = 0
	p.Y.Max = float64(maxTotal) * 1.15
	return p, nil
}

// integerTicks keeps the hire-count axis on whole numbers.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	start := math.Max(0, math.Ceil(min))
	span := max - start
	step := math.Max(1, math.Ceil(span/8))
	var ticks []plot.Tick
	for v := start; v <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}

func drawingColor(c charts.Color, alpha float64) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

func rgba(c charts.Color, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

// pixels converts a pixel size to vg lengths at the 96 dpi gonum uses for PNG.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}
