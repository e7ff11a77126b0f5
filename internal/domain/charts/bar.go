package charts

import "hirequality/internal/domain/hires"

const (
	ProbationPanelTitle    = "Probation Outcomes by Month"
	ProbationPanelSubtitle = "Monthly breakdown of probation period results"
)

type BarChart struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Config   Config `json:"config"`
	// TooltipFooters holds the per-month footer shown when hovering an index.
	TooltipFooters []string `json:"tooltipFooters"`
}

func ProbationBar(monthly hires.MonthlyAggregate) BarChart {
	labels := make([]string, len(monthly.Months))
	for i, month := range monthly.Months {
		labels[i] = MonthLabel(month)
	}

	datasets := make([]Dataset, 0, len(hires.Outcomes))
	series := make([][]int, 0, len(hires.Outcomes))
	for _, outcome := range hires.Outcomes {
		color := OutcomeColors[outcome]
		values := monthly.Series(outcome)
		series = append(series, values)
		datasets = append(datasets, Dataset{
			Label:           OutcomeSeriesLabels[outcome],
			Data:            values,
			BackgroundColor: ColorSet{color.RGBA(FillAlpha)},
			BorderColor:     ColorSet{color.RGB()},
			BorderWidth:     1,
		})
	}

	footers := make([]string, len(labels))
	for i := range labels {
		column := make([]int, 0, len(series))
		for _, values := range series {
			column = append(column, values[i])
		}
		footers[i] = FooterLabel(column...)
	}

	return BarChart{
		Title:    ProbationPanelTitle,
		Subtitle: ProbationPanelSubtitle,
		Config: Config{
			Type: "bar",
			Data: Data{Labels: labels, Datasets: datasets},
			Options: Options{
				Responsive:  true,
				Interaction: &Interaction{Mode: "index", Intersect: false},
				Plugins: Plugins{
					Legend: legend("top"),
				},
				Scales: map[string]Scale{
					"x": {
						Stacked: true,
						Grid:    &Grid{Display: false},
						Title:   &AxisTitle{Display: true, Text: "Month"},
					},
					"y": {
						Stacked:     true,
						BeginAtZero: true,
						Title:       &AxisTitle{Display: true, Text: "Number of Hires"},
						Ticks:       &Ticks{Precision: 0},
					},
				},
			},
		},
		TooltipFooters: footers,
	}
}
