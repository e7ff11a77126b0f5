package charts

import "hirequality/internal/domain/hires"

const (
	RatingPanelTitle    = "First Performance Rating Distribution"
	RatingPanelSubtitle = "Distribution of first performance review ratings for new hires"
)

type PieChart struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Config   Config `json:"config"`
	// TooltipLabels holds the hover text of each slice, aligned with the labels.
	TooltipLabels []string `json:"tooltipLabels"`
	Total         int      `json:"total"`
}

func RatingPie(tally hires.RatingTally) PieChart {
	labels := make([]string, 0, len(hires.Ratings))
	values := make([]int, 0, len(hires.Ratings))
	fills := make(ColorSet, 0, len(hires.Ratings))
	borders := make(ColorSet, 0, len(hires.Ratings))
	for _, rating := range hires.Ratings {
		color := RatingColors[rating]
		labels = append(labels, string(rating))
		values = append(values, tally.Count(rating))
		fills = append(fills, color.RGBA(FillAlpha))
		borders = append(borders, color.RGB())
	}

	total := tally.Total()
	tooltips := make([]string, len(labels))
	for i := range labels {
		tooltips[i] = SliceLabel(labels[i], values[i], total)
	}

	return PieChart{
		Title:    RatingPanelTitle,
		Subtitle: RatingPanelSubtitle,
		Config: Config{
			Type: "pie",
			Data: Data{
				Labels: labels,
				Datasets: []Dataset{{
					Label:           "Number of Hires",
					Data:            values,
					BackgroundColor: fills,
					BorderColor:     borders,
					BorderWidth:     2,
				}},
			},
			Options: Options{
				Responsive: true,
				Plugins: Plugins{
					Legend: legend("right"),
				},
			},
		},
		TooltipLabels: tooltips,
		Total:         total,
	}
}
