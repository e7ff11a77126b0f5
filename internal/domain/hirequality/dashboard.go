package hirequality

import (
	"hirequality/internal/domain/charts"
	"hirequality/internal/domain/hires"
)

type Dashboard struct {
	Summary hires.Summary          `json:"summary"`
	Ratings hires.RatingTally      `json:"ratings"`
	Monthly hires.MonthlyAggregate `json:"monthly"`
	Pie     charts.PieChart        `json:"pie"`
	Bar     charts.BarChart        `json:"bar"`
}

// BuildDashboard recomputes every aggregate and chart from records. A nil
// slice is treated as empty.
func BuildDashboard(records []hires.HireRecord) Dashboard {
	monthly := hires.AggregateMonthly(records)
	ratings := hires.TallyRatings(records)
	return Dashboard{
		Summary: hires.Summarize(records, monthly, ratings),
		Ratings: ratings,
		Monthly: monthly,
		Pie:     charts.RatingPie(ratings),
		Bar:     charts.ProbationBar(monthly),
	}
}

func (d Dashboard) Empty() bool {
	return d.Summary.TotalHires == 0
}
