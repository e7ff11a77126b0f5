package charts

import (
	"fmt"

	"hirequality/internal/domain/hires"
)

type Color struct {
	R, G, B uint8
}

func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Color) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}

const FillAlpha = 0.8

var (
	Green      = Color{R: 76, G: 175, B: 80}
	LightGreen = Color{R: 139, G: 195, B: 74}
	Amber      = Color{R: 255, G: 193, B: 7}
	Orange     = Color{R: 255, G: 152, B: 0}
	Red        = Color{R: 244, G: 67, B: 54}
)

// RatingColors runs from green for the best rating down to red for the worst.
var RatingColors = map[hires.Rating]Color{
	hires.RatingExcellent:    Green,
	hires.RatingGood:         LightGreen,
	hires.RatingAverage:      Amber,
	hires.RatingBelowAverage: Orange,
	hires.RatingPoor:         Red,
}

var OutcomeColors = map[hires.Outcome]Color{
	hires.OutcomePassed:         Green,
	hires.OutcomeFailedCompany:  Red,
	hires.OutcomeFailedEmployee: Orange,
}

var OutcomeSeriesLabels = map[hires.Outcome]string{
	hires.OutcomePassed:         "Passed Probation",
	hires.OutcomeFailedCompany:  "Failed - Company Decision",
	hires.OutcomeFailedEmployee: "Failed - Employee Left",
}
