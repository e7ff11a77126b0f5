package hires

type Rating string

const (
	RatingExcellent    Rating = "Excellent"
	RatingGood         Rating = "Good"
	RatingAverage      Rating = "Average"
	RatingBelowAverage Rating = "Below Average"
	RatingPoor         Rating = "Poor"
)

// Ratings lists every rating in display order, best first.
var Ratings = []Rating{
	RatingExcellent,
	RatingGood,
	RatingAverage,
	RatingBelowAverage,
	RatingPoor,
}

// ParseRating matches value exactly, case included.
func ParseRating(value string) (Rating, bool) {
	switch Rating(value) {
	case RatingExcellent, RatingGood, RatingAverage, RatingBelowAverage, RatingPoor:
		return Rating(value), true
	}
	return "", false
}

type Outcome string

const (
	OutcomePassed         Outcome = "Passed"
	OutcomeFailedCompany  Outcome = "Failed - Company Decision"
	OutcomeFailedEmployee Outcome = "Failed - Employee Left"
)

var Outcomes = []Outcome{
	OutcomePassed,
	OutcomeFailedCompany,
	OutcomeFailedEmployee,
}

func ParseOutcome(value string) (Outcome, bool) {
	switch Outcome(value) {
	case OutcomePassed, OutcomeFailedCompany, OutcomeFailedEmployee:
		return Outcome(value), true
	}
	return "", false
}

const (
	// UnknownMonthKey collects records whose hire date is missing or unparseable.
	// It sorts after every YYYY-MM key.
	UnknownMonthKey = "unknown"

	monthKeyLayout = "2006-01"
	dateLayout     = "2006-01-02"
)
