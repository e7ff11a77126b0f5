package hires

import (
	"sort"
	"strings"
	"time"
)

// RatingTally always holds one entry per rating, in Ratings order.
type RatingTally []RatingCount

func (t RatingTally) Count(rating Rating) int {
	for _, entry := range t {
		if entry.Label == rating {
			return entry.Count
		}
	}
	return 0
}

func (t RatingTally) Total() int {
	total := 0
	for _, entry := range t {
		total += entry.Count
	}
	return total
}

// ParseHireDate reads the leading YYYY-MM-DD of value, so both plain dates and
// RFC3339 timestamps resolve to the calendar date that was written.
func ParseHireDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(dateLayout) {
		return time.Time{}, false
	}
	parsed, err := time.Parse(dateLayout, value[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	if len(value) > len(dateLayout) {
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return time.Time{}, false
		}
	}
	return parsed, true
}

func MonthKey(hireDate string) string {
	date, ok := ParseHireDate(hireDate)
	if !ok {
		return UnknownMonthKey
	}
	return date.Format(monthKeyLayout)
}

func AggregateMonthly(records []HireRecord) MonthlyAggregate {
	buckets := make(map[string]MonthlyBucket)
	for _, record := range records {
		key := MonthKey(record.HireDate)
		bucket := buckets[key]
		bucket.Total++
		if outcome, ok := ParseOutcome(record.ProbationOutcome); ok {
			switch outcome {
			case OutcomePassed:
				bucket.Passed++
			case OutcomeFailedCompany:
				bucket.FailedCompany++
			case OutcomeFailedEmployee:
				bucket.FailedEmployee++
			}
		}
		buckets[key] = bucket
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Strings(months)

	return MonthlyAggregate{Buckets: buckets, Months: months}
}

func TallyRatings(records []HireRecord) RatingTally {
	tally := make(RatingTally, len(Ratings))
	index := make(map[Rating]int, len(Ratings))
	for i, rating := range Ratings {
		tally[i] = RatingCount{Label: rating}
		index[rating] = i
	}
	for _, record := range records {
		rating, ok := ParseRating(record.FirstPerformanceRating)
		if !ok {
			continue
		}
		tally[index[rating]].Count++
	}
	return tally
}

// Series returns one value per month for the given outcome, aligned with Months.
func (a MonthlyAggregate) Series(outcome Outcome) []int {
	values := make([]int, len(a.Months))
	for i, month := range a.Months {
		bucket := a.Buckets[month]
		switch outcome {
		case OutcomePassed:
			values[i] = bucket.Passed
		case OutcomeFailedCompany:
			values[i] = bucket.FailedCompany
		case OutcomeFailedEmployee:
			values[i] = bucket.FailedEmployee
		}
	}
	return values
}

func (a MonthlyAggregate) Total() int {
	total := 0
	for _, bucket := range a.Buckets {
		total += bucket.Total
	}
	return total
}

func Summarize(records []HireRecord, monthly MonthlyAggregate, ratings RatingTally) Summary {
	summary := Summary{TotalHires: len(records), Rated: ratings.Total()}
	for _, bucket := range monthly.Buckets {
		summary.Passed += bucket.Passed
		summary.FailedCompany += bucket.FailedCompany
		summary.FailedEmployee += bucket.FailedEmployee
	}
	summary.NoOutcome = summary.TotalHires - summary.Passed - summary.FailedCompany - summary.FailedEmployee
	if summary.TotalHires > 0 {
		summary.PassRate = float64(summary.Passed) / float64(summary.TotalHires)
	}
	return summary
}
