package hires

import "time"

// HireRecord is one hire as supplied by callers. Rating and outcome are kept as
// raw strings so that unrecognised values survive until aggregation.
type HireRecord struct {
	ID                     string `json:"id"`
	HireDate               string `json:"hireDate"`
	FirstPerformanceRating string `json:"firstPerformanceRating,omitempty"`
	ProbationOutcome       string `json:"probationOutcome,omitempty"`
}

type MonthlyBucket struct {
	Total          int `json:"total"`
	Passed         int `json:"passed"`
	FailedCompany  int `json:"failedCompany"`
	FailedEmployee int `json:"failedEmployee"`
}

type MonthlyAggregate struct {
	Buckets map[string]MonthlyBucket `json:"buckets"`
	Months  []string                 `json:"months"`
}

type RatingCount struct {
	Label Rating `json:"label"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalHires     int     `json:"totalHires"`
	Passed         int     `json:"passed"`
	FailedCompany  int     `json:"failedCompany"`
	FailedEmployee int     `json:"failedEmployee"`
	NoOutcome      int     `json:"noOutcome"`
	Rated          int     `json:"rated"`
	PassRate       float64 `json:"passRate"`
}

type Filter struct {
	From *time.Time
	To   *time.Time
}

// Matches reports whether the record's hire date falls inside the filter.
// Records without a parseable date only match an empty filter.
func (f Filter) Matches(record HireRecord) bool {
	if f.From == nil && f.To == nil {
		return true
	}
	date, ok := ParseHireDate(record.HireDate)
	if !ok {
		return false
	}
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	return true
}
