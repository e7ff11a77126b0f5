package charts

import (
	"fmt"
	"strconv"
	"time"

	"hirequality/internal/domain/hires"
)

// PercentLabel formats value as a share of total with one decimal, or "0"
// when total is zero.
func PercentLabel(value, total int) string {
	if total <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(value)/float64(total)*100, 'f', 1, 64)
}

func SliceLabel(label string, value, total int) string {
	return fmt.Sprintf("%s: %d (%s%%)", label, value, PercentLabel(value, total))
}

func FooterLabel(values ...int) string {
	total := 0
	for _, v := range values {
		total += v
	}
	return fmt.Sprintf("Total Hires: %d", total)
}

// MonthLabel turns a YYYY-MM key into "Jan 2025".
func MonthLabel(key string) string {
	if key == hires.UnknownMonthKey {
		return "Unknown"
	}
	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return parsed.Format("Jan 2006")
}
