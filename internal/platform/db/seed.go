package db

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"hirequality/internal/domain/hires"
)

var sampleMonths = []struct {
	key   string
	year  int
	month int
}{
	{key: "jan", year: 2025, month: 1},
	{key: "feb", year: 2025, month: 2},
}

// SampleHires generates the demo data set for January and February 2025.
// The same seed always yields the same records.
func SampleHires(seed int64) []hires.HireRecord {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	var out []hires.HireRecord
	for _, m := range sampleMonths {
		count := 8 + rng.IntN(7)
		for i := 1; i <= count; i++ {
			out = append(out, hires.HireRecord{
				ID:                     fmt.Sprintf("hire-%s-%d", m.key, i),
				HireDate:               fmt.Sprintf("%04d-%02d-%02d", m.year, m.month, 1+rng.IntN(28)),
				FirstPerformanceRating: string(sampleRating(rng.Float64())),
				ProbationOutcome:       string(sampleOutcome(rng.Float64())),
			})
		}
	}
	return out
}

func sampleRating(p float64) hires.Rating {
	switch {
	case p < 0.15:
		return hires.RatingExcellent
	case p < 0.50:
		return hires.RatingGood
	case p < 0.80:
		return hires.RatingAverage
	case p < 0.95:
		return hires.RatingBelowAverage
	default:
		return hires.RatingPoor
	}
}

func sampleOutcome(p float64) hires.Outcome {
	switch {
	case p < 0.85:
		return hires.OutcomePassed
	case p < 0.92:
		return hires.OutcomeFailedCompany
	default:
		return hires.OutcomeFailedEmployee
	}
}

// Seed fills an empty store with SampleHires and returns how many records
// were written. A store that already holds hires is left alone.
func Seed(ctx context.Context, store hires.Store, seed int64) (int, error) {
	existing, err := store.CountHires(ctx)
	if err != nil {
		return 0, fmt.Errorf("count hires: %w", err)
	}
	if existing > 0 {
		slog.Info("seed skipped, store not empty", "hires", existing)
		return 0, nil
	}

	written := 0
	for _, record := range SampleHires(seed) {
		if _, err := store.CreateHire(ctx, record); err != nil {
			return written, fmt.Errorf("seed hire %s: %w", record.ID, err)
		}
		written++
	}
	slog.Info("seeded sample hires", "hires", written)
	return written, nil
}
