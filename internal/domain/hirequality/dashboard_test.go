package hirequality

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirequality/internal/domain/hires"
)

type countingRecorder struct{ dashboards int }

func (c *countingRecorder) RecordDashboard() { c.dashboards++ }

type failingStore struct{ hires.Store }

func (failingStore) ListHires(context.Context, hires.Filter) ([]hires.HireRecord, error) {
	return nil, errors.New("boom")
}

func TestBuildDashboardExample(t *testing.T) {
	d := BuildDashboard([]hires.HireRecord{
		{ID: "1", HireDate: "2025-01-10", FirstPerformanceRating: "Excellent", ProbationOutcome: "Passed"},
		{ID: "2", HireDate: "2025-01-20", FirstPerformanceRating: "Good", ProbationOutcome: "Failed - Company Decision"},
		{ID: "3", HireDate: "2025-02-05", FirstPerformanceRating: "Excellent", ProbationOutcome: "Passed"},
	})

	assert.Equal(t, 3, d.Summary.TotalHires)
	assert.Equal(t, 2, d.Ratings.Count(hires.RatingExcellent))
	assert.Equal(t, []string{"2025-01", "2025-02"}, d.Monthly.Months)
	assert.Equal(t, []string{"Jan 2025", "Feb 2025"}, d.Bar.Config.Data.Labels)
	assert.Equal(t, []int{2, 1, 0, 0, 0}, d.Pie.Config.Data.Datasets[0].Data)
	assert.False(t, d.Empty())
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil)

	assert.True(t, d.Empty())
	assert.Empty(t, d.Monthly.Months)
	assert.Empty(t, d.Bar.Config.Data.Labels)
	assert.Len(t, d.Ratings, 5)
	assert.Zero(t, d.Pie.Total)
}

func TestServiceDashboardUsesStoreAndRecords(t *testing.T) {
	store := hires.NewMemoryStore(
		hires.HireRecord{ID: "a", HireDate: "2025-01-02", ProbationOutcome: "Passed"},
		hires.HireRecord{ID: "b", HireDate: "2025-03-04", ProbationOutcome: "Failed - Employee Left"},
	)
	recorder := &countingRecorder{}
	svc := NewService(store, recorder)

	d, err := svc.Dashboard(context.Background(), hires.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Summary.TotalHires)
	assert.Equal(t, 1, d.Monthly.Buckets["2025-03"].FailedEmployee)
	assert.Equal(t, 1, recorder.dashboards)
}

func TestServiceDashboardWrapsStoreErrors(t *testing.T) {
	svc := NewService(failingStore{}, nil)

	_, err := svc.Dashboard(context.Background(), hires.Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list hires")
}
