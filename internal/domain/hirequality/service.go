package hirequality

import (
	"context"
	"fmt"
	"log/slog"

	"hirequality/internal/domain/hires"
)

type Recorder interface {
	RecordDashboard()
}

type Service struct {
	store    hires.Store
	recorder Recorder
}

func NewService(store hires.Store, recorder Recorder) *Service {
	return &Service{store: store, recorder: recorder}
}

func (s *Service) Dashboard(ctx context.Context, filter hires.Filter) (Dashboard, error) {
	records, err := s.store.ListHires(ctx, filter)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list hires: %w", err)
	}
	return s.Build(ctx, records), nil
}

// Build is the store-free path used for records posted by callers.
func (s *Service) Build(ctx context.Context, records []hires.HireRecord) Dashboard {
	dashboard := BuildDashboard(records)
	if s.recorder != nil {
		s.recorder.RecordDashboard()
	}
	if unknown, ok := dashboard.Monthly.Buckets[hires.UnknownMonthKey]; ok {
		slog.DebugContext(ctx, "hire records without a usable hire date", "count", unknown.Total)
	}
	return dashboard
}
