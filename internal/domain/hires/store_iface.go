package hires

import "context"

// Store is safe for concurrent use.
type Store interface {
	ListHires(ctx context.Context, filter Filter) ([]HireRecord, error)
	GetHire(ctx context.Context, id string) (HireRecord, error)
	CreateHire(ctx context.Context, record HireRecord) (HireRecord, error)
	CountHires(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
