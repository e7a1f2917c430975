package report

import (
	"context"
	"io"

	"troupe-app-go/internal/domain/availability"
	"troupe-app-go/internal/domain/user"
)

// UserSource and RecordSource expose the store snapshots the aggregator
// projects over.
type UserSource interface {
	List(ctx context.Context) ([]user.User, error)
}

type RecordSource interface {
	List(ctx context.Context) ([]availability.Record, error)
}

type Service struct {
	users   UserSource
	records RecordSource
}

func NewService(users UserSource, records RecordSource) *Service {
	return &Service{users: users, records: records}
}

// Generate reads the current users and records and builds the report rows.
// Callers are responsible for the role gate on includeStats.
func (s *Service) Generate(ctx context.Context, start, end string, includeStats bool) ([]Row, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	return Build(start, end, users, records, includeStats)
}

// Export writes the CSV form of the report to w.
func (s *Service) Export(ctx context.Context, w io.Writer, start, end string, includeStats bool) error {
	rows, err := s.Generate(ctx, start, end, includeStats)
	if err != nil {
		return err
	}
	return WriteCSV(w, rows, includeStats)
}
