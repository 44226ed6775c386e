package mock

import (
	"context"

	"github.com/storeq/storeq/internal/directory"
)

// Source is a mock data.Source with configurable results (for resolver and
// CLI tests without a real config file or database).
type Source struct {
	FetchFunc func(ctx context.Context) ([]directory.Record, error)
	CloseFunc func() error
}

// Fetch calls FetchFunc if set, else returns no records.
func (m *Source) Fetch(ctx context.Context) ([]directory.Record, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// Close calls CloseFunc if set, else returns nil.
func (m *Source) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
