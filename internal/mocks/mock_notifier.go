package mocks

import (
	"context"
	"sync/atomic"
)

// MockNotifier counts publishes; safe for concurrent use.
type MockNotifier struct {
	PublishFunc func(ctx context.Context, message string) error

	published atomic.Int64
}

func (m *MockNotifier) Publish(ctx context.Context, message string) error {
	m.published.Add(1)

	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, message)
	}

	return nil
}

func (m *MockNotifier) Published() int64 {
	return m.published.Load()
}
