package mocks

import (
	"context"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// MockCompletionClient implements domain.CompletionClient for testing
type MockCompletionClient struct {
	CompleteJSONFunc func(ctx context.Context, system, user string) (string, error)
}

// NewMockCompletionClient creates a new MockCompletionClient with default behaviors
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{}
}

// CompleteJSON requests a JSON-shaped completion
func (m *MockCompletionClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if m.CompleteJSONFunc != nil {
		return m.CompleteJSONFunc(ctx, system, user)
	}
	return "", domain.ErrCompletionFailed
}

var _ domain.CompletionClient = (*MockCompletionClient)(nil)
