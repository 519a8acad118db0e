package llm

import "context"

// MockClient is a canned completion client for testing.
type MockClient struct {
	Response string // returned verbatim when set
	Error    error  // returned instead when set

	// LastSystem and LastUser record the most recent call's inputs.
	LastSystem string
	LastUser   string
}

func (m *MockClient) Provider() string {
	return "mock"
}

func (m *MockClient) Complete(ctx context.Context, system string, user string, maxTokens int, temperature float64) (string, error) {
	m.LastSystem = system
	m.LastUser = user
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "SELECT * FROM production LIMIT 100", nil
}
