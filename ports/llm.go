package ports

import "context"

// CompletionClient is the text-completion collaborator. Any failure
// (network, auth, quota) is returned as an error; callers map it to a
// "no query produced" outcome rather than letting it escape.
type CompletionClient interface {
	Complete(ctx context.Context, system string, user string, maxTokens int, temperature float64) (string, error)

	// Provider names the backing provider, for logging.
	Provider() string
}
