package ai

import (
	"context"
	"strings"

	"esgchat/internal"
	"esgchat/ports"
)

// Synthesizer turns a user question plus schema context into a candidate
// SQL query via the configured completion client.
type Synthesizer struct {
	client      ports.CompletionClient
	maxTokens   int
	temperature float64
	log         *internal.Logger
}

// NewSynthesizer creates a synthesizer. The client may be nil when no
// provider is configured; synthesis then reports itself unavailable.
func NewSynthesizer(client ports.CompletionClient, maxTokens int, temperature float64, logger *internal.Logger) *Synthesizer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Synthesizer{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		log:         logger.Named("synthesizer"),
	}
}

// Synthesize returns the candidate query and true, or "" and false when
// no query could be produced. Provider failures never propagate as
// errors; the caller reports a distinct "could not generate a query"
// outcome instead.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, schema SchemaSummary) (string, bool) {
	if s.client == nil {
		s.log.Warn("no completion provider configured")
		return "", false
	}

	prompt := buildSQLPrompt(question, schema)
	s.log.Debug("calling %s provider (prompt %d chars)", s.client.Provider(), len(prompt))

	raw, err := s.client.Complete(ctx, prompt, question, s.maxTokens, s.temperature)
	if err != nil {
		s.log.Error("completion call failed: %v", err)
		return "", false
	}

	query := stripCodeFence(raw)
	if query == "" {
		s.log.Warn("provider returned an empty completion")
		return "", false
	}
	return query, true
}

// stripCodeFence removes a leading/trailing markdown code fence from the
// completion and trims whitespace.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```sql") {
		text = strings.TrimPrefix(text, "```sql")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
