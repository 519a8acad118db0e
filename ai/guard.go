package ai

import (
	"strings"

	"esgchat/internal/errors"
)

// ValidateReadOnly rejects any query whose trimmed, upper-cased text does
// not start with SELECT. This is a textual prefix check, a minimal safety
// gate rather than a parser: it does not catch statement chaining via
// semicolons or statements hidden behind SQL comments. Strengthening it
// would change which queries are accepted, so the gap stays documented
// instead of silently hardened.
func ValidateReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return errors.RejectedQuery("query cannot be empty")
	}
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return errors.RejectedQuery("only SELECT queries are allowed")
	}
	return nil
}
