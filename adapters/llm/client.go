package llm

import (
	"esgchat/internal"
	"esgchat/internal/config"
	"esgchat/internal/errors"
	"esgchat/ports"
)

// NewFromConfig selects a completion client once at construction time.
// The configured provider wins when its credential is present; otherwise
// the other provider is used as a silent fallback. With no credentials
// at all, no client is returned and synthesis reports itself
// unavailable instead of failing requests.
func NewFromConfig(cfg config.AIConfig, logger *internal.Logger) (ports.CompletionClient, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	log := logger.Named("llm")

	openai := func() ports.CompletionClient {
		return NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}
	anthropic := func() ports.CompletionClient {
		return NewAnthropicClient(cfg.AnthropicKey, cfg.AnthropicModel)
	}

	primary, fallback := openai, anthropic
	primaryKey, fallbackKey := cfg.OpenAIKey, cfg.AnthropicKey
	if cfg.DefaultProvider == "anthropic" {
		primary, fallback = anthropic, openai
		primaryKey, fallbackKey = cfg.AnthropicKey, cfg.OpenAIKey
	}

	switch {
	case primaryKey != "":
		client := primary()
		log.Info("using %s completion provider", client.Provider())
		return client, nil
	case fallbackKey != "":
		client := fallback()
		log.Warn("%s credential absent, falling back to %s", cfg.DefaultProvider, client.Provider())
		return client, nil
	default:
		return nil, errors.SynthesisUnavailable("no completion provider configured")
	}
}
