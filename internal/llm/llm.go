// Package llm adapts hosted language-model APIs to the strategy optimizer's
// text generator.
package llm

import (
	"fmt"

	"go.uber.org/zap"

	"debtpilot/internal/cache"
	"debtpilot/internal/config"
	"debtpilot/internal/payoff"
)

const (
	ProviderNone      = "none"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// systemPrompt frames every request.
const systemPrompt = "You are a careful personal-finance assistant. You review debt repayment plans that have already been computed and answer with a single JSON object."

// maxOutputTokens bounds a strategy reply.
const maxOutputTokens = 1024

// New returns the text generator selected by cfg, wrapped in a cache when c
// is not nil. It returns nil for the "none" provider.
func New(cfg *config.Config, c cache.Cache, log *zap.SugaredLogger) (payoff.TextGenerator, error) {
	var gen payoff.TextGenerator
	switch cfg.LLMProvider {
	case ProviderNone, "":
		return nil, nil
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %q", cfg.LLMProvider)
		}
		gen = NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", cfg.LLMProvider)
		}
		gen = NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}

	if c == nil {
		return gen, nil
	}
	return NewCachedGenerator(gen, c, cfg.AICacheTTL, log), nil
}
