package diagram

import "fmt"

// Config selects and configures the diagram backend.
type Config struct {
	// Backend is one of: "pollinations", "huggingface", "search",
	// "fallback". The fallback chain tries huggingface, then
	// pollinations, then search (search only when configured).
	Backend string

	HuggingFaceKey string
	GoogleAPIKey   string
	GoogleCX       string

	// TopK is the number of search result URLs to return.
	TopK int
}

// DefaultConfig returns the zero-credential default: the free
// direct-fetch backend.
func DefaultConfig() Config {
	return Config{Backend: "pollinations", TopK: 3}
}

// New builds a Provider from configuration.
func New(cfg Config) (Provider, error) {
	switch cfg.Backend {
	case "pollinations":
		return NewPollinations(), nil

	case "huggingface":
		if cfg.HuggingFaceKey == "" {
			return nil, fmt.Errorf("PROTON_HF_API_KEY is required for the huggingface backend")
		}
		return NewHuggingFace(cfg.HuggingFaceKey), nil

	case "search":
		if cfg.GoogleAPIKey == "" || cfg.GoogleCX == "" {
			return nil, fmt.Errorf("PROTON_GOOGLE_API_KEY and PROTON_GOOGLE_CX are required for the search backend")
		}
		return NewGoogleSearch(cfg.GoogleAPIKey, cfg.GoogleCX, cfg.TopK), nil

	case "fallback":
		providers := []Provider{}
		if cfg.HuggingFaceKey != "" {
			providers = append(providers, NewHuggingFace(cfg.HuggingFaceKey))
		}
		providers = append(providers, NewPollinations())
		if cfg.GoogleAPIKey != "" && cfg.GoogleCX != "" {
			providers = append(providers, NewGoogleSearch(cfg.GoogleAPIKey, cfg.GoogleCX, cfg.TopK))
		}
		return NewFallback(providers...), nil

	default:
		return nil, fmt.Errorf("unknown diagram backend: %q", cfg.Backend)
	}
}
