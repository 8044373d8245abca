package extract

// Strategy names for record extraction.
const (
	StrategyHeuristic = "heuristic"
	StrategyAssisted  = "assisted"
)

// Config holds configuration for the extraction feature.
type Config struct {
	// Strategy selects the extraction strategy (heuristic, assisted).
	Strategy string `mapstructure:"strategy" default:"heuristic"`
	// APIKey is the Gemini API key, required for the assisted strategy.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the Gemini model used by the assisted strategy.
	Model string `mapstructure:"model" default:"gemini-1.5-flash"`
	// CallDelayMS is the courtesy pause between successive model calls in a
	// batch. It is a politeness rate-limit, not a correctness requirement.
	CallDelayMS int `mapstructure:"call_delay_ms" default:"1000"`
}

// IsValidStrategy checks if the configured strategy is valid.
func (c Config) IsValidStrategy() bool {
	switch c.Strategy {
	case StrategyHeuristic, StrategyAssisted:
		return true
	default:
		return false
	}
}
