package lookup

// Config holds configuration for the lookup feature.
type Config struct {
	// URL is the HTTP source of the lookup table JSON.
	URL string `mapstructure:"url" default:""`
	// TimeoutSeconds bounds a single table fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
