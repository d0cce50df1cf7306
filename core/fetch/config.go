package fetch

// Config holds configuration for the outbound HTTP client used to snapshot
// raw sources.
type Config struct {
	// UserAgent is sent on every request; wiki APIs require a contactable UA.
	UserAgent string `mapstructure:"user_agent" default:"lang-atlas/1.0 (+https://example.invalid)"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// Retries is how many times a failed request is retried.
	Retries int `mapstructure:"retries" default:"3"`
	// RequestsPerSecond throttles requests to public wiki APIs.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"8"`
}
