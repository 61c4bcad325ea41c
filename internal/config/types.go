package config

// holds the process-wide configuration loaded from environment variables
type Config struct {
	OpenAIKey          string
	AnthropicKey       string
	SupabaseConnString string
	RedisURL           string
	ServiceToken       string
	JWTSecret          string
	Environment        string
	AllowedOrigins     []string

	// WooCommerce order endpoint credentials
	WooBaseURL        string
	WooConsumerKey    string
	WooConsumerSecret string
}

// command line flags for the product ingester
type IngestFlags struct {
	Path  string
	Clear bool
}
