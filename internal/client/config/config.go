package config

import (
	"os"
	"time"
)

// SummaryAPIKeyEnv names the environment variable holding the summary API key.
const SummaryAPIKeyEnv = "STANDUP_SUMMARY_API_KEY"

// Config holds runtime settings for the standup CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the sync server gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: local sqlite file; empty keeps everything in memory.
//   - SummaryEndpoint / SummaryModel / SummaryAPIKey: text-generation endpoint.
//   - GitHubClientID / GitHubClientSecret, GoogleClientID / GoogleClientSecret:
//     OAuth apps used for device sign-in.
//   - ExportDir: where exported files are written.
//   - LogLevel: slog level name; logs go to stderr.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	SummaryEndpoint     string
	SummaryModel        string
	SummaryAPIKey       string
	GitHubClientID      string
	GitHubClientSecret  string
	GoogleClientID      string
	GoogleClientSecret  string
	ExportDir           string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "standup.db"
	c.SummaryEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	c.SummaryModel = "gemini-1.5-flash"
	c.ExportDir = "exports"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present), the environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv(SummaryAPIKeyEnv); v != "" {
		cfg.SummaryAPIKey = v
	}
}
