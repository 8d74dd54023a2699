package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/standup/internal/flagx"
	"github.com/dmitrijs2005/standup/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the CLI configuration. Intervals
// accept "3s"-style strings or integer nanoseconds.
type FileConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	DatabasePath        *string         `json:"database_path" yaml:"database_path"`
	SummaryEndpoint     string          `json:"summary_endpoint" yaml:"summary_endpoint"`
	SummaryModel        string          `json:"summary_model" yaml:"summary_model"`
	SummaryAPIKey       string          `json:"summary_api_key" yaml:"summary_api_key"`
	GitHubClientID      string          `json:"github_client_id" yaml:"github_client_id"`
	GitHubClientSecret  string          `json:"github_client_secret" yaml:"github_client_secret"`
	GoogleClientID      string          `json:"google_client_id" yaml:"google_client_id"`
	GoogleClientSecret  string          `json:"google_client_secret" yaml:"google_client_secret"`
	ExportDir           string          `json:"export_dir" yaml:"export_dir"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays the file named by -c/-config onto cfg. Read or decode
// errors panic, like bad flags.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	if flagx.ConfigFormat(path) == flagx.FormatYAML {
		err = yaml.Unmarshal(data, fc)
	} else {
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	setString(&cfg.SummaryEndpoint, fc.SummaryEndpoint)
	setString(&cfg.SummaryModel, fc.SummaryModel)
	setString(&cfg.SummaryAPIKey, fc.SummaryAPIKey)
	setString(&cfg.GitHubClientID, fc.GitHubClientID)
	setString(&cfg.GitHubClientSecret, fc.GitHubClientSecret)
	setString(&cfg.GoogleClientID, fc.GoogleClientID)
	setString(&cfg.GoogleClientSecret, fc.GoogleClientSecret)
	setString(&cfg.ExportDir, fc.ExportDir)
	setString(&cfg.LogLevel, fc.LogLevel)

	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	// An explicit empty path selects in-memory storage.
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
