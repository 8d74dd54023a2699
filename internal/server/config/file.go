package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/standup/internal/flagx"
	"github.com/dmitrijs2005/standup/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the server configuration. Durations
// accept "90s"-style strings or integer nanoseconds. Absent fields keep
// their current value.
type FileConfig struct {
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                  string          `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                    string          `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration" yaml:"refresh_token_validity_duration"`
	TokenCleanupInterval         *timex.Duration `json:"token_cleanup_interval" yaml:"token_cleanup_interval"`
	S3RootUser                   string          `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword               string          `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                     string          `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                     string          `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint               string          `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ExportURLValidity            *timex.Duration `json:"export_url_validity" yaml:"export_url_validity"`
	GitHubAPIBaseURL             string          `json:"github_api_base_url" yaml:"github_api_base_url"`
	GoogleUserInfoURL            string          `json:"google_userinfo_url" yaml:"google_userinfo_url"`
	LogLevel                     string          `json:"log_level" yaml:"log_level"`
	LogFormat                    string          `json:"log_format" yaml:"log_format"`
}

// parseFile overlays the file named by -c/-config onto config. Without the
// flag nothing is loaded. Unreadable or malformed files panic, like bad flags.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	if flagx.ConfigFormat(path) == flagx.FormatYAML {
		err = yaml.Unmarshal(data, c)
	} else {
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.GitHubAPIBaseURL, c.GitHubAPIBaseURL)
	setString(&config.GoogleUserInfoURL, c.GoogleUserInfoURL)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.TokenCleanupInterval != nil {
		config.TokenCleanupInterval = c.TokenCleanupInterval.Duration
	}
	if c.ExportURLValidity != nil {
		config.ExportURLValidity = c.ExportURLValidity.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
