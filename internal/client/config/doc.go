// Package config loads runtime configuration for the standup CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. STANDUP_SUMMARY_API_KEY from the environment.
//  4. Command-line flags, which override earlier values.
//
// # File schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "standup.db",
//	  "summary_model": "gemini-1.5-flash",
//	  "github_client_id": "Iv1.0123456789abcdef",
//	  "google_client_id": "1234-abc.apps.googleusercontent.com",
//	  "google_client_secret": "GOCSPX-...",
//	  "export_dir": "exports"
//	}
package config
