// Package config provides configuration management for the language atlas.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Data: raw/derived directory layout and the PLDB clone path
//   - Fetch: HTTP client behavior (user agent, timeouts, rate limit)
//   - Merge: identity-resolution thresholds
//   - Server: HTTP server settings (port, API key)
//   - Database: SQLite/MySQL connection details for exports
//   - Storage: S3/MinIO credentials and bucket settings for publishing
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Data.RawDir)
package config
