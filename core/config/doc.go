// Package config provides configuration management for the invoice reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: MySQL/SQLite connection details for run history
//   - Storage: S3/MinIO credentials and bucket settings for archiving
//   - Log: Logging level and format
//   - Gemini: extraction strategy and model credentials
//   - Lookup: lookup-table source URL
//
// Environment variables map to nested keys, e.g. SERVER_PORT -> server.port,
// GEMINI_API_KEY -> gemini.api_key, LOOKUP_URL -> lookup.url.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
