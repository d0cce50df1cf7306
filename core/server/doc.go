// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure for it.
//
// # Configuration
//
// The Config struct defines the HTTP port and the optional API key protecting
// mutating endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings.
package server
