// Package logger provides a structured logging facility based on Zap.
//
// It is shared by the batch pipeline commands and the HTTP server: pipeline
// stages log progress counters and QA findings, while the serve path attaches
// request correlation.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context
// and attaches it to the log entry, ensuring that all logs related to a
// specific request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Build complete")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
