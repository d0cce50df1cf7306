// Package loader provides the plugin-like feature loading system for the
// serve command.
//
// Each HTTP-facing module implements the Feature interface, which defines its
// lifecycle hooks and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Initialization and loading of enabled features via LoadAll()
//
// Registration order is load order, which matters here: the languages feature
// loads the dataset first, and the extensions and qa features aggregate over
// it.
package loader
