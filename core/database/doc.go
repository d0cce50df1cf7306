// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure SQLite and MySQL connections based on the application's
// configuration. SQLite is the default: the exported language table is a
// local artifact and should not require a running server.
//
// # Connect
//
// The generic Connect function establishes a connection for the configured
// driver. It is agnostic to the table layout; schema concerns live in the
// feature packages that migrate their own models.
//
// # Schema Inspection
//
// The package includes tools to inspect the live schema, used after an
// export to verify that the language table materialized with the expected
// columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "languages")
package database
