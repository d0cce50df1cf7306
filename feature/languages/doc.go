// Package languages exposes the merged language dataset.
//
// It serves two roles. The HTTP side (Service, Handler, Feature) answers
// read-only queries over the richest derived CSV on disk: listing with name
// and source filters, per-language lookup, and alias expansion. The storage
// side (Store, LanguageRow) materializes the same rows in a relational
// database for the export command, so downstream consumers can query with
// SQL instead of parsing CSV.
package languages
