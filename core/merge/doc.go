// Package merge implements identity resolution and field merging for the
// languages master table.
//
// Records from different sources are grouped by a normalized lang_id
// (Normalize/MakeID), merged field-by-field under a fixed source-precedence
// policy (pldb > wikipedia > linguist > esolang), then passed through a
// conservative fuzzy collapse that folds near-identical ids together and
// flags each collapse in the surviving row's notes.
//
// The package also provides the match indexes the augment commands use to
// link external registries (Hyperpolyglot, Pygments, Rosetta Code) back to
// master rows: normalized keys, spacing variants, per-source alias tables,
// and a similarity-based last resort.
package merge
