// Package catalog records rendered gallery entries in SQLite so earlier
// batches can be listed and inspected again.
//
// A Store owns the database connection and an advisory file lock next to the
// database; only one process writes the catalog at a time. Every rendered
// token becomes one Record carrying the raw token, the encoded output (or the
// parse error) and the decoded filename and caption. Records from the same
// invocation share a batch ID.
//
// Schema changes bump schemaVersion in schema.go. Older databases are rejected
// with ErrSchemaMismatch rather than migrated.
package catalog
