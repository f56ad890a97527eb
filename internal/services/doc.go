// Package services defines shared utilities consumed by the gallery batch
// renderer, the catalog store and the CLI commands.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers, command names and
//     batch entry indexes for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent CLI exit codes.
//
// Use these helpers when wiring new commands so operational behaviour (error
// handling, observability) stays uniform across the tool.
package services
