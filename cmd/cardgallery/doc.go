// Package main hosts the cardgallery CLI entrypoint and command graph.
//
// The Cobra-based command tree reads gallery tokens from arguments, files or
// stdin, renders them through internal/gallery, optionally records the batch
// in the catalog, and exposes inspection, history and configuration
// utilities. Configuration and logging are resolved once per invocation in
// commandContext so subcommands only deal with their own flags.
package main
