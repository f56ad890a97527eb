// Package config loads, normalizes, and validates cardgallery configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CARDGALLERY_LOG_LEVEL. The Config type centralizes every knob the CLI needs
// so render settings, catalog location and logging are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
