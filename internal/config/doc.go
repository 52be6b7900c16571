// Package config loads and merges veil configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (VEIL_FORMAT, VEIL_EXTRA_PATTERNS, VEIL_SCHEMA, etc.)
//  3. Config file ($XDG_CONFIG_HOME/veil/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
