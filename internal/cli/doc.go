// Package cli wires together the Cobra command tree for the veil binary.
//
// It defines the root command and all subcommands (redact, fields, schema,
// check, config, version), binds flags, reads configuration, decodes input
// documents, invokes the redactor, and returns deterministic exit codes.
package cli
