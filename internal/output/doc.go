// Package output writes redacted documents for display or machine
// consumption.
//
// Two formats are supported:
//   - json — indented JSON (default)
//   - yaml — YAML, via gopkg.in/yaml.v3
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and the value. [WriteTo] handles
// choosing between a file and stdout.
package output
