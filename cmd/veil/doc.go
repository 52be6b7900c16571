// Veil is a CLI for masking secrets in structured data before it is shown or
// logged.
//
// It replaces the values of sensitive keys (passwords, tokens, API keys,
// credentials and similar) in JSON and YAML documents with ***REDACTED***,
// leaving the input files untouched.
//
// Usage:
//
//	veil redact payload.json            # redact a document anywhere it nests
//	veil redact -e ssn < user.yaml      # add a name pattern, read stdin
//	veil fields -s schema.json in.json  # redact declared input fields
//	veil schema normalize schema.yaml   # flatten a required/optional schema
//	veil check password author          # classify field names
package main
