// Package redact masks sensitive values in structured data before it is
// displayed or logged.
//
// Detection is name based: a fixed set of field-name patterns (password,
// token, api key, secret, credential, authorization, auth, private key,
// access key, client secret) plus optional caller-supplied patterns. Values
// themselves are never inspected. Every sensitive value is replaced by
// [Placeholder].
//
// Two entry points cover two payload shapes:
//   - [Tree] walks an arbitrarily nested value (maps, slices, scalars) and
//     returns a redacted deep copy. Recursion stops at [MaxDepth].
//   - [Fields] redacts one flat level of named inputs, honoring a field
//     [Schema] before falling back to name patterns.
//
// [NormalizeSchema] flattens schemas grouped into "required" and "optional"
// buckets. Nothing in this package performs I/O or mutates its arguments.
package redact
