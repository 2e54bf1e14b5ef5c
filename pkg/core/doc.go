// Package core defines the shared error taxonomy for the halap SDK.
//
// Every error a caller can observe is one of the types in this package:
// ConfigError for problems detected while resolving client configuration,
// APIError for non-success HTTP responses, and ValidationError for inputs
// rejected locally before a request is sent. Decode failures inside the
// streaming path are recovered internally and never surface here.
package core
