// Package diag defines the diagnostic model used to surface type-system
// errors to a caller: a tagged Severity, a compact numeric Code, and a
// Diagnostic record carrying a primary source.Span and optional notes.
//
// The type interner itself never constructs a Diagnostic — per the core's
// error-handling policy it only returns structured Go errors
// (types.InvalidTypeRequest). This package exists for the one layer above
// the core, cmd/solsticec, which turns a returned error into a rendered,
// colorized diagnostic line.
package diag
