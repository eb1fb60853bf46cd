// Package diagnostic provides structured errors and warnings collected while
// applying mapping declarations.
//
// Key capabilities:
//   - Unknown type, field and converter errors
//   - Suspicious path warnings
//   - Per-declaration context (type name, field name, code)
package diagnostic
