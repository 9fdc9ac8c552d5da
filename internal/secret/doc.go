// Package secret generates credential values for capability resolution.
//
// Passwords are drawn from a cryptographically secure random source and
// always satisfy the minimum strength policy (length >= 16 with at least
// one special character).
package secret
