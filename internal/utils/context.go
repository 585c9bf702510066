// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and JWT token generation and validation.
package utils

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// UserIDCtxKey is the context key under which authentication middleware
// stores the authenticated account's UUID for downstream handlers.
const UserIDCtxKey contextKey = "userID"
