// Package auth handles password hashing, credential verification with audit
// trail entries, login session cookies, and role-gated request middleware.
//
// Authentication is deliberately quiet: bad credentials yield a nil user,
// not an error. Errors are reserved for storage failures.
package auth
