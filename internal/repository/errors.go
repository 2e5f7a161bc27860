// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUsernameTaken indicates that a registration collides
// with an existing account, while ErrNotFound signals that a lookup
// or delete matched no row. Handlers translate these into 409 and
// 404 responses respectively.
package repository

import "errors"

// ErrUsernameTaken is returned when a registration attempts to reuse
// an existing username. Handlers should translate this into an HTTP
// 409 response.
var ErrUsernameTaken = errors.New("username already taken")

// ErrNotFound is returned when a lookup or delete matched no rows,
// such as removing a movie that is not on the watchlist or fetching
// a review that was never written. Handlers should translate this
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
