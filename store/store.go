// Package store holds the persistence interfaces the HTTP handlers depend on,
// plus their GORM-backed implementations. Handlers never touch *gorm.DB
// directly, so the backing store is swappable.
package store

import "errors"

// ErrNotFound is returned when a user or report lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint,
// such as signing up an email that already has an account.
var ErrDuplicate = errors.New("duplicate record")
