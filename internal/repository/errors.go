// Package repository defines error values that are reused across multiple
// repositories. These sentinel values let higher layers such as services
// and handlers distinguish between failure scenarios without inspecting
// error strings. For example, ErrEmailExists signals that the storage-level
// unique constraint on users.email rejected an insert, while ErrNoFilms
// signals that an aggregate query ran over an empty catalog.
package repository

import "errors"

// ErrEmailExists is returned when an insert violates the unique constraint
// on users.email. Services translate this into a duplicate-email outcome.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user row matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrNoFilms is returned by aggregate queries when the catalog is empty.
var ErrNoFilms = errors.New("no films in catalog")
