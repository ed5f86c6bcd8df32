// Package postgres holds the errors shared by all repositories.
package postgres

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("required data not found")

	// ErrAlreadyExists is returned when a uniqueness precondition fails.
	ErrAlreadyExists = errors.New("data already exists")
)
