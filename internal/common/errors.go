// Package common defines sentinel errors shared by the repositories,
// services and the HTTP layer. Callers match them with errors.Is.
package common

import "errors"

var (
	// ErrorNotFound reports that no row has the requested identity. It is a
	// normal outcome of get/update paths, not a store failure.
	ErrorNotFound = errors.New("not found")

	ErrorInternal = errors.New("internal error")

	// ErrorValidation marks input rejected before reaching the store.
	ErrorValidation = errors.New("validation error")
)
