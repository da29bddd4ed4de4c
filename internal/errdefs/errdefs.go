// Package errdefs defines the error classes shared by the service layer and
// the REST boundary. Anything that is not one of these classes is treated as a
// store failure and surfaces as a server error.
package errdefs

import (
	"errors"
	"strings"
)

// ValidationError reports the request fields that were missing or malformed.
// The operation was not attempted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError signals that a referenced entity does not exist or is not
// visible to the caller.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return e.Resource + " " + e.ID + " not found"
}

// AuthorizationError signals that the caller does not own the targeted entity.
type AuthorizationError struct {
	Resource string
}

func (e *AuthorizationError) Error() string {
	return "not authorized for " + e.Resource
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}
