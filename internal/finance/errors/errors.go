package errors

import (
	"errors"
	"fmt"
)

// NotFoundError marks a referenced record that does not resolve, or that is
// inactive where single-item lookups treat inactive rows as absent.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
