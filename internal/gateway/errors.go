package gateway

import (
	"errors"
	"fmt"
)

// NetworkError is a request that never reached the API, came back with a
// non-2xx status, or could not be decoded.
type NetworkError struct {
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError is the API denying the session.
type AuthError struct {
	Op     string
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: not authorized (status %d)", e.Op, e.Status)
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
