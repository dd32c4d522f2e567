package rest

import (
	"errors"
	"fmt"

	"github.com/muhammadheryan/el-rastro/constant"
	cerr "github.com/muhammadheryan/el-rastro/utils/errors"
)

var (
	// ErrUnauthenticated is returned when a call needs a bearer token and the session carries none,
	// or when the upstream rejects the token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound is returned for 404 responses and malformed identifiers.
	ErrNotFound = errors.New("resource not found")
)

// StatusError is a non-2xx upstream response other than not found or unauthenticated.
type StatusError struct {
	Service    string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d: %s", e.Service, e.URL, e.StatusCode, e.Body)
}

// DecodeError is returned when a response body cannot be decoded into the expected record
// or the decoded record fails validation.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsCustomError maps an upstream failure to the application error taxonomy.
func AsCustomError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return cerr.SetCustomError(constant.ErrNotFound)
	case errors.Is(err, ErrUnauthenticated):
		return cerr.SetCustomError(constant.ErrUnauthorize)
	default:
		return cerr.SetCustomError(constant.ErrUpstreamUnavailable)
	}
}
