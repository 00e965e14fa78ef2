package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an upstream fetch failed.
type ErrorKind string

const (
	// KindTransport covers connection errors and timeouts.
	KindTransport ErrorKind = "transport"
	// KindStatus is a non-2xx upstream response.
	KindStatus ErrorKind = "status"
	// KindDecode is a body that is not the expected top-level JSON document.
	KindDecode ErrorKind = "decode"
)

// FetchError captures a failed upstream fetch.
type FetchError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s failure", e.Provider, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
