package pathclient

import (
	"fmt"
	"net/http"
)

// HTTPStatusError reports a response whose status was not 200 OK.
type HTTPStatusError struct {
	Endpoint string
	Expected int
	Actual   int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("The status is wrong! Expected: %d, Was: %d", e.Expected, e.Actual)
}

// TransportError wraps network failures and undecodable responses.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("contact %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func statusError(endpoint string, status int) error {
	return &HTTPStatusError{Endpoint: endpoint, Expected: http.StatusOK, Actual: status}
}

func transportError(endpoint string, err error) error {
	return &TransportError{Endpoint: endpoint, Err: err}
}
