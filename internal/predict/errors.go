package predict

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrorKind is the category of a failed request. All kinds are shown to the
// user the same way; the kind is recorded in logs.
type ErrorKind int

const (
	// ErrKindRequest indicates the request could not be built (bad endpoint)
	ErrKindRequest ErrorKind = iota
	// ErrKindNetwork indicates a transport-level failure
	ErrKindNetwork
	// ErrKindTimeout indicates the request timed out
	ErrKindTimeout
	// ErrKindConnectionRefused indicates the service refused the connection
	ErrKindConnectionRefused
	// ErrKindDNS indicates the endpoint host could not be resolved
	ErrKindDNS
	// ErrKindHTTP indicates a non-2xx response status
	ErrKindHTTP
	// ErrKindDecode indicates a body that is not a prediction
	ErrKindDecode
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindRequest:
		return "Request Error"
	case ErrKindNetwork:
		return "Network Error"
	case ErrKindTimeout:
		return "Timeout"
	case ErrKindConnectionRefused:
		return "Connection Refused"
	case ErrKindDNS:
		return "DNS Error"
	case ErrKindHTTP:
		return "HTTP Error"
	case ErrKindDecode:
		return "Decode Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// RequestError describes why a prediction request failed
type RequestError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int   // HTTP status (ErrKindHTTP only)
	Err        error // underlying error, if any
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RequestError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an http.Client.Do error to a RequestError
func classifyTransportError(message string, err error) *RequestError {
	kind := ErrKindNetwork

	var dnsErr *net.DNSError

	switch {
	case os.IsTimeout(err):
		kind = ErrKindTimeout
	case errors.As(err, &dnsErr):
		kind = ErrKindDNS
	case errors.Is(err, syscall.ECONNREFUSED):
		kind = ErrKindConnectionRefused
	}

	return &RequestError{Kind: kind, Message: message, Err: err}
}

func newRequestError(message string, err error) *RequestError {
	return &RequestError{Kind: ErrKindRequest, Message: message, Err: err}
}

func newHTTPError(status int, message string) *RequestError {
	return &RequestError{Kind: ErrKindHTTP, Message: message, StatusCode: status}
}

func newDecodeError(message string, err error) *RequestError {
	return &RequestError{Kind: ErrKindDecode, Message: message, Err: err}
}

// KindOf returns the kind of a RequestError anywhere in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind, true
	}
	return 0, false
}

// IsHTTPError reports whether err is a non-2xx response
func IsHTTPError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == ErrKindHTTP
}

// IsDecodeError reports whether err is an undecodable response body
func IsDecodeError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == ErrKindDecode
}

// IsNetworkError reports whether err happened at the transport level
func IsNetworkError(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	switch kind {
	case ErrKindNetwork, ErrKindTimeout, ErrKindConnectionRefused, ErrKindDNS:
		return true
	}
	return false
}
