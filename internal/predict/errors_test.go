package predict

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"
)

func TestRequestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "with cause",
			err:  &RequestError{Kind: ErrKindNetwork, Message: "POST request failed", Err: errors.New("broken pipe")},
			want: "Network Error: POST request failed (caused by: broken pipe)",
		},
		{
			name: "without cause",
			err:  newHTTPError(404, "service returned 404 Not Found"),
			want: "HTTP Error: service returned 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := fmt.Errorf("wrapped: %w", newDecodeError("bad body", cause))

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the root cause")
	}
	if kind, ok := KindOf(err); !ok || kind != ErrKindDecode {
		t.Errorf("KindOf() = %v, %v, want %v, true", kind, ok, ErrKindDecode)
	}
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"timeout", os.ErrDeadlineExceeded, ErrKindTimeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "nope.invalid"}, ErrKindDNS},
		{"refused", &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, ErrKindConnectionRefused},
		{"generic", errors.New("EOF"), ErrKindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError("request failed", tt.err)
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
			if !IsNetworkError(got) {
				t.Error("IsNetworkError() = false, want true")
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	if ErrKindDecode.String() != "Decode Error" {
		t.Errorf("String() = %s", ErrKindDecode.String())
	}
	if ErrorKind(99).String() != "ErrorKind(99)" {
		t.Errorf("String() = %s", ErrorKind(99).String())
	}
}

func TestIsHelpers_NonRequestError(t *testing.T) {
	err := errors.New("plain")
	if IsHTTPError(err) || IsDecodeError(err) || IsNetworkError(err) {
		t.Error("helpers should be false for errors outside the package")
	}
}
