package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
)

// FallbackMessage is shown when neither the server nor the error carries a
// usable message.
const FallbackMessage = "Something went wrong. Please try again."

type Kind uint8

const (
	// KindTransport covers connection failures, timeouts and cancellation.
	KindTransport Kind = iota + 1
	// KindStatus is any non-2xx response.
	KindStatus
	// KindDecode is a 2xx response whose body does not match the expected schema.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the single error value returned by every Resource Client call.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a Resource Client error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Message returns the most specific user-displayable message for err. It
// never returns an empty string for a non-nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if m := strings.TrimSpace(e.Message); m != "" {
			return m
		}
		return FallbackMessage
	}
	if m := strings.TrimSpace(err.Error()); m != "" {
		return m
	}
	return FallbackMessage
}

// serverMessage extracts message, then error, from a failure body.
func serverMessage(body []byte) string {
	var env httpapi.ErrorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if m := strings.TrimSpace(env.Message); m != "" {
		return m
	}
	return strings.TrimSpace(env.Error)
}
