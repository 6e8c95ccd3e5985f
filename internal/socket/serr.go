package socket

import "fmt"

// Kind classifies every failure this package can return. It implements
// error itself so callers can branch with errors.Is(err, socket.KindTimeout).
type Kind int

const (
	KindUnsupportedOS Kind = iota
	KindParse
	KindInitialize
	KindSocket
	KindTimeout
	KindInvalidArgument
)

func (k Kind) Error() string {
	switch k {
	case KindUnsupportedOS:
		return "unsupported os"
	case KindParse:
		return "parse failure"
	case KindInitialize:
		return "initialization failure"
	case KindSocket:
		return "socket operation failure"
	case KindTimeout:
		return "timeout"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error pairs a failure kind with a diagnostic message. OS and library
// error text is captured into Message at the call site; nothing in this
// package inspects a shared errno-style slot.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

// Is matches on the failure kind, for both *Error and bare Kind targets.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	default:
		return false
	}
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
