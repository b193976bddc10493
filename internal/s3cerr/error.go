// Package s3cerr defines the closed error taxonomy s3c surfaces to the user.
//
// Every error that crosses a task boundary (S3 Gateway, Filesystem Gateway,
// Credential Resolver, Config Store) is normalized into one of the Kinds
// below before it reaches the reducer. The reducer never inspects error
// strings; it matches on Kind via errors.As.
package s3cerr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind is a closed set of user-facing error categories.
type Kind int

const (
	Other Kind = iota
	ConfigCorrupt
	PersistenceError
	ProfileMissingCredentials
	SetupScriptFailed
	RoleAssumptionFailed
	NotFound
	AccessDenied
	WrongRegion
	NetworkError
	Canceled
	CredentialExpired
)

func (k Kind) String() string {
	switch k {
	case ConfigCorrupt:
		return "ConfigCorrupt"
	case PersistenceError:
		return "PersistenceError"
	case ProfileMissingCredentials:
		return "ProfileMissingCredentials"
	case SetupScriptFailed:
		return "SetupScriptFailed"
	case RoleAssumptionFailed:
		return "RoleAssumptionFailed"
	case NotFound:
		return "NotFound"
	case AccessDenied:
		return "AccessDenied"
	case WrongRegion:
		return "WrongRegion"
	case NetworkError:
		return "NetworkError"
	case Canceled:
		return "Canceled"
	case CredentialExpired:
		return "CredentialExpired"
	default:
		return "Other"
	}
}

// Error is the concrete error type carried in every async result. It wraps
// the underlying cause (kept for logs and %w chains) and attaches the
// taxonomy Kind plus optional structured fields used by specific Kinds
// (ExitCode, Step/Total/Arn).
type Error struct {
	kind    Kind
	message string
	cause   error

	ExitCode int
	Step     int
	Total    int
	Arn      string
}

func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Kind reports the taxonomy member this error belongs to.
func (e *Error) Kind() Kind { return e.kind }

// New builds a taxonomy error, capturing a stack trace the way the teacher's
// go-errors/errors wrapping does at error-creation boundaries.
func New(kind Kind, cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	var wrapped error
	if cause != nil {
		wrapped = goerrors.Wrap(cause, 1)
	}
	return &Error{kind: kind, message: msg, cause: wrapped}
}

// Of reports the Kind of err, defaulting to Other if err is not (or does not
// wrap) an *Error.
func Of(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Other
}

// SetupScriptFailedErr builds the SetupScriptFailed{exit_code} variant.
func SetupScriptFailedErr(exitCode int, cause error) *Error {
	e := New(SetupScriptFailed, cause, "setup script exited with status %d", exitCode)
	e.ExitCode = exitCode
	return e
}

// RoleAssumptionFailedErr builds the RoleAssumptionFailed{step,total,arn} variant.
func RoleAssumptionFailedErr(step, total int, arn string, cause error) *Error {
	e := New(RoleAssumptionFailed, cause,
		"Failed to assume role %s (step %d of %d): %s", arn, step, total, causeMessage(cause))
	e.Step, e.Total, e.Arn = step, total, arn
	return e
}

// causeMessage renders cause's message text, not its Kind label — a wrapped
// *Error's Error() already resolves to its own message (e.g. "access
// denied"), so RoleAssumptionFailedErr's string stays a sentence, not
// "...: AccessDenied".
func causeMessage(cause error) string {
	if cause == nil {
		return "unknown error"
	}
	return cause.Error()
}
