package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeExternalService   ErrorCode = "EXTERNAL_SERVICE"
	CodeMalformedUpstream ErrorCode = "MALFORMED_UPSTREAM"
	CodeManifestMissing   ErrorCode = "MANIFEST_MISSING"
	CodeInternal          ErrorCode = "INTERNAL"
)

var (
	ErrInputNotFound     = errors.New("input not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrManifestNotFound  = errors.New("manifest.json not found alongside executable or in project root")
	ErrGeneration        = errors.New("generation failed")
	ErrMalformedOutput   = errors.New("malformed upstream output")
	ErrUnsupportedModel  = errors.New("unsupported model provider")
)

// Error carries a stable code next to the user-facing message. Message is what
// the CLI prints in its {"error": ...} payload.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Op == "" {
		if msg == "" {
			return string(e.Code)
		}
		return msg
	}
	if msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Code:    existing.Code,
			Op:      op,
			Message: existing.Message,
			Cause:   existing.Cause,
		}
	}
	return E(code, op, "", err)
}

// NotFound reports a missing input file with the message format the CLI has
// always printed, e.g. "File not found: contract.docx".
func NotFound(op, label, path string) *Error {
	return E(CodeNotFound, op, fmt.Sprintf("%s not found: %s", label, path), ErrInputNotFound)
}

func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Code != "" {
		return domainErr.Code, true
	}
	switch {
	case errors.Is(err, ErrInputNotFound):
		return CodeNotFound, true
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat, true
	case errors.Is(err, ErrManifestNotFound):
		return CodeManifestMissing, true
	case errors.Is(err, ErrGeneration), errors.Is(err, ErrUnsupportedModel):
		return CodeExternalService, true
	case errors.Is(err, ErrMalformedOutput):
		return CodeMalformedUpstream, true
	default:
		return "", false
	}
}

// MessageOf returns the user-facing message of err, dropping the Op prefix.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return err.Error()
}
