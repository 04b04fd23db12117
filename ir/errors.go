package ir

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorCode classifies generator failures.
type ErrorCode string

const (
	CodeNotFound ErrorCode = "not_found" // input path missing or unreadable
	CodeParse    ErrorCode = "parse"     // document is not well-formed YAML
	CodeSchema   ErrorCode = "schema"    // required field absent or wrong shape
	CodeTemplate ErrorCode = "template"  // render-time field missing or output unformattable
)

// Kind returns the human-readable error kind, e.g. "schema error".
func (c ErrorCode) Kind() string {
	switch c {
	case CodeNotFound:
		return "not found error"
	case CodeParse:
		return "parse error"
	case CodeSchema:
		return "schema error"
	case CodeTemplate:
		return "template error"
	default:
		return "error"
	}
}

// Error is the error type returned by every stage of the generator.
type Error struct {
	Code    ErrorCode
	Message string

	// Field names the offending spec field, if any.
	Field string

	// Line is the 1-based document line, or 0 when unknown.
	Line int

	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.Kind())
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// NotFoundError reports a missing or unreadable input path.
func NotFoundError(path string, cause error) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("cannot read %s", path),
		cause:   cause,
	}
}

// ParseError reports a document that is not well-formed YAML.
func ParseError(cause error) *Error {
	return &Error{Code: CodeParse, cause: cause}
}

// SchemaError reports a missing or malformed spec field.
func SchemaError(field string, line int, format string, args ...any) *Error {
	return &Error{
		Code:    CodeSchema,
		Field:   field,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// TemplateError reports a render-time failure.
func TemplateError(field string, format string, args ...any) *Error {
	return &Error{
		Code:    CodeTemplate,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// CodeOf returns the ErrorCode of the first *Error in err's chain, or "" if
// there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
