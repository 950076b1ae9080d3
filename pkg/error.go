package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors shared by synbuild and its subpackages.
// Test for them with errors.Is; wrapped instances keep the sentinel's
// message and add the cause.
var (
	ErrUnsupportedNode = NewError("unsupported syntax node")
	ErrNotNode         = NewError("value is not a syntax node")
	ErrReadInput       = NewError("failed to read input")
	ErrScriptCompile   = NewError("script compilation failed")
	ErrScriptRun       = NewError("script evaluation failed")
	ErrBindArguments   = NewError("invalid constructor arguments")
	ErrInvalidFormat   = NewError("invalid format")
	ErrYAMLMarshal     = NewError("YAML marshal error")
	ErrJSONMarshal     = NewError("JSON marshal error")
	ErrUnknownProp     = NewError("unknown property")
)

// Error is an error with optional structured logging attributes.
// It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a sentinel Error with message msg.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError returns err as an [*Error], wrapping it if it is not one already.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error joins the message and the wrapped cause with ": ", omitting
// whichever is empty.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.err == nil && t.msg != "" && t.msg == e.msg
}

// LogValue groups the message, cause and attributes for slog.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e carrying the additional attrs.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(merged, e.attrs)
	copy(merged[len(e.attrs):], attrs)

	return &Error{msg: e.msg, err: e.err, attrs: merged}
}
