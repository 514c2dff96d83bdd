package server

import (
	"strings"

	"httpserve/httpmsg"
)

// Error is the closed set of failures a handler can produce. Every value
// maps totally onto a wire response through Response; nothing escapes as a
// generic failure.
type Error struct {
	status  httpmsg.Status
	path    string
	allowed []httpmsg.Method
	cause   error
}

func NotFound(path string) *Error {
	return &Error{status: httpmsg.StatusNotFound, path: path}
}

func MethodNotAllowed(allowed ...httpmsg.Method) *Error {
	return &Error{status: httpmsg.StatusMethodNotAllowed, allowed: allowed}
}

// BadRequest wraps a parse failure; any malformed request ends up here.
func BadRequest(cause error) *Error {
	return &Error{status: httpmsg.StatusBadRequest, cause: cause}
}

func Unauthorized() *Error {
	return &Error{status: httpmsg.StatusUnauthorized}
}

func Forbidden() *Error {
	return &Error{status: httpmsg.StatusForbidden}
}

func InternalError(cause error) *Error {
	return &Error{status: httpmsg.StatusInternalServerError, cause: cause}
}

func (e *Error) Status() httpmsg.Status { return e.status }

func (e *Error) Error() string {
	msg := strings.ToLower(e.status.ReasonPhrase)
	switch {
	case e.path != "":
		msg += ": " + e.path
	case e.cause != nil:
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Response converts the failure into its wire form. The mapping is total
// and side-effect free:
//
//	404, 400, 403, 500  status only
//	405                 Allowed: <comma-joined methods>
//	401                 WWW-Authenticate: Basic
func (e *Error) Response() httpmsg.Response {
	b := httpmsg.NewResponseBuilder().WithStatus(e.status)

	switch e.status {
	case httpmsg.StatusMethodNotAllowed:
		tokens := make([]string, len(e.allowed))
		for i, m := range e.allowed {
			tokens[i] = m.String()
		}
		b.WithHeader("Allowed", strings.Join(tokens, ","))
	case httpmsg.StatusUnauthorized:
		b.WithHeader("WWW-Authenticate", "Basic")
	}

	// Build cannot fail without a body.
	res, _ := b.Build()
	return res
}
