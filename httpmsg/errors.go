package httpmsg

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseErrorKind is the closed set of ways a request can fail to parse.
type ParseErrorKind uint8

const (
	UnknownMethod ParseErrorKind = iota
	UnhandledVersion
	MissingMethod
	MissingPath
	MissingVersion
	MalformedRequest
	Unreachable
)

// ParseError is a request parse failure. Token carries the offending wire
// token for UnknownMethod and UnhandledVersion; other kinds leave it empty.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownMethod:
		return "unknown method " + strconv.Quote(e.Token)
	case UnhandledVersion:
		return "unhandled version " + strconv.Quote(e.Token)
	case MissingMethod:
		return "request line is missing a method"
	case MissingPath:
		return "request line is missing a path"
	case MissingVersion:
		return "request line is missing a version"
	case MalformedRequest:
		return "malformed request"
	}
	return "unreachable parser state"
}

// Is matches any *ParseError of the same kind, so callers can branch with
// errors.Is against the sentinels below regardless of the carried token.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingMethod    = &ParseError{Kind: MissingMethod}
	ErrMissingPath      = &ParseError{Kind: MissingPath}
	ErrMissingVersion   = &ParseError{Kind: MissingVersion}
	ErrMalformedRequest = &ParseError{Kind: MalformedRequest}
	ErrUnreachable      = &ParseError{Kind: Unreachable}
)

// ErrUnparsed is returned when the finished request is requested from a
// parser that has not reached its terminal state.
var ErrUnparsed = errors.New("request is not fully parsed")
