package httpmsg

// Method is an HTTP request method token.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
	MethodConnect Method = "CONNECT"
	MethodPatch   Method = "PATCH"
	MethodTrace   Method = "TRACE"
)

// Methods lists every known method.
func Methods() []Method {
	return []Method{
		MethodGet, MethodPost, MethodPut, MethodDelete, MethodOptions,
		MethodHead, MethodConnect, MethodPatch, MethodTrace,
	}
}

// ParseMethod matches token against the closed method set. Matching is exact
// and case-sensitive; anything else is an UnknownMethod parse error, never a
// default.
func ParseMethod(token string) (Method, error) {
	switch m := Method(token); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodOptions,
		MethodHead, MethodConnect, MethodPatch, MethodTrace:
		return m, nil
	}
	return "", &ParseError{Kind: UnknownMethod, Token: token}
}

func (m Method) String() string { return string(m) }
