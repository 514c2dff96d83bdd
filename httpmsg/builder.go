package httpmsg

import (
	"strconv"

	"httpserve/lib/compress"

	"github.com/pkg/errors"
)

// ResponseBuilder accumulates optional response fields and derives the
// framing headers from the body. Unset fields materialize their defaults at
// Build time: version 1.1, status 200 OK, empty headers, no body.
type ResponseBuilder struct {
	version *Version
	status  *Status
	headers HeaderCollection
	body    []byte
	hasBody bool

	err error
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{headers: NewHeaderCollection()}
}

func (b *ResponseBuilder) WithVersion(v Version) *ResponseBuilder {
	b.version = &v
	return b
}

func (b *ResponseBuilder) WithStatus(s Status) *ResponseBuilder {
	b.status = &s
	return b
}

func (b *ResponseBuilder) WithHeader(name, value string) *ResponseBuilder {
	b.headers.Set(name, value)
	return b
}

// WithBody sets the body and atomically derives its framing headers:
// Content-Type from the media type, Content-Length from the final byte
// length, and Content-Encoding whenever the coding is not unsupported. When
// a compressor is registered for the coding the body bytes are compressed;
// codings without one (br, compress, exi, identity) pass the bytes through
// untouched.
func (b *ResponseBuilder) WithBody(body []byte, mtype MediaType, enc ...Encoding) *ResponseBuilder {
	if len(enc) > 0 && enc[0] != EncodingUnsupported {
		encoding := enc[0]
		if coder, ok := compress.Lookup(encoding.String()); ok {
			compressed, err := coder.Encode(body)
			if err != nil {
				b.err = errors.Wrapf(err, "compressing body with %s", encoding)
				return b
			}
			body = compressed
		}
		b.headers.Set("Content-Encoding", encoding.String())
	}

	b.body = body
	b.hasBody = true
	b.headers.Set("Content-Type", mtype.String())
	b.headers.Set("Content-Length", strconv.Itoa(len(body)))
	return b
}

// Build materializes defaults for any unset field. A response built without
// WithBody carries no framing headers at all.
func (b *ResponseBuilder) Build() (Response, error) {
	if b.err != nil {
		return Response{}, b.err
	}

	res := Response{
		Version: V11,
		Status:  StatusOK,
		Headers: b.headers,
	}
	if b.version != nil {
		res.Version = *b.version
	}
	if b.status != nil {
		res.Status = *b.status
	}
	if b.hasBody {
		res.Body = b.body
	}

	return res, nil
}
