package httpmsg

import "bytes"

// Request is one fully parsed request. Everything in it is owned by the
// request: nothing is shared with other connections.
type Request struct {
	Method Method
	// Path is the raw request target, neither percent-decoded nor
	// normalized.
	Path    string
	Version Version
	Headers HeaderCollection

	// Encoding is the single negotiated content coding, nil when the
	// request carried no Accept-Encoding header.
	Encoding *Encoding

	// Body holds the raw body bytes, nil when no Content-Length was
	// declared.
	Body []byte
}

// Response is a typed response ready for serialization.
type Response struct {
	Version Version
	Status  Status
	Headers HeaderCollection
	Body    []byte
}

// Bytes returns the wire serialization of the response.
func (r Response) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	// Encoding into a bytes.Buffer cannot fail.
	_ = NewResponseEncoder(buf).Encode(r)
	return buf.Bytes()
}
