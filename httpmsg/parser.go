package httpmsg

import (
	"io"
	"strconv"
	"strings"

	iolib "httpserve/lib/io"

	"github.com/pkg/errors"
)

type parserState uint8

const (
	stateStart parserState = iota
	stateHeaders
	stateBody
	stateDone
)

// ParserOptions tune how strict the parser is about incoming streams.
type ParserOptions struct {
	// MaxLineLength caps the length of the request line and of each
	// header line, in bytes including the terminator. Zero means no
	// limit. A line over the limit is a malformed request.
	MaxLineLength uint

	// PreferClientOrder negotiates the first supported coding the client
	// listed instead of the lowest-ordered one from the fixed Encoding
	// order.
	PreferClientOrder bool
}

// Parser is the incremental request state machine. It consumes a byte
// stream through Start -> Headers -> Body -> Done, reading one line per
// step so it never blocks on more data than the message declares and never
// reads past a declared Content-Length.
//
// A parser serves exactly one request and is not safe for concurrent use.
type Parser struct {
	state parserState
	opts  ParserOptions

	r *iolib.UntilReader

	method  Method
	path    string
	version Version
	headers HeaderCollection

	contentLength *uint
	encodings     EncodingSet
	firstListed   *Encoding

	body []byte
}

func NewParser(r io.Reader, opts ParserOptions) *Parser {
	return &Parser{
		r:       iolib.NewUntilReader(r),
		opts:    opts,
		headers: NewHeaderCollection(),
	}
}

// Parse consumes the stream until the request is complete or the peer stops
// sending. A stream that ends between lines leaves the parser in its
// current state and returns nil; call Request to learn whether the message
// was actually complete.
func (p *Parser) Parse() error {
	for p.state != stateDone && p.state != stateBody {
		line, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Incomplete parse, not a failure.
				return nil
			}
			return err
		}

		switch p.state {
		case stateStart:
			err = p.parseRequestLine(line)
		case stateHeaders:
			err = p.parseHeaderLine(line)
		default:
			err = ErrUnreachable
		}
		if err != nil {
			return err
		}
	}

	if p.state == stateBody {
		return p.parseBody()
	}
	return nil
}

// Request returns the finished request. It fails with ErrUnparsed until the
// parser has reached its terminal state; an incomplete message never decays
// into a default request.
func (p *Parser) Request() (Request, error) {
	if p.state != stateDone {
		return Request{}, ErrUnparsed
	}

	req := Request{
		Method:  p.method,
		Path:    p.path,
		Version: p.version,
		Headers: p.headers,
		Body:    p.body,
	}
	req.Encoding = p.negotiate()

	return req, nil
}

// negotiate picks the request's single content coding from the offered set.
func (p *Parser) negotiate() *Encoding {
	if p.opts.PreferClientOrder && p.firstListed != nil {
		e := *p.firstListed
		return &e
	}

	if lowest, ok := p.encodings.Min(); ok {
		e := lowest
		return &e
	}
	return nil
}

// readLine reads one LF-terminated line, tolerating a preceding CR. EOF
// before the terminator is surfaced as io.EOF with the partial data dropped.
func (p *Parser) readLine() (string, error) {
	b, err := p.r.ReadUntilLimit([]byte{'\n'}, p.opts.MaxLineLength)
	if err != nil {
		if p.opts.MaxLineLength > 0 && uint(len(b)) >= p.opts.MaxLineLength {
			return "", ErrMalformedRequest
		}
		return "", err
	}
	if p.opts.MaxLineLength > 0 && uint(len(b)) > p.opts.MaxLineLength {
		return "", ErrMalformedRequest
	}

	b = b[:len(b)-1] // LF
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return string(b), nil
}

func (p *Parser) parseRequestLine(line string) error {
	parts := strings.Fields(line)

	if len(parts) < 1 {
		return ErrMissingMethod
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return err
	}

	if len(parts) < 2 {
		return ErrMissingPath
	}
	path := parts[1]

	if len(parts) < 3 {
		return ErrMissingVersion
	}
	version, err := ParseVersion(parts[2])
	if err != nil {
		return err
	}

	p.method, p.path, p.version = method, path, version
	p.state = stateHeaders
	return nil
}

func (p *Parser) parseHeaderLine(line string) error {
	if strings.TrimSpace(line) == "" {
		// End of the header block.
		if p.contentLength != nil {
			p.state = stateBody
		} else {
			p.state = stateDone
		}
		return nil
	}

	name, value, found := strings.Cut(line, ": ")
	if !found {
		return ErrMalformedRequest
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	if strings.EqualFold(name, "Content-Length") {
		length, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return ErrMalformedRequest
		}
		l := uint(length)
		p.contentLength = &l
	}

	if strings.EqualFold(name, "Accept-Encoding") {
		for _, token := range strings.Split(value, ",") {
			enc := ParseEncoding(strings.TrimSpace(token))
			if p.firstListed == nil && enc != EncodingUnsupported {
				e := enc
				p.firstListed = &e
			}
			p.encodings.Add(enc)
		}
	}

	p.headers.Set(name, value)
	return nil
}

// parseBody reads exactly the declared Content-Length. A short read means
// the peer lied about the length.
func (p *Parser) parseBody() error {
	body := make([]byte, *p.contentLength)
	if _, err := io.ReadFull(p.r, body); err != nil {
		return ErrMalformedRequest
	}

	p.body = body
	p.state = stateDone
	return nil
}
