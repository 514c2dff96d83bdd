// Package compress holds the content codings the server can actually apply
// to response bodies. Codings are keyed by their wire token so that callers
// dealing in typed encodings and callers dealing in raw header tokens share
// one registry.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Coder applies one content coding to a whole body.
type Coder interface {
	// Token is the coding's wire token (e.g. "gzip").
	Token() string
	Encode(p []byte) ([]byte, error)
	Decode(p []byte) ([]byte, error)
}

var coders = map[string]Coder{
	"gzip":    gzipCoder{},
	"deflate": flateCoder{},
	"zstd":    zstdCoder{},
}

// Lookup returns the coder registered for a coding token.
// Tokens without a coder (br, compress, exi, identity) report false.
func Lookup(token string) (Coder, bool) {
	c, ok := coders[token]
	return c, ok
}

type gzipCoder struct{}

func (gzipCoder) Token() string { return "gzip" }

func (gzipCoder) Encode(p []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	w := gzip.NewWriter(buf)
	if _, err := w.Write(p); err != nil {
		return nil, errors.Wrap(err, "writing gzip stream")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "closing gzip stream")
	}

	return buf.Bytes(), nil
}

func (gzipCoder) Decode(p []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, errors.Wrap(err, "opening gzip stream")
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading gzip stream")
	}

	return b, nil
}

type flateCoder struct{}

func (flateCoder) Token() string { return "deflate" }

func (flateCoder) Encode(p []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		return nil, errors.Wrap(err, "creating flate writer")
	}
	if _, err := w.Write(p); err != nil {
		return nil, errors.Wrap(err, "writing flate stream")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "closing flate stream")
	}

	return buf.Bytes(), nil
}

func (flateCoder) Decode(p []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(p))
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading flate stream")
	}

	return b, nil
}

type zstdCoder struct{}

func (zstdCoder) Token() string { return "zstd" }

func (zstdCoder) Encode(p []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	w, err := zstd.NewWriter(buf)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd writer")
	}
	if _, err := w.Write(p); err != nil {
		return nil, errors.Wrap(err, "writing zstd stream")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "closing zstd stream")
	}

	return buf.Bytes(), nil
}

func (zstdCoder) Decode(p []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, errors.Wrap(err, "opening zstd stream")
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading zstd stream")
	}

	return b, nil
}
