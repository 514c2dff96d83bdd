// Package iolib provides the small reader primitives behind line-oriented
// protocol parsing: delimiter-bounded reads that never lose bytes read past
// the delimiter, and a uint variant of [io.LimitedReader].
package iolib

import (
	"bytes"
	"errors"
	"io"
)

// UntilReader reads delimiter-bounded chunks from an underlying reader.
// Bytes read past a delimiter stay buffered and are handed out by the next
// Read or ReadUntil call.
type UntilReader struct {
	r   io.Reader
	buf bytes.Buffer
}

func NewUntilReader(r io.Reader) *UntilReader {
	return &UntilReader{r: r}
}

// Read drains buffered bytes before touching the underlying reader.
func (ur *UntilReader) Read(p []byte) (n int, err error) {
	if ur.buf.Len() > 0 {
		n, err = ur.buf.Read(p)
		if err == io.EOF {
			err = nil
		}
		return n, err
	}

	return ur.r.Read(p)
}

var ErrZeroLenDelim = errors.New("delim has zero length")

// ReadUntil reads until delim and returns the chunk including delim.
// If the underlying reader fails before delim shows up, the bytes read so
// far are returned alongside the error.
func (ur *UntilReader) ReadUntil(delim []byte) ([]byte, error) {
	if len(delim) == 0 {
		return nil, ErrZeroLenDelim
	}

	var readErr error
	searched := 0
	tmp := make([]byte, 512)

	for {
		b := ur.buf.Bytes()

		// Rewind far enough to catch a delim split across two reads.
		from := searched - len(delim) + 1
		if from < 0 {
			from = 0
		}

		if idx := bytes.Index(b[from:], delim); idx >= 0 {
			end := from + idx + len(delim)
			chunk := bytes.Clone(b[:end])
			rest := bytes.Clone(b[end:])

			ur.buf.Reset()
			ur.buf.Write(rest)
			return chunk, nil
		}
		searched = len(b)

		// A reader may hand over its final bytes together with the
		// error; only give up once those bytes are known not to
		// contain the delim.
		if readErr != nil {
			chunk := bytes.Clone(ur.buf.Bytes())
			ur.buf.Reset()
			return chunk, readErr
		}

		n, err := ur.r.Read(tmp)
		ur.buf.Write(tmp[:n])
		readErr = err
	}
}

// ReadUntilLimit is ReadUntil with a cap on how many bytes one call may
// pull from the underlying reader. Zero disables the cap. Bytes already
// buffered from earlier calls do not count against it.
func (ur *UntilReader) ReadUntilLimit(delim []byte, limit uint) ([]byte, error) {
	if limit == 0 {
		return ur.ReadUntil(delim)
	}

	underlying := ur.r
	ur.r = LimitReader(underlying, limit)
	chunk, err := ur.ReadUntil(delim)
	ur.r = underlying

	return chunk, err
}
