package iolib

import "io"

// LimitReader caps r at n bytes. Once the cap is spent every Read reports
// io.EOF, regardless of whether r has more to give.
func LimitReader(r io.Reader, n uint) io.Reader {
	return &limitedReader{r: r, remaining: n}
}

type limitedReader struct {
	r         io.Reader
	remaining uint
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if lr.remaining == 0 {
		return 0, io.EOF
	}
	if uint(len(p)) > lr.remaining {
		p = p[:lr.remaining]
	}

	n, err := lr.r.Read(p)
	lr.remaining -= uint(n)

	return n, err
}
