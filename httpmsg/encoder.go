package httpmsg

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ResponseEncoder serializes responses onto a writer as
//
//	<version> <code> <reason>\r\n
//	<Name>: <Value>\r\n ...
//	\r\n
//	<body>
type ResponseEncoder struct {
	bw *bufio.Writer
}

func NewResponseEncoder(w io.Writer) *ResponseEncoder {
	return &ResponseEncoder{bw: bufio.NewWriter(w)}
}

func (re *ResponseEncoder) Encode(res Response) error {
	if err := re.writeLine(res.Version.String() + " " + res.Status.String()); err != nil {
		return errors.Wrap(err, "writing status line")
	}

	for _, h := range res.Headers.Headers() {
		if err := re.writeLine(h.Text()); err != nil {
			return errors.Wrap(err, "writing header line")
		}
	}

	// An empty line closes the header block.
	if err := re.writeLine(""); err != nil {
		return errors.Wrap(err, "writing header terminator")
	}

	// Flush the head before the body.
	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing status line & headers")
	}

	if _, err := re.bw.Write(res.Body); err != nil {
		return errors.Wrap(err, "writing body")
	}

	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing body")
	}

	return nil
}

func (re *ResponseEncoder) writeLine(line string) error {
	if _, err := re.bw.WriteString(line); err != nil {
		return err
	}
	_, err := re.bw.WriteString("\r\n")
	return err
}
