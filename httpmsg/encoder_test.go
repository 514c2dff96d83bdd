package httpmsg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeResponse(t *testing.T) {
	res, err := NewResponseBuilder().
		WithStatus(StatusNotFound).
		Build()
	require.NoError(t, err)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, NewResponseEncoder(buf).Encode(res))

	assert.Equal(t, "HTTP/1.1 404 Not Found\r\n\r\n", buf.String())
}

func TestEncodeResponseWithBody(t *testing.T) {
	res, err := NewResponseBuilder().
		WithBody([]byte("hello"), MediaPlainText).
		Build()
	require.NoError(t, err)

	expected := "HTTP/1.1 200 OK\r\n" +
		"Content-Length: 5\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"hello"

	assert.Equal(t, expected, string(res.Bytes()))
}

func TestEncodeResponseHeaderOrderDeterministic(t *testing.T) {
	res, err := NewResponseBuilder().
		WithHeader("Zulu", "z").
		WithHeader("Alpha", "a").
		Build()
	require.NoError(t, err)

	expected := "HTTP/1.1 200 OK\r\n" +
		"Alpha: a\r\n" +
		"Zulu: z\r\n" +
		"\r\n"

	// Serializing twice yields identical bytes.
	assert.Equal(t, expected, string(res.Bytes()))
	assert.Equal(t, expected, string(res.Bytes()))
}

func TestEncodeResponseExplicitVersion(t *testing.T) {
	res, err := NewResponseBuilder().
		WithVersion(V10).
		WithStatus(StatusCreated).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.0 201 Created\r\n\r\n", string(res.Bytes()))
}
