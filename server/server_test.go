package server

import (
	"io"
	"net"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// startServer runs a server on a loopback listener. The returned shutdown
// must be called before goleak inspects the test's goroutines.
func startServer(t *testing.T, opts Options) (addr string, shutdown func()) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	router := NewRouter(NewDir(t.TempDir()), discardLogger())
	srv := New(l, router, discardLogger(), clock.New(), opts)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Serve()
	}()

	return l.Addr().String(), func() {
		require.NoError(t, srv.Close())
		<-done
	}
}

// exchange writes raw request bytes and returns everything the server sends
// back before closing the connection.
func exchange(t *testing.T, addr, request string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(request))
	require.NoError(t, err)
	require.NoError(t, conn.(*net.TCPConn).CloseWrite())

	response, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(response)
}

func TestServerServesRequests(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	response := exchange(t, addr, "GET /echo/hey HTTP/1.1\r\nHost: localhost\r\n\r\n")

	assert.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"), response)
	assert.Contains(t, response, "Content-Type: text/plain\r\n")
	assert.Contains(t, response, "Content-Length: 3\r\n")
	assert.True(t, strings.HasSuffix(response, "\r\n\r\nhey"), response)
}

func TestServerAnswersMalformedWith400(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	response := exchange(t, addr, "GET / HTTP/1.1\r\nBrokenHeaderLine\r\n\r\n")
	assert.True(t, strings.HasPrefix(response, "HTTP/1.1 400 Bad Request\r\n"), response)
}

func TestServerAnswers404(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	response := exchange(t, addr, "GET /missing HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"), response)
}

func TestServerIgnoresIncompleteRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	// The peer goes away mid-headers: no response bytes come back.
	response := exchange(t, addr, "GET / HTTP/1.1\r\nHos")
	assert.Empty(t, response)
}

func TestServerHandlesConnectionsIndependently(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	// A connection that never completes its request must not stall
	// other clients.
	stalled, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer stalled.Close()

	_, err = stalled.Write([]byte("GET / HTTP/1.1\r\n"))
	require.NoError(t, err)

	response := exchange(t, addr, "GET / HTTP/1.1\r\n\r\n")
	assert.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"), response)
}

func TestServerPostThenGetFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	addr, shutdown := startServer(t, Options{})
	defer shutdown()

	post := "POST /files/data.bin HTTP/1.1\r\nContent-Length: 4\r\n\r\nwire"
	response := exchange(t, addr, post)
	require.True(t, strings.HasPrefix(response, "HTTP/1.1 201 Created\r\n"), response)

	response = exchange(t, addr, "GET /files/data.bin HTTP/1.1\r\n\r\n")
	assert.Contains(t, response, "Content-Type: application/octet-stream\r\n")
	assert.True(t, strings.HasSuffix(response, "\r\n\r\nwire"), response)
}
