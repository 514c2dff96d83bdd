package server

import (
	"io/fs"
	"log/slog"
	"strings"

	"httpserve/httpmsg"

	"github.com/pkg/errors"
)

// Router dispatches parsed requests across the fixed endpoint set:
//
//	GET  /                  empty 200
//	GET  /echo/{param}      param echoed as text/plain, compressed when
//	                        the request negotiated a supported coding
//	GET  /user-agent        User-Agent header value as text/plain
//	GET  /files/{name}      file bytes as application/octet-stream
//	POST /files/{name}      store the request body, 201
type Router struct {
	store  FileStore
	logger *slog.Logger
}

func NewRouter(store FileStore, logger *slog.Logger) *Router {
	return &Router{store: store, logger: logger}
}

// Route maps one request to a response or a taxonomy error. It is pure up
// to the file store: the method allowlist is checked before any
// side-effecting action runs.
func (rt *Router) Route(req httpmsg.Request) (httpmsg.Response, *Error) {
	switch {
	case req.Path == "/":
		if err := assertMethod(req, httpmsg.MethodGet); err != nil {
			return httpmsg.Response{}, err
		}
		return build(httpmsg.NewResponseBuilder())

	case req.Path == "/user-agent":
		if err := assertMethod(req, httpmsg.MethodGet); err != nil {
			return httpmsg.Response{}, err
		}
		return rt.serveUserAgent(req)

	case strings.HasPrefix(req.Path, "/echo/"):
		if err := assertMethod(req, httpmsg.MethodGet); err != nil {
			return httpmsg.Response{}, err
		}
		return rt.serveEcho(req)

	case strings.HasPrefix(req.Path, "/files/"):
		return rt.serveFile(req)
	}

	return httpmsg.Response{}, NotFound(req.Path)
}

func (rt *Router) serveUserAgent(req httpmsg.Request) (httpmsg.Response, *Error) {
	b := httpmsg.NewResponseBuilder()
	if ua, ok := req.Headers.Get("User-Agent"); ok {
		b.WithBody([]byte(ua), httpmsg.MediaPlainText)
	}
	return build(b)
}

func (rt *Router) serveEcho(req httpmsg.Request) (httpmsg.Response, *Error) {
	param := pathSegment(req.Path, 1)
	rt.logger.Debug("echoing back the parameter", "param", param)

	b := httpmsg.NewResponseBuilder()
	if req.Encoding != nil {
		b.WithBody([]byte(param), httpmsg.MediaPlainText, *req.Encoding)
	} else {
		b.WithBody([]byte(param), httpmsg.MediaPlainText)
	}
	return build(b)
}

func (rt *Router) serveFile(req httpmsg.Request) (httpmsg.Response, *Error) {
	name := pathSegment(req.Path, 1)

	switch req.Method {
	case httpmsg.MethodGet:
		rt.logger.Debug("serving file", "name", name)

		body, err := rt.store.Read(name)
		if err != nil {
			return httpmsg.Response{}, storeError(err, name)
		}
		return build(httpmsg.NewResponseBuilder().
			WithBody(body, httpmsg.MediaOctetStream))

	case httpmsg.MethodPost:
		rt.logger.Debug("saving file", "name", name, "bytes", len(req.Body))

		if err := rt.store.Write(name, req.Body); err != nil {
			return httpmsg.Response{}, storeError(err, name)
		}
		return build(httpmsg.NewResponseBuilder().
			WithStatus(httpmsg.StatusCreated))
	}

	return httpmsg.Response{}, MethodNotAllowed(httpmsg.MethodGet, httpmsg.MethodPost)
}

func assertMethod(req httpmsg.Request, allowed ...httpmsg.Method) *Error {
	for _, m := range allowed {
		if req.Method == m {
			return nil
		}
	}
	return MethodNotAllowed(allowed...)
}

// storeError maps file store failures onto the taxonomy: absent files are
// 404, permission problems 403, everything else 500.
func storeError(err error, name string) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound(name)
	case errors.Is(err, fs.ErrPermission):
		return Forbidden()
	}
	return InternalError(err)
}

func build(b *httpmsg.ResponseBuilder) (httpmsg.Response, *Error) {
	res, err := b.Build()
	if err != nil {
		return httpmsg.Response{}, InternalError(err)
	}
	return res, nil
}

// pathSegment returns the idx'th non-empty slash-separated segment of path.
func pathSegment(path string, idx int) string {
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	if idx < len(segments) {
		return segments[idx]
	}
	return ""
}
