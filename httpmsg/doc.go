// Package httpmsg implements the HTTP/1.1 message model: methods, versions,
// statuses, content codings and headers, plus the incremental parser that
// turns a byte stream into a request and the builder/encoder pair that turns
// a typed response back into wire bytes.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package httpmsg
