package server

import (
	"testing"

	"httpserve/httpmsg"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponseMapping(t *testing.T) {
	testcases := []struct {
		desc       string
		err        *Error
		wantStatus httpmsg.Status
		wantHeader [2]string
	}{
		{
			desc:       "not found",
			err:        NotFound("/nope"),
			wantStatus: httpmsg.StatusNotFound,
		},
		{
			desc:       "method not allowed echoes the allowlist",
			err:        MethodNotAllowed(httpmsg.MethodGet, httpmsg.MethodPost),
			wantStatus: httpmsg.StatusMethodNotAllowed,
			wantHeader: [2]string{"Allowed", "GET,POST"},
		},
		{
			desc:       "bad request",
			err:        BadRequest(httpmsg.ErrMalformedRequest),
			wantStatus: httpmsg.StatusBadRequest,
		},
		{
			desc:       "unauthorized requests basic auth",
			err:        Unauthorized(),
			wantStatus: httpmsg.StatusUnauthorized,
			wantHeader: [2]string{"WWW-Authenticate", "Basic"},
		},
		{
			desc:       "forbidden",
			err:        Forbidden(),
			wantStatus: httpmsg.StatusForbidden,
		},
		{
			desc:       "internal error",
			err:        InternalError(errors.New("disk on fire")),
			wantStatus: httpmsg.StatusInternalServerError,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			res := tc.err.Response()

			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, httpmsg.V11, res.Version)
			assert.Nil(t, res.Body)

			if tc.wantHeader != [2]string{} {
				v, ok := res.Headers.Get(tc.wantHeader[0])
				assert.True(t, ok)
				assert.Equal(t, tc.wantHeader[1], v)
				assert.Equal(t, 1, res.Headers.Len())
			} else {
				assert.Zero(t, res.Headers.Len())
			}
		})
	}
}

func TestMethodNotAllowedWire(t *testing.T) {
	res := MethodNotAllowed(httpmsg.MethodGet, httpmsg.MethodPost).Response()

	expected := "HTTP/1.1 405 Method Not Allowed\r\n" +
		"Allowed: GET,POST\r\n" +
		"\r\n"
	assert.Equal(t, expected, string(res.Bytes()))
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "not found: /x", NotFound("/x").Error())
	assert.Equal(t, "method not allowed", MethodNotAllowed(httpmsg.MethodGet).Error())

	cause := errors.New("boom")
	assert.Equal(t, "internal server error: boom", InternalError(cause).Error())
	assert.ErrorIs(t, InternalError(cause), cause)
}
