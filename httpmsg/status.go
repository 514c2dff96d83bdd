package httpmsg

import "strconv"

// Status is a response status as (code, reason-phrase).
type Status struct {
	Code         uint
	ReasonPhrase string
}

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#name-status-codes
var (
	StatusOK                  = Status{200, "OK"}
	StatusCreated             = Status{201, "Created"}
	StatusBadRequest          = Status{400, "Bad Request"}
	StatusUnauthorized        = Status{401, "Unauthorized"}
	StatusForbidden           = Status{403, "Forbidden"}
	StatusNotFound            = Status{404, "Not Found"}
	StatusMethodNotAllowed    = Status{405, "Method Not Allowed"}
	StatusInternalServerError = Status{500, "Internal Server Error"}
)

// String returns the status-line form, e.g. "404 Not Found".
func (s Status) String() string {
	return strconv.FormatUint(uint64(s.Code), 10) + " " + s.ReasonPhrase
}
