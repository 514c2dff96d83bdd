package httpmsg

// MediaType is the Content-Type value a response body is served as.
type MediaType string

const (
	MediaPlainText   MediaType = "text/plain"
	MediaOctetStream MediaType = "application/octet-stream"
	MediaJSON        MediaType = "application/json"
)

func (m MediaType) String() string { return string(m) }
