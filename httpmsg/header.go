package httpmsg

import (
	"sort"
	"strings"
)

// Header is a single name/value pair. Name keeps the casing it was first
// received with and is written to the wire verbatim.
type Header struct {
	Name  string
	Value string
}

// Text returns the wire form of the header without the line terminator.
func (h Header) Text() string { return h.Name + ": " + h.Value }

// HeaderCollection keeps at most one value per header name. Names are keyed
// case-insensitively: the last write for any case-variant of a name wins,
// while the casing of the first write is preserved for wire output. Lookups
// are case-insensitive for every name, which covers the HTTP contract for
// Content-Length, Accept-Encoding and friends.
//
// The zero value is an empty, usable collection.
type HeaderCollection struct {
	underlying map[string]Header
}

func NewHeaderCollection() HeaderCollection {
	return HeaderCollection{underlying: make(map[string]Header)}
}

func (hc *HeaderCollection) Set(name, value string) {
	if hc.underlying == nil {
		hc.underlying = make(map[string]Header)
	}

	key := strings.ToLower(name)
	if existing, ok := hc.underlying[key]; ok {
		name = existing.Name // keep the first-received casing.
	}

	hc.underlying[key] = Header{Name: name, Value: value}
}

func (hc *HeaderCollection) Get(name string) (value string, ok bool) {
	h, ok := hc.underlying[strings.ToLower(name)]
	return h.Value, ok
}

func (hc *HeaderCollection) Del(name string) {
	delete(hc.underlying, strings.ToLower(name))
}

func (hc *HeaderCollection) Len() int { return len(hc.underlying) }

// Headers returns the entries sorted by key so wire output is deterministic.
func (hc *HeaderCollection) Headers() []Header {
	keys := make([]string, 0, len(hc.underlying))
	for k := range hc.underlying {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, hc.underlying[k])
	}
	return headers
}
