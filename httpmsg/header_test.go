package httpmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderText(t *testing.T) {
	h := Header{Name: "Content-Type", Value: "text/plain"}
	assert.Equal(t, "Content-Type: text/plain", h.Text())
}

func TestHeaderCollectionSetGet(t *testing.T) {
	hc := NewHeaderCollection()

	hc.Set("Content-Length", "5")

	v, ok := hc.Get("Content-Length")
	assert.True(t, ok)
	assert.Equal(t, "5", v)

	// Lookups are case-insensitive.
	v, ok = hc.Get("content-length")
	assert.True(t, ok)
	assert.Equal(t, "5", v)

	_, ok = hc.Get("Accept-Encoding")
	assert.False(t, ok)
}

func TestHeaderCollectionLastWriteWins(t *testing.T) {
	hc := NewHeaderCollection()

	hc.Set("Content-Type", "text/plain")
	hc.Set("content-type", "application/json")

	assert.Equal(t, 1, hc.Len())

	v, _ := hc.Get("Content-Type")
	assert.Equal(t, "application/json", v)

	// The wire name keeps the casing of the first write.
	headers := hc.Headers()
	assert.Equal(t, []Header{{Name: "Content-Type", Value: "application/json"}}, headers)
}

func TestHeaderCollectionZeroValue(t *testing.T) {
	var hc HeaderCollection

	_, ok := hc.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, hc.Headers())

	hc.Set("A", "1")
	assert.Equal(t, 1, hc.Len())
}

func TestHeaderCollectionHeadersSorted(t *testing.T) {
	hc := NewHeaderCollection()
	hc.Set("Zulu", "z")
	hc.Set("Alpha", "a")
	hc.Set("Mike", "m")

	headers := hc.Headers()
	assert.Equal(t, []Header{
		{Name: "Alpha", Value: "a"},
		{Name: "Mike", Value: "m"},
		{Name: "Zulu", Value: "z"},
	}, headers)
}

func TestHeaderCollectionDel(t *testing.T) {
	hc := NewHeaderCollection()
	hc.Set("Content-Encoding", "gzip")

	hc.Del("content-encoding")

	_, ok := hc.Get("Content-Encoding")
	assert.False(t, ok)
}
