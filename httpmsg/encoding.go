package httpmsg

// Encoding is a content coding token. The numeric values define the fixed
// total order used as the negotiation tie-break: the lowest-ordered coding a
// client offers wins, whatever order the client listed them in.
type Encoding uint8

const (
	EncodingGzip Encoding = iota
	EncodingDeflate
	EncodingBrotli
	EncodingCompress
	EncodingExi
	EncodingIdentity
	EncodingZstd
	EncodingUnsupported

	encodingCount = int(EncodingUnsupported) + 1
)

// ParseEncoding maps a coding token to its variant. Matching is
// case-sensitive; an unrecognized token is EncodingUnsupported, never an
// error.
func ParseEncoding(token string) Encoding {
	switch token {
	case "gzip":
		return EncodingGzip
	case "deflate":
		return EncodingDeflate
	case "br":
		return EncodingBrotli
	case "compress":
		return EncodingCompress
	case "exi":
		return EncodingExi
	case "identity":
		return EncodingIdentity
	case "zstd":
		return EncodingZstd
	}
	return EncodingUnsupported
}

func (e Encoding) String() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingDeflate:
		return "deflate"
	case EncodingBrotli:
		return "br"
	case EncodingCompress:
		return "compress"
	case EncodingExi:
		return "exi"
	case EncodingIdentity:
		return "identity"
	case EncodingZstd:
		return "zstd"
	}
	return "unsupported"
}

// EncodingSet is a set of codings ordered by the Encoding total order.
// The zero value is an empty set.
type EncodingSet struct {
	members [encodingCount]bool
}

func (s *EncodingSet) Add(e Encoding) { s.members[e] = true }

func (s *EncodingSet) Has(e Encoding) bool { return s.members[e] }

func (s *EncodingSet) Len() int {
	n := 0
	for _, ok := range s.members {
		if ok {
			n++
		}
	}
	return n
}

// Min returns the lowest-ordered member, false when the set is empty.
func (s *EncodingSet) Min() (Encoding, bool) {
	for i, ok := range s.members {
		if ok {
			return Encoding(i), true
		}
	}
	return EncodingUnsupported, false
}

// All returns the members in the fixed total order.
func (s *EncodingSet) All() []Encoding {
	all := make([]Encoding, 0, encodingCount)
	for i, ok := range s.members {
		if ok {
			all = append(all, Encoding(i))
		}
	}
	return all
}
