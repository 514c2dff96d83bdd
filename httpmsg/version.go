package httpmsg

import "strconv"

// Version is a protocol version as [Major, Minor].
type Version [2]uint

var (
	V10 = Version{1, 0}
	V11 = Version{1, 1}
	V20 = Version{2, 0}
)

// Versions lists every known version.
func Versions() []Version { return []Version{V10, V11, V20} }

// ParseVersion matches token against the closed set of version literals.
// An unrecognized token is an UnhandledVersion parse error.
func ParseVersion(token string) (Version, error) {
	switch token {
	case "HTTP/1.0":
		return V10, nil
	case "HTTP/1.1":
		return V11, nil
	case "HTTP/2.0":
		return V20, nil
	}
	return Version{}, &ParseError{Kind: UnhandledVersion, Token: token}
}

func (v Version) String() string {
	return "HTTP/" +
		strconv.FormatUint(uint64(v[0]), 10) + "." +
		strconv.FormatUint(uint64(v[1]), 10)
}
