package fetch

import (
	"net"
	"strconv"
)

// DefaultPort is the port used for every parsed endpoint.
const DefaultPort = 80

// Endpoint is the location of a remote batch.
type Endpoint struct {
	Host string
	Path string
	Port int
}

// Address returns the host:port pair to dial.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// ParseEndpoint splits a URL of the form scheme://host/path on its slashes.
// The host is the text between the second and third slash, the path is
// everything from the third slash on.
//
// Missing slashes are not an error: the slash finder falls back to index 0,
// so http://host yields the host "host" and the path "http://host".
func ParseEndpoint(url string) Endpoint {
	second := nthIndex(url, '/', 2)
	third := nthIndex(url, '/', 3)

	return Endpoint{
		Host: substr(url, second+1, third-(second+1)),
		Path: substr(url, third, len(url)-third),
		Port: DefaultPort,
	}
}

// nthIndex returns the index of the n-th occurrence of c in s, or 0 if there
// are fewer than n.
func nthIndex(s string, c byte, n int) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			count++
		}
		if count == n {
			return i
		}
	}
	return 0
}

// substr returns at most length bytes of s starting at pos. A negative length
// or one running past the end takes the rest of the string.
func substr(s string, pos, length int) string {
	if pos >= len(s) {
		return ""
	}
	if length < 0 || pos+length > len(s) {
		return s[pos:]
	}
	return s[pos : pos+length]
}
