package client

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodePathSegment percent-encodes s so it can be used as exactly one path
// segment. Only ASCII letters, digits and - _ . ! ~ * ' ( ) are left as is;
// every other byte, including '/', '?', '#', '&', '%', space and each byte of
// a multi-byte UTF-8 sequence, becomes %XX. A segment that is exactly "." or
// ".." has its dots encoded so it cannot be read as a dot segment.
func EncodePathSegment(s string) string {
	if s == "." || s == ".." {
		return strings.Repeat("%2E", len(s))
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !unescaped(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unescaped(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&15])
	}
	return sb.String()
}

func unescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
