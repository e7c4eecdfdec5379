package share

import (
	"strings"
)

// BuildURL returns "{origin}/story/{id}" with one trailing slash removed from
// the origin and the id percent-encoded like encodeURIComponent.
func BuildURL(origin Origin, id StoryID) string {
	base := strings.TrimSuffix(origin.Normalize(), "/")
	return base + "/story/" + EncodeComponent(id.Normalize())
}

// EncodeComponent escapes every byte outside A-Z a-z 0-9 and -_.!~*'().
// Invalid UTF-8 is replaced with U+FFFD first.
func EncodeComponent(s string) string {
	s = strings.ToValidUTF8(s, "�")
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
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
