// Package share builds public links to stories.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type originKind int

const (
	originAbsent originKind = iota
	originString
	originLocation
	originHref
	originStringer
)

// Origin is where a share link points. The zero value is an absent origin.
type Origin struct {
	kind     originKind
	text     string
	stringer fmt.Stringer
}

// NoOrigin is an absent origin; links become root-relative
func NoOrigin() Origin { return Origin{} }

// OriginString uses s verbatim
func OriginString(s string) Origin { return Origin{kind: originString, text: s} }

// OriginLocation is a location-like value that already knows its origin,
// such as "https://econhub.example".
func OriginLocation(origin string) Origin { return Origin{kind: originLocation, text: origin} }

// OriginHref is a full URL whose scheme and host become the origin
func OriginHref(href string) Origin { return Origin{kind: originHref, text: href} }

// OriginStringer uses the String form of s
func OriginStringer(s fmt.Stringer) Origin { return Origin{kind: originStringer, stringer: s} }

// Normalize reduces the origin to a string. It never fails: anything that
// cannot be interpreted becomes "".
func (o Origin) Normalize() string {
	switch o.kind {
	case originString, originLocation:
		return o.text
	case originHref:
		return hrefOrigin(o.text)
	case originStringer:
		return safeString(o.stringer)
	default:
		return ""
	}
}

// hrefOrigin returns scheme://host of an absolute URL, or href unchanged
// when it is not one or does not parse. Every scheme keeps scheme://host;
// non-web schemes are not collapsed to an opaque "null" origin.
func hrefOrigin(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return href
	}
	host := strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && u.Port() == "80",
		u.Scheme == "https" && u.Port() == "443":
		host = strings.ToLower(u.Hostname())
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
	}
	return u.Scheme + "://" + host
}

type idKind int

const (
	idAbsent idKind = iota
	idString
	idInt
	idStringer
)

// StoryID identifies the story a link points at. The zero value is absent.
type StoryID struct {
	kind     idKind
	text     string
	n        int64
	stringer fmt.Stringer
}

// NoID is an absent story id
func NoID() StoryID { return StoryID{} }

// IDString uses s as the story id
func IDString(s string) StoryID { return StoryID{kind: idString, text: s} }

// IDInt uses the decimal form of n
func IDInt(n int64) StoryID { return StoryID{kind: idInt, n: n} }

// IDStringer uses the String form of s
func IDStringer(s fmt.Stringer) StoryID { return StoryID{kind: idStringer, stringer: s} }

// Normalize reduces the id to a trimmed string, "" when absent
func (id StoryID) Normalize() string {
	var s string
	switch id.kind {
	case idString:
		s = id.text
	case idInt:
		s = strconv.FormatInt(id.n, 10)
	case idStringer:
		s = safeString(id.stringer)
	}
	return strings.TrimSpace(s)
}

// IsBlank reports whether the id normalizes to nothing
func (id StoryID) IsBlank() bool {
	return id.Normalize() == ""
}

func safeString(s fmt.Stringer) (out string) {
	if s == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return s.String()
}
