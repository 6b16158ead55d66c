package xsrf

import (
	"net/http"
	"strings"
)

// CookieSource supplies the raw cookie string visible to a request, serialized
// as "; "-joined name=value pairs.
type CookieSource interface {
	Cookies(req *http.Request) string
}

// CookieFunc adapts a plain function to a CookieSource.
type CookieFunc func(req *http.Request) string

func (f CookieFunc) Cookies(req *http.Request) string { return f(req) }

// StaticCookies returns a CookieSource that always yields raw.
func StaticCookies(raw string) CookieSource {
	return CookieFunc(func(*http.Request) string { return raw })
}

// RequestCookies returns a CookieSource reading the request's own Cookie
// header. http.Client adds its jar cookies before the transport runs, so for
// an attached client this is the cookie string the target origin will see.
func RequestCookies() CookieSource {
	return CookieFunc(func(req *http.Request) string {
		return strings.Join(req.Header.Values("Cookie"), "; ")
	})
}

// JarCookies returns a CookieSource reading jar for the request URL.
func JarCookies(jar http.CookieJar) CookieSource {
	return CookieFunc(func(req *http.Request) string {
		if jar == nil || req.URL == nil {
			return ""
		}
		return serializeCookies(jar.Cookies(req.URL))
	})
}

func serializeCookies(cookies []*http.Cookie) string {
	var b strings.Builder
	for i, c := range cookies {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
	}
	return b.String()
}

// TokenFromCookies returns the value of the first entry called name in the raw
// cookie string, or "" when there is none.
//
// Segments are split on ';' with leading spaces trimmed and matched by
// prefix, so "MY-XSRF-TOKEN=x" does not match "XSRF-TOKEN". The value is
// returned as-is, without unescaping.
//
// Params:
// - raw: cookie string such as "a=1; XSRF-TOKEN=abc".
// - name: cookie name to look up.
//
// Returns:
// - the raw value, possibly empty.
func TokenFromCookies(raw, name string) string {
	key := name + "="
	for _, seg := range strings.Split(raw, ";") {
		seg = strings.TrimLeft(seg, " ")
		if v, ok := strings.CutPrefix(seg, key); ok {
			return v
		}
	}
	return ""
}
