package xsrf

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestTokenFromCookies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"only token", "XSRF-TOKEN=tok", "tok"},
		{"first of several", "XSRF-TOKEN=abc123; sessionid=xyz", "abc123"},
		{"after space separator", "a=1; XSRF-TOKEN=v", "v"},
		{"after bare separator", "a=1;XSRF-TOKEN=v", "v"},
		{"several leading spaces", "a=1;   XSRF-TOKEN=v", "v"},
		{"first match wins", "XSRF-TOKEN=one; XSRF-TOKEN=two", "one"},
		{"substring does not match", "MY-XSRF-TOKEN=x; other=y", ""},
		{"name prefix does not match", "XSRF-TOKENS=x", ""},
		{"lowercase name does not match", "xsrf-token=x", ""},
		{"empty value", "XSRF-TOKEN=; a=1", ""},
		{"value kept encoded", "XSRF-TOKEN=a%3Db%2Bc", "a%3Db%2Bc"},
		{"value with equals", "XSRF-TOKEN=a=b", "a=b"},
		{"tab is not trimmed", "a=1;\tXSRF-TOKEN=v", ""},
		{"no token", "a=1; b=2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenFromCookies(tt.raw, DefaultCookieName); got != tt.want {
				t.Fatalf("TokenFromCookies(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Any value without ';' round-trips through "XSRF-TOKEN=" + v.
func TestTokenFromCookiesReturnsValueVerbatim(t *testing.T) {
	for _, v := range []string{"", "abc", " leading", "trailing ", "%20", "ü", "a=b=c"} {
		if got := TokenFromCookies("XSRF-TOKEN="+v, DefaultCookieName); got != v {
			t.Fatalf("got %q want %q", got, v)
		}
	}
}

func TestTokenFromCookiesIsIdempotent(t *testing.T) {
	raw := "a=1; XSRF-TOKEN=abc; b=2"
	first := TokenFromCookies(raw, DefaultCookieName)
	second := TokenFromCookies(raw, DefaultCookieName)
	if first != second || first != "abc" {
		t.Fatalf("results differ: %q vs %q", first, second)
	}
	if raw != "a=1; XSRF-TOKEN=abc; b=2" {
		t.Fatalf("input mutated: %q", raw)
	}
}

func TestRequestCookiesJoinsHeaderLines(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Add("Cookie", "a=1")
	req.Header.Add("Cookie", "XSRF-TOKEN=tok")

	raw := RequestCookies().Cookies(req)
	if raw != "a=1; XSRF-TOKEN=tok" {
		t.Fatalf("unexpected cookie string %q", raw)
	}
}

func TestJarCookies(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	u, _ := url.Parse("http://example.com/")
	jar.SetCookies(u, []*http.Cookie{
		{Name: "sessionid", Value: "xyz", Path: "/"},
		{Name: DefaultCookieName, Value: "abc123", Path: "/"},
	})

	req := httptest.NewRequest(http.MethodPost, "http://example.com/submit", nil)
	if got := TokenFromCookies(JarCookies(jar).Cookies(req), DefaultCookieName); got != "abc123" {
		t.Fatalf("expected token from jar, got %q", got)
	}

	other := httptest.NewRequest(http.MethodPost, "http://evil.com/submit", nil)
	if got := JarCookies(jar).Cookies(other); got != "" {
		t.Fatalf("expected no cookies for other host, got %q", got)
	}

	if got := JarCookies(nil).Cookies(req); got != "" {
		t.Fatalf("expected empty string for nil jar, got %q", got)
	}
}
