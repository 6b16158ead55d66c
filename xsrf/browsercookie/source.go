// Package browsercookie reads the XSRF cookie jar from a local browser profile.
//
// It is meant for CLI helpers and dev scripts that act on behalf of a user who
// is already logged in through their browser. Reading a profile can trigger a
// keychain or keyring prompt; do not use it in servers.
package browsercookie

import (
	"net/http"
	"strings"

	"github.com/steipete/sweetcookie"
)

// Source is an xsrf.CookieSource backed by sweetcookie. The profile is re-read
// on every call.
type Source struct {
	// Options are passed to sweetcookie.Get. URL is always replaced by the
	// request URL so only cookies the target origin would see are returned.
	Options sweetcookie.Options

	// OnError and OnWarning are optional hooks; a failed load yields "".
	OnError   func(error)
	OnWarning func(string)
}

func (s *Source) Cookies(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	opts := s.Options
	opts.URL = req.URL.String()

	res, err := sweetcookie.Get(req.Context(), opts)
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
		return ""
	}
	if s.OnWarning != nil {
		for _, w := range res.Warnings {
			s.OnWarning(w)
		}
	}
	return serialize(res.Cookies)
}

// Apply loads the profile once and stores the result as req's Cookie header.
// Pair it with the default xsrf.RequestCookies source so the token header is
// taken from the same cookie line that is sent.
func (s *Source) Apply(req *http.Request) string {
	raw := s.Cookies(req)
	if raw != "" {
		req.Header.Set("Cookie", raw)
	}
	return raw
}

func serialize(cookies []sweetcookie.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
