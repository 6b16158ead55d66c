package xsrfcheck

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"golang.org/x/net/xsrftoken"
)

var (
	ErrMissingCookie = errors.New("missing xsrf cookie")
	ErrInvalidCookie = errors.New("invalid xsrf cookie")
	ErrBadHeader     = errors.New("invalid or missing xsrf header")
)

// Safe methods skip validation; everything else must carry the token.
var safeMethods = map[string]bool{
	http.MethodGet:  true,
	http.MethodHead: true,
}

// Protect wraps next and enforces the cookie-to-header check.
//
// Behavior:
//   - Every request without a valid token cookie gets a fresh XSRF-TOKEN
//     cookie (HttpOnly=false so the client can read it back).
//   - Safe methods (GET/HEAD) then continue to next.
//   - Other methods need a cookie accepted by xsrftoken.Valid and an
//     X-XSRF-TOKEN header equal to it, compared in constant time; otherwise
//     the request is rejected with 403.
//
// Params:
// - next: downstream handler executed once the check passes.
//
// Returns:
// - An http.Handler that performs the check before delegating to next.
func (c *Checker) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !safeMethods[r.Method] {
			if err := c.Check(r); err != nil {
				c.ensureCookie(w, r)
				http.Error(w, err.Error(), http.StatusForbidden)
				return
			}
		}
		c.ensureCookie(w, r)
		next.ServeHTTP(w, r)
	})
}

// Check reports why r would be rejected, or nil when its header matches a
// valid token cookie. It ignores the method.
func (c *Checker) Check(r *http.Request) error {
	cookie, err := r.Cookie(c.cfg.CookieName)
	if err != nil {
		return ErrMissingCookie
	}
	if !c.valid(cookie.Value) {
		return ErrInvalidCookie
	}
	hdr := r.Header.Get(c.cfg.HeaderName)
	if hdr == "" || subtle.ConstantTimeCompare([]byte(hdr), []byte(cookie.Value)) != 1 {
		return ErrBadHeader
	}
	return nil
}

// Token returns a freshly signed token value.
func (c *Checker) Token() string {
	return xsrftoken.Generate(c.cfg.Key, c.cfg.Key, c.cfg.ActionID)
}

func (c *Checker) valid(tok string) bool {
	if c.cfg.Timeout > 0 {
		return xsrftoken.ValidFor(tok, c.cfg.Key, c.cfg.Key, c.cfg.ActionID, c.cfg.Timeout)
	}
	return xsrftoken.Valid(tok, c.cfg.Key, c.cfg.Key, c.cfg.ActionID)
}

// ensureCookie sets a new token cookie unless r already carries a valid one.
func (c *Checker) ensureCookie(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(c.cfg.CookieName); err == nil && c.valid(ck.Value) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    c.Token(),
		Path:     c.cfg.CookiePath,
		Domain:   c.cfg.CookieDomain,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
}
