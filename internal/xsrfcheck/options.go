// Package xsrfcheck is the server half used by the demo programs and the
// end-to-end tests: it issues the XSRF-TOKEN cookie and checks that
// state-changing requests echo it back in X-XSRF-TOKEN.
package xsrfcheck

import (
	"encoding/hex"
	"time"

	"github.com/gorilla/securecookie"
)

type Config struct {
	// Cookie
	CookieName   string
	CookiePath   string
	CookieDomain string
	CookieSecure bool

	// Token transport
	HeaderName string

	// Signing. Key defaults to a random per-process value.
	Key      string
	ActionID string
	Timeout  time.Duration // if zero, uses xsrftoken.Timeout
}

type Checker struct {
	cfg Config
}

func New(cfg Config) *Checker {
	if cfg.CookieName == "" {
		cfg.CookieName = "XSRF-TOKEN"
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-XSRF-TOKEN"
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = "/"
	}
	if cfg.ActionID == "" {
		cfg.ActionID = "use"
	}
	if cfg.Key == "" {
		cfg.Key = hex.EncodeToString(mustRand(32))
	}
	return &Checker{cfg: cfg}
}

func mustRand(n int) []byte {
	if b := securecookie.GenerateRandomKey(n); b != nil {
		return b
	}
	panic("xsrfcheck: broken random generator")
}
