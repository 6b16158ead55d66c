package xsrf

import (
	"fmt"
	"net/http"
)

// Token returns the current token visible to req. It is read from the
// configured CookieSource on every call and never cached.
func (i *Injector) Token(req *http.Request) string {
	return TokenFromCookies(i.cfg.Source.Cookies(req), i.cfg.CookieName)
}

// Intercept sets the token header on req when its method needs protection.
//
// Behavior:
//   - Protected methods (POST/PUT/DELETE by default, exact case): the header
//     is set to the current token, overwriting any previous value. An empty
//     token is still sent.
//   - Any other method, including "post": req is left untouched.
//
// Params:
// - req: outgoing request; only its header collection is modified.
func (i *Injector) Intercept(req *http.Request) {
	if !i.methods[req.Method] {
		return
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set(i.cfg.HeaderName, i.Token(req))
}

// Transport is an http.RoundTripper that runs an Injector before each request.
// The caller's request is never modified; protected requests are cloned first.
type Transport struct {
	Injector *Injector         // if nil, uses New(Config{})
	Base     http.RoundTripper // if nil, uses http.DefaultTransport
}

var defaultInjector = New(Config{})

// Transport returns a round tripper injecting the token before delegating to base.
func (i *Injector) Transport(base http.RoundTripper) *Transport {
	return &Transport{Injector: i, Base: base}
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	inj := t.injector()
	if inj.methods[req.Method] {
		req = req.Clone(req.Context())
		inj.Intercept(req)
	}
	return t.base().RoundTrip(req)
}

func (t *Transport) injector() *Injector {
	if t.Injector != nil {
		return t.Injector
	}
	return defaultInjector
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// Attach installs the injector on c by wrapping its transport. It may be
// called once per client. Only c.Transport itself is inspected: a *Transport
// hidden behind another wrapper is not detected, and attaching again then
// sets the header twice, the last value winning.
//
// Returns:
// - ErrNilClient when c is nil.
// - ErrAlreadyAttached when c.Transport is already a *Transport.
func (i *Injector) Attach(c *http.Client) error {
	if c == nil {
		return fmt.Errorf("attach: %w", ErrNilClient)
	}
	if _, ok := c.Transport.(*Transport); ok {
		return fmt.Errorf("attach: %w", ErrAlreadyAttached)
	}
	c.Transport = i.Transport(c.Transport)
	return nil
}
