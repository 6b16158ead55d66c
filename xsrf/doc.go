// Package xsrf is the client half of the cookie-to-header CSRF pattern: it
// echoes the XSRF-TOKEN cookie set by a server back as the X-XSRF-TOKEN header
// on state-changing requests made with a Go http.Client.
//
// How it works
//   - POST, PUT and DELETE requests (exact, case-sensitive match): the token
//     is read from the configured CookieSource and set as the header,
//     overwriting any previous value. A missing cookie sends an empty header;
//     the server is expected to reject it.
//   - Every other method is passed through unchanged.
//
// # Configuration
//
// All behavior is driven by Config:
//   - CookieName (default: "XSRF-TOKEN")
//   - HeaderName (default: "X-XSRF-TOKEN")
//   - Methods (default: POST, PUT, DELETE)
//   - Source (default: the request's own Cookie header, which http.Client
//     fills from its Jar)
//
// Typical usage
//
//	jar, _ := cookiejar.New(nil)
//	client := &http.Client{Jar: jar}
//	if err := xsrf.New(xsrf.Config{}).Attach(client); err != nil {
//	    log.Fatal(err)
//	}
//	// GET once so the server can set XSRF-TOKEN, then POST as usual.
//
// Cookie strings can also come from elsewhere, for example a fixed value in
// tests or a local browser profile (see package browsercookie):
//
//	inj := xsrf.New(xsrf.Config{Source: xsrf.StaticCookies("XSRF-TOKEN=abc")})
//	rt := inj.Transport(http.DefaultTransport)
package xsrf
