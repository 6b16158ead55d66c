package xsrf

import "net/http"

const (
	// DefaultCookieName is the cookie the server-side auth layer stores the token in.
	DefaultCookieName = "XSRF-TOKEN"
	// DefaultHeaderName is the header the token is echoed back in.
	DefaultHeaderName = "X-XSRF-TOKEN"
)

type Config struct {
	// Token lookup
	CookieName string       // e.g.: "XSRF-TOKEN"
	Source     CookieSource // if nil, uses the request's own Cookie header

	// Token transport
	HeaderName string   // e.g.: "X-XSRF-TOKEN"
	Methods    []string // compared case-sensitively
}

type Injector struct {
	cfg     Config
	methods map[string]bool
}

func New(cfg Config) *Injector {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultHeaderName
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{http.MethodPost, http.MethodPut, http.MethodDelete}
	}
	if cfg.Source == nil {
		cfg.Source = RequestCookies()
	}

	methods := make(map[string]bool, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methods[m] = true
	}
	return &Injector{cfg: cfg, methods: methods}
}
