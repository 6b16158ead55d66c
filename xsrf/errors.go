package xsrf

import "errors"

var (
	ErrNilClient       = errors.New("xsrf: nil http client")
	ErrAlreadyAttached = errors.New("xsrf: client already has an xsrf transport")
)
