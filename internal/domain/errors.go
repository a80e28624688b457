package domain

import "errors"

var (
	ErrConfiguration       = errors.New("configuration error")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidTier         = errors.New("invalid tier")
	ErrUpstreamFormat      = errors.New("upstream returned malformed copy")
	ErrUpstreamEmptyResult = errors.New("upstream returned no images")
	ErrUpstreamTransport   = errors.New("upstream request failed")
)
