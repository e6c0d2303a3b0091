package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrJobNotFound        = errors.New("Job not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)
