package documents

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSizeExceeded    = errors.New("file size exceeds limit")
	ErrUnauthenticated = errors.New("user not authenticated")
)
