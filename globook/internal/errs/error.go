package errs

import (
	"errors"
)

var (
	ErrBrokenChain  = errors.New("catch has no copy, book or author")
	ErrCopyNotFound = errors.New("copy not found")
	ErrWrongSecret  = errors.New("copy secret does not match")
	ErrInvalidCatch = errors.New("invalid catch")
)
