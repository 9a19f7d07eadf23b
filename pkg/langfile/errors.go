package langfile

import "errors"

var (
	ErrNotFound       = errors.New("file not found")
	ErrWrongExtension = errors.New("wrong file extension")
	ErrNotObject      = errors.New("document is not a key-value object")
)
