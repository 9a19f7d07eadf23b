package jar

import "errors"

var (
	ErrArchiveNotFound = errors.New("file not found")
	ErrNotOpened       = errors.New("archive not opened")
	ErrUnsafePath      = errors.New("archive entry escapes extraction directory")
)
