package langmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMappingNotFound = errors.New("language mapping file not found")
	ErrUnknownLanguage = errors.New("language not found in mapping")
)

// UnknownLanguageError reports a code missing from the mapping together with
// what the user could have typed instead.
type UnknownLanguageError struct {
	Code       string
	Available  []string
	Suggestion string // Closest mapping code, empty if none is close enough
}

func (e *UnknownLanguageError) Error() string {
	msg := fmt.Sprintf("language %s not found in mapping (available: %s)",
		e.Code, strings.Join(e.Available, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %s?", e.Suggestion)
	}
	return msg
}

// Is makes errors.Is(err, ErrUnknownLanguage) hold.
func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}
