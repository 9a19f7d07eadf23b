// Package langfile sorts the top-level keys of JSON language files.
//
// Values are kept as raw JSON and never re-interpreted, so numbers, nested
// objects and escape sequences come out exactly as they went in; only the
// layout changes to two-space indentation. Non-ASCII text is written
// literally.
package langfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Extension is the extension accepted by CheckExtension.
const Extension = ".json"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sort parses a JSON object and re-serializes it with keys in ascending
// byte order. A leading UTF-8 byte order mark is preserved.
func Sort(data []byte) ([]byte, error) {
	hasBOM := bytes.HasPrefix(data, utf8BOM)
	if hasBOM {
		stripped, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode: %w", err)
		}
		data = stripped
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: top-level value is %s", ErrNotObject, typeErr.Value)
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: top-level value is null", ErrNotObject)
	}

	// encoding/json writes map keys in sorted order
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	if hasBOM {
		return unicode.UTF8BOM.NewEncoder().Bytes(buf.Bytes())
	}
	return buf.Bytes(), nil
}

// SortFile sorts the file at path in place.
func SortFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	} else if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sorted, err := Sort(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, sorted, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CheckExtension reports ErrWrongExtension unless path ends in ext,
// compared case-insensitively.
func CheckExtension(path, ext string) error {
	if ext == "" {
		ext = Extension
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%w: %s (expected %s)", ErrWrongExtension, filepath.Base(path), ext)
	}
	return nil
}
