// Package langmap loads the hand-written mapping from short language codes
// (ru, en, uk) to the resource file names mods ship them under (ru_ru.json).
package langmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"
)

// DefaultFile is the mapping file looked up in the working directory.
const DefaultFile = "language_mapping.json"

// Mapping maps a language code to a resource file name.
type Mapping map[string]string

// Load reads and parses the mapping file at path.
func Load(path string) (Mapping, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMappingNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping: %w", err)
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", path, err)
	}
	if m == nil {
		m = Mapping{}
	}

	return m, nil
}

// Codes returns the mapping's language codes in ascending order.
func (m Mapping) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Resolve returns the resource file name for code. The lookup is exact;
// a miss yields an *UnknownLanguageError.
func (m Mapping) Resolve(code string) (string, error) {
	if name, ok := m[code]; ok {
		return name, nil
	}

	suggestion, _ := m.Suggest(code)
	return "", &UnknownLanguageError{
		Code:       code,
		Available:  m.Codes(),
		Suggestion: suggestion,
	}
}

// Suggest finds the mapping code whose language matches code with at least
// high confidence, so "RU" or "ru-RU" point at "ru".
func (m Mapping) Suggest(code string) (string, bool) {
	want, err := language.Parse(code)
	if err != nil {
		return "", false
	}

	var (
		codes []string
		tags  []language.Tag
	)
	for _, c := range m.Codes() {
		tag, err := language.Parse(c)
		if err != nil {
			continue
		}
		codes = append(codes, c)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", false
	}

	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf < language.High || codes[idx] == code {
		return "", false
	}
	return codes[idx], true
}
