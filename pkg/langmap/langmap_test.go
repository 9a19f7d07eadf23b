package langmap

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write mapping: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeMapping(t, `{"ru": "ru_ru.json", "uk": "uk_ua.json"}`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Mapping{"ru": "ru_ru.json", "uk": "uk_ua.json"}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Load() = %v, want %v", m, want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrMappingNotFound) {
		t.Errorf("Load() error = %v, want ErrMappingNotFound", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeMapping(t, `{"ru": `)

	if _, err := Load(path); err == nil {
		t.Error("Load() expected parse error")
	}
}

func TestLoadNull(t *testing.T) {
	m, err := Load(writeMapping(t, `null`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("Load() = %#v, want empty mapping", m)
	}
}

func TestResolve(t *testing.T) {
	m := Mapping{"ru": "ru_ru.json"}

	name, err := m.Resolve("ru")
	if err != nil {
		t.Fatalf("Resolve(ru) error = %v", err)
	}
	if name != "ru_ru.json" {
		t.Errorf("Resolve(ru) = %q, want ru_ru.json", name)
	}

	_, err = m.Resolve("de")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("Resolve(de) error = %v, want ErrUnknownLanguage", err)
	}

	var unknown *UnknownLanguageError
	if !errors.As(err, &unknown) {
		t.Fatalf("Resolve(de) error type = %T", err)
	}
	if unknown.Code != "de" {
		t.Errorf("Code = %q, want de", unknown.Code)
	}
	if !reflect.DeepEqual(unknown.Available, []string{"ru"}) {
		t.Errorf("Available = %v, want [ru]", unknown.Available)
	}
	if unknown.Suggestion != "" {
		t.Errorf("Suggestion = %q, want none", unknown.Suggestion)
	}
}

func TestCodesSorted(t *testing.T) {
	m := Mapping{"uk": "uk_ua.json", "en": "en_us.json", "ru": "ru_ru.json"}

	got := m.Codes()
	want := []string{"en", "ru", "uk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestSuggest(t *testing.T) {
	m := Mapping{"ru": "ru_ru.json", "en": "en_us.json"}

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"RU", "ru", true},
		{"ru-RU", "ru", true},
		{"de", "", false},
		{"ru", "", false},
		{"???", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := m.Suggest(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Suggest(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
