package menu

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLineInput(t *testing.T) {
	var out bytes.Buffer
	in := NewLineInput(strings.NewReader("  1  \r\nru\n"), &out)

	got, err := in.Prompt("Choose: ")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if got != "1" {
		t.Errorf("Prompt() = %q, want 1", got)
	}

	got, err = in.Prompt("Code: ")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if got != "ru" {
		t.Errorf("Prompt() = %q, want ru", got)
	}

	if _, err := in.Prompt("More: "); !errors.Is(err, ErrNoInput) {
		t.Errorf("Prompt() at EOF error = %v, want ErrNoInput", err)
	}

	if out.String() != "Choose: Code: More: " {
		t.Errorf("prompts written = %q", out.String())
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{`""`, ""},
		{"ru_ru.json", "ru_ru.json"},
		{"  mods/a.jar  ", filepath.Clean("mods/a.jar")},
		{`"mods/my mod.jar"`, filepath.Clean("mods/my mod.jar")},
		{`'mods/a.jar'`, filepath.Clean("mods/a.jar")},
		{`"mods/a.jar'`, `"mods/a.jar'`},
		{"mods/./x/../a.jar", filepath.Clean("mods/a.jar")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanPath(tt.raw); got != tt.want {
				t.Errorf("CleanPath(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
