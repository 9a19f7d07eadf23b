package locate

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, filepath.FromSlash(r))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"assets/modb/lang/ru_ru.json",
		"assets/moda/lang/ru_ru.json",
		"assets/moda/lang/RU_RU.json",
		"assets/moda/lang/en_us.json",
		"data/ru_ru.json.bak",
	)
	if err := os.MkdirAll(filepath.Join(root, "weird", "ru_ru.json"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(root, "ru_ru.json")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "assets", "moda", "lang", "ru_ru.json"),
		filepath.Join(root, "assets", "modb", "lang", "ru_ru.json"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestFindNone(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "assets/moda/lang/en_us.json")

	got, err := Find(root, "de_de.json")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Find() = %v, want empty", got)
	}
}

func TestFindMissingRoot(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "missing"), "a.json"); err == nil {
		t.Error("Find() expected error for missing root")
	}
}
