package assemble

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	got := Segments(`C:\Users\me\.xmcl/instances//Pack`)
	want := []string{"C:", "Users", "me", ".xmcl", "instances", "Pack"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestInstanceFromSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
		wantOK   bool
	}{
		{"marker present", []string{"home", ".xmcl", "instances", "Pack", "mods"}, "Pack", true},
		{"first marker wins", []string{".xmcl", "instances", "A", ".xmcl", "instances", "B"}, "A", true},
		{"marker absent", []string{"home", "games", "mods"}, "", false},
		{"marker too deep", []string{"home", ".xmcl", "instances"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InstanceFromSegments(tt.segments, DefaultMarker)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("InstanceFromSegments() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModName(t *testing.T) {
	tests := map[string]string{
		"create-1.20.1-0.5.1.jar": "create-1.20.1-0.5.1",
		"Pack.ZIP":                "Pack",
		"jarjar.jar":              "jarjar",
		"readme.txt":              "readme.txt",
		"noext":                   "noext",
	}

	for in, want := range tests {
		if got := ModName(in); got != want {
			t.Errorf("ModName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDeriveNames(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Names
	}{
		{
			name: "launcher instance",
			path: filepath.Join("/home", "me", ".xmcl", "instances", "Survival", "mods", "jei-1.0.jar"),
			want: Names{Instance: "Survival", Mod: "jei-1.0"},
		},
		{
			name: "fallback to parent directory",
			path: filepath.Join("/home", "me", "downloads", "jei-1.0.jar"),
			want: Names{Instance: "downloads", Mod: "jei-1.0"},
		},
		{
			name: "marker directly above the file",
			path: filepath.Join("/data", ".xmcl", "instances", "jei.jar"),
			want: Names{Instance: "instances", Mod: "jei"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveNames(tt.path, DefaultMarker); got != tt.want {
				t.Errorf("DeriveNames(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}
