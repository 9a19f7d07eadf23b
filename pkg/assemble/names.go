package assemble

import (
	"path/filepath"
	"strings"
)

// DefaultMarker is the launcher data directory that instance folders live
// under: <marker>/instances/<instance>/mods/<mod>.jar.
const DefaultMarker = ".xmcl"

// archiveExts are stripped from the archive file name to form the mod name.
var archiveExts = []string{".jar", ".zip"}

// Names identifies where an archive's output lands.
type Names struct {
	Instance string
	Mod      string
}

// Segments splits path on both slash styles so paths copied from another
// OS still split into their components. Empty segments are dropped.
func Segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// InstanceFromSegments returns the segment two levels below the first
// occurrence of marker.
func InstanceFromSegments(segments []string, marker string) (string, bool) {
	for i, s := range segments {
		if s != marker {
			continue
		}
		if i+2 < len(segments) {
			return segments[i+2], true
		}
		return "", false
	}
	return "", false
}

// ModName strips a known archive extension from a file name.
func ModName(fileName string) string {
	ext := filepath.Ext(fileName)
	for _, known := range archiveExts {
		if strings.EqualFold(ext, known) {
			return strings.TrimSuffix(fileName, ext)
		}
	}
	return fileName
}

// DeriveNames computes the instance and mod names for an archive path. The
// instance comes from the marker directory when present, otherwise from the
// archive's parent directory.
func DeriveNames(archivePath, marker string) Names {
	if marker == "" {
		marker = DefaultMarker
	}

	dir := filepath.Dir(archivePath)
	instance, ok := InstanceFromSegments(Segments(dir), marker)
	if !ok {
		instance = filepath.Base(dir)
	}

	return Names{
		Instance: instance,
		Mod:      ModName(filepath.Base(archivePath)),
	}
}
