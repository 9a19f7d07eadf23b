// Package jar unpacks mod archives (.jar and .zip) into a scratch directory.
package jar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zip"
)

// ScratchPattern is the os.MkdirTemp pattern for scratch directories.
const ScratchPattern = "rusifikator-*"

// ExtractOptions configures the extraction process.
type ExtractOptions struct {
	OutputDir string      // Extraction root (default: fresh scratch directory)
	Logger    *log.Logger // Debug tracing, nil for silent
}

// Extractor unpacks a single archive. When it allocates the scratch
// directory itself, Close removes it again.
type Extractor struct {
	path    string
	opts    ExtractOptions
	reader  *zip.ReadCloser
	scratch string // Directory created by Extract, removed by Close
}

// NewExtractor creates a new extractor for the given archive file.
func NewExtractor(archivePath string, opts ExtractOptions) (*Extractor, error) {
	if _, err := os.Stat(archivePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, archivePath)
	}

	return &Extractor{
		path: archivePath,
		opts: opts,
	}, nil
}

// Open opens the archive and reads its central directory.
func (e *Extractor) Open() error {
	r, err := zip.OpenReader(e.path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	e.reader = r
	return nil
}

// Entries returns the number of entries in the opened archive.
func (e *Extractor) Entries() int {
	if e.reader == nil {
		return 0
	}
	return len(e.reader.File)
}

// Extract unpacks every entry and returns the extraction root.
func (e *Extractor) Extract() (string, error) {
	if e.reader == nil {
		return "", ErrNotOpened
	}

	outDir := e.opts.OutputDir
	if outDir == "" {
		dir, err := os.MkdirTemp("", ScratchPattern)
		if err != nil {
			return "", fmt.Errorf("failed to create scratch directory: %w", err)
		}
		e.scratch = dir
		outDir = dir
	} else if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e.debug("extracting", "archive", e.path, "dir", outDir, "entries", len(e.reader.File))

	for _, f := range e.reader.File {
		if err := e.extractFile(outDir, f); err != nil {
			return "", err
		}
	}

	return outDir, nil
}

func (e *Extractor) extractFile(outDir string, f *zip.File) error {
	outPath, err := entryPath(outDir, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(outPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", outPath, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(outPath), err)
	}

	e.debug("entry", "name", f.Name)

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return out.Close()
}

// entryPath joins name onto dir, refusing names that climb out of dir.
func entryPath(dir, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}

	p := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return p, nil
}

// ScratchDir returns the scratch directory created by Extract, or "" when
// there is none.
func (e *Extractor) ScratchDir() string {
	return e.scratch
}

// Close closes the archive and removes the scratch directory, if any.
func (e *Extractor) Close() error {
	var firstErr error
	if e.reader != nil {
		firstErr = e.reader.Close()
		e.reader = nil
	}
	if e.scratch != "" {
		e.debug("removing scratch directory", "dir", e.scratch)
		if err := os.RemoveAll(e.scratch); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to remove scratch directory: %w", err)
		}
		e.scratch = ""
	}
	return firstErr
}

func (e *Extractor) debug(msg string, keyvals ...any) {
	if e.opts.Logger != nil {
		e.opts.Logger.Debug(msg, keyvals...)
	}
}
