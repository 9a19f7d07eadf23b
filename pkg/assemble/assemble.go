// Package assemble moves the sorted assets of an unpacked mod into the
// output tree and strips everything but the language directories.
//
// The output layout is <output>/<instance>/mods/<mod>/assets/<namespace>/lang.
// Existing files are overwritten; there is no dry run.
package assemble

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	DefaultAssetsDir = "assets"
	DefaultKeepDir   = "lang"
	ModsDir          = "mods"
)

// Options configures the assembler.
type Options struct {
	OutputDir string      // Root of the output tree
	AssetsDir string      // Subtree copied out of the archive (default: assets)
	KeepDir   string      // Directory kept while pruning (default: lang)
	Logger    *log.Logger // Debug tracing, nil for silent
}

// Assembler places extracted assets into the output tree.
type Assembler struct {
	opts Options
}

// New creates an assembler, filling in defaults.
func New(opts Options) *Assembler {
	if opts.AssetsDir == "" {
		opts.AssetsDir = DefaultAssetsDir
	}
	if opts.KeepDir == "" {
		opts.KeepDir = DefaultKeepDir
	}
	return &Assembler{opts: opts}
}

// KeepDir returns the directory name preserved by Prune.
func (a *Assembler) KeepDir() string {
	return a.opts.KeepDir
}

// Target returns the directory the archive's assets are copied into.
func (a *Assembler) Target(n Names) string {
	return filepath.Join(a.opts.OutputDir, n.Instance, ModsDir, n.Mod, a.opts.AssetsDir)
}

// Place copies <extracted>/assets into the target directory, merging with
// whatever is already there. It returns the target directory.
func (a *Assembler) Place(extractedDir string, n Names) (string, error) {
	if err := os.MkdirAll(a.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	src := filepath.Join(extractedDir, a.opts.AssetsDir)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return "", ErrAssetsNotFound
	}

	target := a.Target(n)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("failed to create target directory: %w", err)
	}

	a.debug("copying assets", "from", src, "to", target)
	if err := copyTree(src, target); err != nil {
		return "", fmt.Errorf("failed to copy assets: %w", err)
	}
	return target, nil
}

// Prune removes everything inside each namespace directory of target that
// is not the keep directory. Plain files directly under target are left
// alone. It returns the removed paths.
func (a *Assembler) Prune(target string) ([]string, error) {
	namespaces, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	var removed []string
	for _, ns := range namespaces {
		if !ns.IsDir() {
			continue
		}

		nsPath := filepath.Join(target, ns.Name())
		items, err := os.ReadDir(nsPath)
		if err != nil {
			return removed, fmt.Errorf("failed to read %s: %w", nsPath, err)
		}

		for _, item := range items {
			if item.Name() == a.opts.KeepDir {
				continue
			}
			p := filepath.Join(nsPath, item.Name())
			a.debug("removing", "path", p)
			if err := os.RemoveAll(p); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", p, err)
			}
			removed = append(removed, p)
		}
	}
	return removed, nil
}

// Assemble runs Place followed by Prune.
func (a *Assembler) Assemble(extractedDir string, n Names) (string, error) {
	target, err := a.Place(extractedDir, n)
	if err != nil {
		return "", err
	}
	if _, err := a.Prune(target); err != nil {
		return target, err
	}
	return target, nil
}

// copyTree copies the regular files and directories under src into dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(out, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(path, out)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (a *Assembler) debug(msg string, keyvals ...any) {
	if a.opts.Logger != nil {
		a.opts.Logger.Debug(msg, keyvals...)
	}
}
