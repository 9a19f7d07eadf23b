package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rusifikator/pkg/assemble"
	"github.com/rusifikator/pkg/jar"
	"github.com/rusifikator/pkg/langfile"
	"github.com/rusifikator/pkg/langmap"
	"github.com/rusifikator/pkg/locate"
)

// SortFromArchive unpacks a mod archive, sorts the chosen language's files
// and places the lang directories into the output tree. The scratch
// directory is removed on every return path.
func (c *Controller) SortFromArchive() (err error) {
	raw, err := c.in.Prompt("Enter the path to the mod file: ")
	if err != nil {
		return err
	}

	archivePath := CleanPath(raw)
	if archivePath == "" {
		return fmt.Errorf("%w: %q", jar.ErrArchiveNotFound, raw)
	}
	if abs, err := filepath.Abs(archivePath); err == nil {
		archivePath = abs
	}

	extractor, err := jar.NewExtractor(archivePath, jar.ExtractOptions{Logger: c.opts.Logger})
	if err != nil {
		return err
	}
	defer func() {
		hadScratch := extractor.ScratchDir() != ""
		if cerr := extractor.Close(); cerr != nil {
			c.debug("cleanup failed", "err", cerr)
			if err == nil {
				err = cerr
			}
			return
		}
		if hadScratch {
			c.out.Info("🧹 Scratch directory removed")
		}
	}()

	c.out.Success("Working with file: %s", archivePath)

	names := assemble.DeriveNames(archivePath, c.opts.InstanceMarker)
	c.out.Info("🔍 Instance: %s, Mod: %s", names.Instance, names.Mod)

	if err := extractor.Open(); err != nil {
		return err
	}
	scratch, err := extractor.Extract()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	c.out.Info("📂 Unpacked %d entries into scratch directory: %s", extractor.Entries(), scratch)

	mapping, err := langmap.Load(c.opts.MappingFile)
	if err != nil {
		return err
	}
	c.out.Blank()
	c.out.Success("Mapping loaded from %s:", c.opts.MappingFile)
	for _, code := range mapping.Codes() {
		c.out.Line("  %s -> %s", code, mapping[code])
	}

	c.out.Blank()
	code, err := c.in.Prompt("Enter the language code (e.g. ru): ")
	if err != nil {
		return err
	}
	fileName, err := mapping.Resolve(code)
	if err != nil {
		return err
	}
	c.out.Blank()
	c.out.Info("➡️ Looking for file: %s", fileName)

	found, err := locate.Find(scratch, fileName)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		c.out.Error("File %s not found in the archive!", fileName)
		return nil
	}

	for _, f := range found {
		c.out.Line("  - Found: %s", f)
	}
	for _, f := range found {
		c.out.Line("  - Processing: %s", f)
		if err := langfile.SortFile(f); err != nil {
			c.out.Error("Failed to sort %s: %v", f, err)
		}
	}

	asm := assemble.New(assemble.Options{
		OutputDir: c.opts.OutputDir,
		AssetsDir: c.opts.AssetsDir,
		KeepDir:   c.opts.KeepDir,
		Logger:    c.opts.Logger,
	})

	c.out.Blank()
	c.out.Info("💾 Saving to: %s", asm.Target(names))
	target, err := asm.Place(scratch, names)
	if errors.Is(err, assemble.ErrAssetsNotFound) {
		c.out.Error("Assets folder not found in the archive!")
		return nil
	} else if err != nil {
		return err
	}
	c.out.Success("Done! Files saved to %s", target)

	c.out.Info("🧹 Removing everything except %s/ from the assets folder...", asm.KeepDir())
	removed, err := asm.Prune(target)
	if err != nil {
		return err
	}
	c.out.Success("Removed %d extra items. Only the %s/ structure is left.", len(removed), asm.KeepDir())
	return nil
}

// SortStandalone sorts a single language file in place.
func (c *Controller) SortStandalone() error {
	raw, err := c.in.Prompt("Enter the path to the localization file (e.g. ru_ru.json): ")
	if err != nil {
		return err
	}

	path := CleanPath(raw)
	if _, err := os.Stat(path); path == "" || os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", langfile.ErrNotFound, path)
	}

	if err := langfile.CheckExtension(path, c.opts.Extension); err != nil {
		return err
	}

	c.out.Success("Working with file: %s", path)

	if err := langfile.SortFile(path); err != nil {
		return fmt.Errorf("failed to process file: %w", err)
	}

	c.out.Success("File sorted and saved!")
	return nil
}
