// Package menu runs the interactive loop: pick an operation, answer its
// prompts, see the result, repeat. Operation failures are reported and the
// loop carries on; only choice 0 or the end of input stops it.
package menu

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

const (
	ChoiceArchive    = "1"
	ChoiceStandalone = "2"
	ChoiceExit       = "0"
)

// Options carries the settings the operations run with.
type Options struct {
	MappingFile    string      // Language mapping file
	OutputDir      string      // Root of the output tree
	InstanceMarker string      // Directory the instance name is found under
	AssetsDir      string      // Subtree copied out of the archive
	KeepDir        string      // Directory kept while pruning
	Extension      string      // Extension required in standalone mode
	Logger         *log.Logger // Debug tracing, nil for silent
}

// Controller drives the menu loop.
type Controller struct {
	in   Input
	out  *Printer
	opts Options
}

// New creates a controller reading answers from in and writing to out.
func New(in Input, out io.Writer, opts Options) *Controller {
	return &Controller{
		in:   in,
		out:  NewPrinter(out),
		opts: opts,
	}
}

// Run shows the menu until the user exits, input runs out or ctx is done.
// It only fails when reading input fails.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			c.farewell()
			return nil
		}

		c.showMenu()
		choice, err := c.in.Prompt("Choose an option: ")
		if errors.Is(err, ErrNoInput) {
			c.farewell()
			return nil
		} else if err != nil {
			return err
		}

		switch choice {
		case ChoiceArchive:
			err = c.SortFromArchive()
		case ChoiceStandalone:
			err = c.SortStandalone()
		case ChoiceExit:
			c.farewell()
			return nil
		default:
			c.out.Error("Invalid choice. Please enter 1, 2 or 0.")
		}

		if errors.Is(err, ErrNoInput) {
			c.farewell()
			return nil
		} else if err != nil {
			c.debug("operation failed", "choice", choice, "err", err)
			c.out.Error("%v", err)
		}

		c.out.Blank()
		c.out.Rule()
	}
}

func (c *Controller) showMenu() {
	c.out.Blank()
	c.out.Rule()
	c.out.Title("Welcome to Rusifikator!")
	c.out.Rule()
	c.out.Line("1) Sort the JSON localization inside a mod archive")
	c.out.Line("2) Sort an existing JSON localization file")
	c.out.Line("0) Exit")
	c.out.Rule()
}

func (c *Controller) farewell() {
	c.out.Blank()
	c.out.Line("Goodbye! Thanks for using Rusifikator!")
}

func (c *Controller) debug(msg string, keyvals ...any) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debug(msg, keyvals...)
	}
}
