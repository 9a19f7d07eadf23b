package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 50

// Printer writes user-facing messages. Colors are only emitted when the
// writer is a terminal.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		success: r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

func (p *Printer) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("=", ruleWidth))
}

func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.title.Render(text))
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render("✅ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.failure.Render("❌ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.w, p.info.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
