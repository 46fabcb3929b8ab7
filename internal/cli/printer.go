package cli

// This file wraps pterm for the CLI's human-facing output. Logs go through zap;
// everything the user is meant to read goes through a Printer.

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Printer writes styled output. In Quiet mode only errors and raw
// Printf output are written.
type Printer struct {
	Quiet  bool
	Writer io.Writer
}

// DefaultPrinter writes to stdout.
var DefaultPrinter = &Printer{}

func init() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}
}

func (p *Printer) out() io.Writer {
	if p.Writer != nil {
		return p.Writer
	}
	return os.Stdout
}

// Section prints a section heading.
func (p *Printer) Section(text string) {
	if p.Quiet {
		return
	}
	pterm.DefaultSection.WithWriter(p.out()).Println(text)
}

// Step prints an indented progress line.
func (p *Printer) Step(text string) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.out(), "  %s %s\n", Cyan("→"), text)
}

func (p *Printer) Info(text string) {
	if p.Quiet {
		return
	}
	pterm.Info.WithWriter(p.out()).Println(text)
}

func (p *Printer) Success(text string) {
	if p.Quiet {
		return
	}
	pterm.Success.WithWriter(p.out()).Println(text)
}

func (p *Printer) Warn(text string) {
	if p.Quiet {
		return
	}
	pterm.Warning.WithWriter(p.out()).Println(text)
}

// Error is printed even in quiet mode.
func (p *Printer) Error(text string) {
	pterm.Error.WithWriter(p.out()).Println(text)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out(), format, a...)
}

// TableBoxed renders data in a border with the first row as header.
func (p *Printer) TableBoxed(data [][]string) {
	if p.Quiet || len(data) == 0 {
		return
	}
	t := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(pterm.TableData(data)).WithWriter(p.out())
	if err := t.Render(); err != nil {
		p.Error(fmt.Sprintf("render table: %v", err))
	}
}

func Green(s string) string  { return pterm.Green(s) }
func Yellow(s string) string { return pterm.Yellow(s) }
func Red(s string) string    { return pterm.Red(s) }
func Cyan(s string) string   { return pterm.Cyan(s) }
