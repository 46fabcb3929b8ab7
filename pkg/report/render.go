package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mode selects how terminal errors are rendered.
type Mode int

const (
	// Terse renders terminal errors with Error().
	Terse Mode = iota
	// Verbose renders terminal errors with %+v.
	Verbose
)

const (
	nilText   = "<nil>"
	separator = " -> "
)

// Render linearizes the chain, outermost frame first, using the tag policy
// of the outermost frame's component.
func (r *Report) Render(mode Mode) string {
	if r == nil {
		return nilText
	}
	return r.RenderPolicy(mode, r.component.policy)
}

// RenderPolicy is Render with an explicit tag policy.
func (r *Report) RenderPolicy(mode Mode, p Policy) string {
	if r == nil {
		return nilText
	}

	var b strings.Builder
	var parent *Report
	for f := r; f != nil; f = f.next {
		if parent == nil || (p == TagTransitions && !f.component.Same(parent.component)) {
			b.WriteString(f.component.tag())
			b.WriteByte(' ')
		}
		b.WriteString(f.file)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.line))
		b.WriteString(separator)
		if f.next == nil {
			b.WriteString(terminal(f.err, mode))
		}
		parent = f
	}
	return b.String()
}

func terminal(err error, mode Mode) string {
	if err == nil {
		return nilText
	}
	if mode == Verbose {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error()
}

// Format implements fmt.Formatter: %v and %s render tersely, %+v verbosely,
// %q quotes the terse form.
func (r *Report) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, r.Render(Verbose))
			return
		}
		_, _ = io.WriteString(s, r.Render(Terse))
	case 's':
		_, _ = io.WriteString(s, r.Render(Terse))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Render(Terse))
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*report.Report=%s)", verb, r.Render(Terse))
	}
}

// UserString returns the terse rendering of err, or "" for nil.
func UserString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// DebugString returns the verbose rendering of err, or "" for nil.
// Errors that merely wrap a Report format it through their own Error method,
// which yields the terse form.
func DebugString(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}
