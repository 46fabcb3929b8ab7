package report

import "errors"

// Report is one frame of an annotated error chain: the component and call
// site that wrapped a failure, plus the failure itself.
//
// The cause is either another frame (next) or a terminal error (err), never both.
type Report struct {
	component Component
	file      string
	line      int
	next      *Report
	err       error
}

// Frame is a flattened view of one Report, used by log adapters.
type Frame struct {
	Component string
	File      string
	Line      int
}

func newReport(c Component, file string, line int, cause error) *Report {
	r := &Report{component: c, file: c.relative(file), line: line}
	// Only a direct *Report extends the chain; anything wrapping one is terminal.
	if inner, ok := cause.(*Report); ok && inner != nil {
		r.next = inner
	} else {
		r.err = cause
	}
	return r
}

// Error renders the chain in terse mode.
func (r *Report) Error() string {
	return r.Render(Terse)
}

// Unwrap returns the immediate cause: the next frame, or the terminal error.
func (r *Report) Unwrap() error {
	if r == nil {
		return nil
	}
	if r.next != nil {
		return r.next
	}
	return r.err
}

// Cause returns the first cause in the chain that is not a Report.
// It skips every annotation frame and never copies the underlying error.
func (r *Report) Cause() error {
	if r == nil {
		return nil
	}
	f := r
	for f.next != nil {
		f = f.next
	}
	return f.err
}

// Boundary returns the first inner frame owned by a different component
// than r, or nil when the whole chain belongs to r's component.
func (r *Report) Boundary() *Report {
	if r == nil {
		return nil
	}
	for f := r.next; f != nil; f = f.next {
		if !f.component.Same(r.component) {
			return f
		}
	}
	return nil
}

// Component returns the identity of the component that created this frame.
func (r *Report) Component() Component {
	if r == nil {
		return Component{}
	}
	return r.component
}

// File returns the wrap site's file, relative to the component root.
func (r *Report) File() string {
	if r == nil {
		return ""
	}
	return r.file
}

// Line returns the wrap site's line.
func (r *Report) Line() int {
	if r == nil {
		return 0
	}
	return r.line
}

// Next returns the inner frame, or nil when the cause is terminal.
func (r *Report) Next() *Report {
	if r == nil {
		return nil
	}
	return r.next
}

// Depth returns the number of frames in the chain.
func (r *Report) Depth() int {
	n := 0
	for f := r; f != nil; f = f.next {
		n++
	}
	return n
}

// Frames returns the chain's frames from outermost to innermost.
func (r *Report) Frames() []Frame {
	frames := make([]Frame, 0, r.Depth())
	for f := r; f != nil; f = f.next {
		frames = append(frames, Frame{Component: f.component.String(), File: f.file, Line: f.line})
	}
	return frames
}

// Cause returns the terminal cause of the first Report in err's chain,
// or err itself when it holds no Report.
func Cause(err error) error {
	var r *Report
	if errors.As(err, &r) && r != nil {
		return r.Cause()
	}
	return err
}

// IsReport reports whether err's chain holds a Report.
func IsReport(err error) bool {
	if err == nil {
		return false
	}
	var r *Report
	return errors.As(err, &r)
}
