package report

import "runtime"

// unknownFile is recorded when the runtime cannot resolve the call site.
const unknownFile = "unknown"

// Wrap annotates err with the caller's location and c's identity.
// It returns nil when err is nil. The returned error owns err; callers
// should not keep using err as an independent value.
//
//go:noinline
func (c Component) Wrap(err error) error {
	return c.wrap(2, err)
}

// WrapSkip is Wrap for helpers: skip is the number of extra frames between
// the helper's caller and WrapSkip. WrapSkip(0, err) is Wrap(err).
//
//go:noinline
func (c Component) WrapSkip(skip int, err error) error {
	return c.wrap(skip+2, err)
}

// WrapAt annotates err with an explicit call site instead of the captured one.
func (c Component) WrapAt(file string, line int, err error) error {
	if err == nil {
		return nil
	}
	return newReport(c, file, line, err)
}

// Value wraps the error half of a (value, error) result. On success v is
// returned unchanged and no frame is created; on failure the zero value is
// returned with the new frame.
//
//go:noinline
func Value[T any](c Component, v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, c.wrap(2, err)
}

// wrap records the frame skip levels above itself.
func (c Component) wrap(skip int, err error) error {
	if err == nil {
		return nil
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = unknownFile, 0
	}
	return newReport(c, file, line, err)
}
