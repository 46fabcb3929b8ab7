// Package reportlog emits report chains through zap and logr.
//
// Fields follow the same layout for both loggers:
//   - report.component: identity of the outermost frame ("name@version")
//   - report.location:  "file:line" of the outermost frame
//   - report.cause:     Error() of the terminal cause
//   - report.chain:     verbose rendering of the whole chain
//   - report.frames:    every frame, outermost first (zap only)
package reportlog

import (
	"errors"
	"strconv"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"erreport/pkg/report"
)

const (
	keyComponent = "report.component"
	keyLocation  = "report.location"
	keyCause     = "report.cause"
	keyChain     = "report.chain"
	keyFrames    = "report.frames"
)

// Field returns a zap field holding err's frame chain, or zap.Error(err)
// when err holds no report.
func Field(err error) zap.Field {
	var r *report.Report
	if !errors.As(err, &r) || r == nil {
		return zap.Error(err)
	}
	return zap.Object("report", chain{r})
}

// Zap logs err at error level with one structured field per report attribute.
// Plain errors are logged with zap.Error only.
func Zap(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil {
		return
	}

	var r *report.Report
	if !errors.As(err, &r) || r == nil {
		logger.Error(msg, zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String(keyComponent, r.Component().String()),
		zap.String(keyLocation, location(r.File(), r.Line())),
		zap.String(keyChain, r.Render(report.Verbose)),
		zap.Array(keyFrames, frames(r.Frames())),
	}
	if cause := r.Cause(); cause != nil {
		// Distinct name so the cause does not collide with zap's "error" key.
		fields = append(fields, zap.NamedError(keyCause, cause))
	}
	logger.Error(msg, fields...)
}

// Logr logs err through a logr sink with the same keys as Zap, minus frames.
func Logr(logger logr.Logger, err error, msg string) {
	if err == nil {
		return
	}
	logger.Error(err, msg, KeysAndValues(err)...)
}

// KeysAndValues returns logr-style key/value pairs describing err's report,
// or nil when err holds no report.
func KeysAndValues(err error) []any {
	var r *report.Report
	if !errors.As(err, &r) || r == nil {
		return nil
	}

	kv := []any{
		keyComponent, r.Component().String(),
		keyLocation, location(r.File(), r.Line()),
		keyChain, r.Render(report.Verbose),
	}
	if cause := r.Cause(); cause != nil {
		kv = append(kv, keyCause, cause.Error())
	}
	return kv
}

func location(file string, line int) string {
	return file + ":" + strconv.Itoa(line)
}

type chain struct{ r *report.Report }

func (c chain) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("component", c.r.Component().String())
	enc.AddString("message", c.r.Error())
	if cause := c.r.Cause(); cause != nil {
		enc.AddString("cause", cause.Error())
	}
	return enc.AddArray("frames", frames(c.r.Frames()))
}

type frames []report.Frame

func (fs frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		if err := enc.AppendObject(zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
			enc.AddString("component", f.Component)
			enc.AddString("file", f.File)
			enc.AddInt("line", f.Line)
			return nil
		})); err != nil {
			return err
		}
	}
	return nil
}
