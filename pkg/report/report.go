// Package report provides a small severity-tagged message sink for CLI
// output. Color state lives on the injected writers rather than in
// package globals, so tests can capture plain output.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Reporter writes status lines with severity styling. Informational and
// success messages go to Out; warnings and errors go to Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer

	successf func(w io.Writer, format string, a ...interface{})
	warnf    func(w io.Writer, format string, a ...interface{})
	errorf   func(w io.Writer, format string, a ...interface{})
}

// New returns a Reporter writing to the given streams.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{
		Out:      out,
		Err:      errOut,
		successf: color.New(color.FgGreen).FprintfFunc(),
		warnf:    color.New(color.FgHiYellow, color.Bold).FprintfFunc(),
		errorf:   color.New(color.FgRed, color.Bold).FprintfFunc(),
	}
}

// Default returns a Reporter on stdout/stderr.
func Default() *Reporter {
	return New(os.Stdout, os.Stderr)
}

// Infof prints a plain status line.
func (r *Reporter) Infof(format string, a ...interface{}) {
	fmt.Fprintf(r.Out, format+"\n", a...)
}

// Successf prints a success line.
func (r *Reporter) Successf(format string, a ...interface{}) {
	r.successf(r.Out, format+"\n", a...)
}

// Warnf prints a warning line. Warnings report degraded behavior, not
// failure; the run continues.
func (r *Reporter) Warnf(format string, a ...interface{}) {
	r.warnf(r.Err, "WARNING: "+format+"\n", a...)
}

// Errorf prints a fatal error line.
func (r *Reporter) Errorf(format string, a ...interface{}) {
	r.errorf(r.Err, "Error: "+format+"\n", a...)
}
