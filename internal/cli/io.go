package cli

import (
	"fmt"
	"io"
)

// IO is the output side of a command. Everything a command prints goes
// through it so that warnings land on stderr in a predictable place.
//
// A warning is shown twice: right before the first line of regular output,
// and again by Finish. Long script output piped through head or tail still
// shows it.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	shown    bool // warnings already printed ahead of output
}

// NewIO returns an IO writing regular output to out and diagnostics to errOut.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn queues a non-fatal problem, rendered as "warning: <where>: <detail>".
// A command that warned exits 1 even if it otherwise succeeded.
func (o *IO) Warn(where, detail string) {
	o.warnings = append(o.warnings, where+": "+detail)
}

// Println writes a line to the regular output.
func (o *IO) Println(a ...any) {
	o.beforeOutput()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted text to the regular output.
func (o *IO) Printf(format string, a ...any) {
	o.beforeOutput()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to the diagnostic output.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish prints queued warnings (again, if output followed them) and
// returns the exit code: 1 if anything was queued, else 0.
func (o *IO) Finish() int {
	if len(o.warnings) == 0 {
		return 0
	}

	o.shown = true
	o.printWarnings()

	return 1
}

func (o *IO) beforeOutput() {
	if o.shown || len(o.warnings) == 0 {
		return
	}

	o.shown = true
	o.printWarnings()
}

func (o *IO) printWarnings() {
	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}
