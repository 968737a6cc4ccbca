package root

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

const usageHint = "Run 'greet --help' for usage."

type exitCoder interface {
	ExitCode() int
}

// ArgumentError reports command-line input greet does not recognize.
type ArgumentError struct {
	Msg string
}

func (e ArgumentError) Error() string { return e.Msg }
func (e ArgumentError) ExitCode() int { return exitCodeUsage }

// Run executes greet and returns the process exit code. Failures are
// reported as a single line on stderr; usage and stack traces are never
// printed.
func Run(args []string, stdout, stderr io.Writer) int {
	err := Execute(args, stdout, stderr)
	if err == nil {
		return exitCodeSuccess
	}
	reportError(stderr, err)
	return exitCode(err)
}

func reportError(w io.Writer, err error) {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	red := color.New(color.FgRed, color.Bold)
	if !isTerminal(w) {
		red.DisableColor()
	}
	_, _ = red.Fprintln(w, msg)
	var argErr ArgumentError
	if errors.As(err, &argErr) {
		_, _ = io.WriteString(w, usageHint+"\n")
	}
}

// isTerminal reports whether w is a terminal. color only inspects stdout, so
// stderr needs its own check.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func exitCode(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return exitCodeFailure
}
