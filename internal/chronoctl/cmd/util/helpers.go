package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

const DefaultErrorExitCode = 1

var fatalErrHandler = fatal

// BehaviorOnFatal replaces the exit behavior of CheckErr; tests use it to
// capture the message instead of exiting.
func BehaviorOnFatal(f func(string, int)) {
	fatalErrHandler = f
}

// DefaultBehaviorOnFatal restores the exiting behavior of CheckErr.
func DefaultBehaviorOnFatal() {
	fatalErrHandler = fatal
}

func fatal(msg string, code int) {
	if len(msg) > 0 {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, color.RedString(msg))
	}
	os.Exit(code)
}

// CheckErr prints a user friendly message and exits with a non-zero code
// when err is not nil.
func CheckErr(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "error: ") {
		msg = "error: " + msg
	}
	fatalErrHandler(msg, DefaultErrorExitCode)
}
