// Package log is the logger shared by the seqgrid and arithloop programs.
// Logs go to stderr, and nothing is logged unless something fails or the debug log is enabled.
package log

import (
	"io"
	"log"
	"os"
)

var (
	std             = log.New(os.Stderr, "", log.LstdFlags)
	debugLogEnabled bool
)

// EnableDebugLog can enable or disable debug logs.
func EnableDebugLog(enable bool) {
	debugLogEnabled = enable
}

// DebugLogEnabled returns true if the debug log is enabled.
func DebugLogEnabled() bool {
	return debugLogEnabled
}

// SetOutput changes the destination of the logs.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetProgram prefixes every log line with the program name.
func SetProgram(name string) {
	if name == "" {
		std.SetPrefix("")
		return
	}
	std.SetPrefix(name + ": ")
}

// Debugf is like Printf, but printed only when the debug log is enabled.
func Debugf(format string, v ...interface{}) {
	if debugLogEnabled {
		std.Printf("[debug] "+format, v...)
	}
}

// Printf logs the formatted message.
func Printf(format string, v ...interface{}) {
	std.Printf(format, v...)
}

// Fatal logs the values and exits with 1.
func Fatal(v ...interface{}) {
	std.Fatal(v...)
}

// Fatalf logs the formatted message and exits with 1.
func Fatalf(format string, v ...interface{}) {
	std.Fatalf(format, v...)
}
