//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements the diagnostic logging facility.
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
	}
}

// Errorf logs an error message about source and returns it as an
// error. The returned error holds the first line of the message.
func (l *Logger) Errorf(source string, format string, a ...interface{}) error {
	msg := l.printf(source, "", format, a...)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message about source.
func (l *Logger) Warningf(source string, format string, a ...interface{}) {
	l.printf(source, "warning: ", format, a...)
}

// Verbosef logs a message about source if verbose output is enabled.
func (l *Logger) Verbosef(source string, format string, a ...interface{}) {
	if l.verbose {
		l.printf(source, "", format, a...)
	}
}

func (l *Logger) printf(source, prefix, format string,
	a ...interface{}) string {

	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if len(source) > 0 {
		fmt.Fprintf(l.out, "%s: %s%s", source, prefix, msg)
	} else {
		fmt.Fprintf(l.out, "%s%s", prefix, msg)
	}
	return msg
}
