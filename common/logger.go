package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	logMu    sync.Mutex
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
	LogHides []string
)

// RedirectOutput replaces the writers behind Stdout and the log functions.
// The returned function restores the previous writers.
func RedirectOutput(out, err io.Writer) func() {
	logMu.Lock()
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, err
	logMu.Unlock()
	return func() {
		logMu.Lock()
		stdout, stderr = oldOut, oldErr
		logMu.Unlock()
	}
}

func AcceptableOutput(message string) bool {
	for _, fragment := range LogHides {
		if len(fragment) > 0 && strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func printout(message string) {
	if !AcceptableOutput(message) {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()

	var stamp string
	if TraceFlag() {
		stamp = time.Now().Format("02.150405.000 ")
	}
	fmt.Fprintf(stderr, "%s%s\n", stamp, message)
}

func Fatal(context string, err error) {
	if err != nil {
		printout(fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	if AcceptableOutput(message) {
		logMu.Lock()
		defer logMu.Unlock()
		fmt.Fprint(stdout, message)
	}
}

// StdoutWriter returns the writer currently used by Stdout.
func StdoutWriter() io.Writer {
	logMu.Lock()
	defer logMu.Unlock()
	return stdout
}

// WaitLogs flushes standard streams before the process exits.
func WaitLogs() {
	logMu.Lock()
	defer logMu.Unlock()
	if file, ok := stdout.(*os.File); ok {
		file.Sync()
	}
	if file, ok := stderr.(*os.File); ok {
		file.Sync()
	}
}
