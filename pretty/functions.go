package pretty

import (
	"fmt"

	"github.com/joshyorko/debsbom/common"
)

func Ok() error {
	common.Log("%s", theme.Success.Render("OK."))
	return nil
}

func Warning(format string, rest ...interface{}) {
	common.Log("%s", theme.Warning.Render("Warning: "+sprintf(format, rest...)))
}

func Note(format string, rest ...interface{}) {
	common.Log("%s", theme.Note.Render("Note: "+sprintf(format, rest...)))
}

// Exit panics a common.ExitCode; main recovers it and terminates the process.
func Exit(code int, format string, rest ...interface{}) {
	message := theme.Error.Render(sprintf(format, rest...))
	panic(common.ExitCode{
		Code:    code,
		Message: message,
	})
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}

func sprintf(format string, rest ...interface{}) string {
	if len(rest) == 0 {
		return format
	}
	return fmt.Sprintf(format, rest...)
}
