package pretty

import (
	"os"

	"github.com/joshyorko/debsbom/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
)

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	if os.Getenv("TERM") == "" {
		Colorless = true
	}

	Interactive = stdin && stdout && stderr
	// status lines go to stderr, so that is the stream that decides colors
	visualOutput := stderr && !Colorless
	Disabled = !visualOutput

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, !Disabled)
	theme = newStatusTheme(os.Stderr, visualOutput)
}
