package common

// ExitCode is panicked by pretty.Exit and recovered at the process edge,
// where the message is shown and the process exits with Code.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) Error() string {
	return it.Message
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		printout(it.Message)
	}
}
