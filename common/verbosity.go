package common

type Verbosity uint8

const (
	VerbositySilent Verbosity = iota
	VerbosityNormal
	VerbosityDebug
	VerbosityTrace
)

var verbosity = VerbosityNormal

func DefineVerbosity(silent, debug, trace bool) {
	switch {
	case silent:
		verbosity = VerbositySilent
	case trace:
		verbosity = VerbosityTrace
	case debug:
		verbosity = VerbosityDebug
	default:
		verbosity = VerbosityNormal
	}
}

func CurrentVerbosity() Verbosity {
	return verbosity
}

func Silent() bool {
	return verbosity == VerbositySilent
}

func DebugFlag() bool {
	return verbosity >= VerbosityDebug
}

func TraceFlag() bool {
	return verbosity == VerbosityTrace
}

func (it Verbosity) String() string {
	switch it {
	case VerbositySilent:
		return "silent"
	case VerbosityDebug:
		return "debug"
	case VerbosityTrace:
		return "trace"
	default:
		return "normal"
	}
}
