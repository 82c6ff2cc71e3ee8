package common

import (
	"fmt"
	"time"
)

type (
	Duration time.Duration

	stopwatch struct {
		message string
		started time.Time
	}
)

func (it Duration) String() string {
	return fmt.Sprintf("%5.3f", time.Duration(it).Seconds())
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	message := form
	if len(details) > 0 {
		message = fmt.Sprintf(form, details...)
	}
	return &stopwatch{
		message: message,
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}
