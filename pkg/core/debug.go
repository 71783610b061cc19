package core

import (
	"log"
	"os"
)

// DebugMode controls whether state transitions are traced to stderr.
var DebugMode = false

var logger = log.New(os.Stderr, "widgetkit: ", log.LstdFlags)

// SetDebugMode enables or disables transition tracing.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

func debugf(format string, args ...any) {
	if DebugMode {
		logger.Printf(format, args...)
	}
}
