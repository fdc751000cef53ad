package log

import (
	"sync"
)

var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// SetDefaultLogger sets the process-wide default logger. The CLI calls this
// once per invocation after flags are parsed.
func SetDefaultLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// DefaultLogger returns the process-wide default logger, lazily creating one
// with standard defaults when nothing was configured.
func DefaultLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = Default()
	}
	return globalLogger
}
