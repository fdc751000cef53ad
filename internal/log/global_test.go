package log

import (
	"sync"
	"testing"
)

func resetGlobalLogger(t *testing.T) {
	t.Helper()
	original := globalLogger
	t.Cleanup(func() { globalLogger = original })
	globalLogger = nil
}

func TestSetDefaultLogger(t *testing.T) {
	resetGlobalLogger(t)

	custom := Development()
	SetDefaultLogger(custom)

	if DefaultLogger() != custom {
		t.Error("DefaultLogger did not return the logger set with SetDefaultLogger")
	}
}

func TestDefaultLoggerLazyInit(t *testing.T) {
	resetGlobalLogger(t)

	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("DefaultLogger returned nil when no default was set")
	}

	// Subsequent calls return the same instance
	if DefaultLogger() != logger {
		t.Error("DefaultLogger did not return the same logger on second call")
	}
}

func TestDefaultLoggerConcurrency(t *testing.T) {
	resetGlobalLogger(t)

	const goroutines = 50
	loggers := make([]*Logger, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			loggers[index] = DefaultLogger()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if loggers[i] != loggers[0] {
			t.Fatalf("logger at index %d differs from the first logger", i)
		}
	}
}
