package logging

import (
	"sync"
)

var (
	globalLogger *Logger
	mu           sync.RWMutex
)

// InitLogger builds the process-wide logger from config, replacing any previous one
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger != nil {
		globalLogger.Close()
	}
	globalLogger = logger
	return nil
}

// GetGlobalLogger returns the process-wide logger.
// Before InitLogger runs it returns a stdout-only logger at info level.
func GetGlobalLogger() *Logger {
	mu.RLock()
	logger := globalLogger
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewLogger(&LogConfig{Level: LevelInfo})
	}
	return globalLogger
}
