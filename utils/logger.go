package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// InfoLogger records request traffic and lifecycle events
	InfoLogger *log.Logger
	// ErrorLogger records failures, including swallowed recovery errors
	ErrorLogger *log.Logger
	// DebugLogger records verbose detail such as gateway payloads
	DebugLogger *log.Logger
)

// InitLogger opens the dated log files and wires the package loggers. Logs
// land in rti-logs/ next to the binary unless LOG_DIR points elsewhere.
func InitLogger() error {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "rti-logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %v", dir, err)
	}

	var err error
	if InfoLogger, err = newFileLogger(dir, "info"); err != nil {
		return err
	}
	if ErrorLogger, err = newFileLogger(dir, "error"); err != nil {
		return err
	}
	if DebugLogger, err = newFileLogger(dir, "debug"); err != nil {
		return err
	}
	return nil
}

func newFileLogger(dir, level string) (*log.Logger, error) {
	name := fmt.Sprintf("rti-%s-%s.log", level, time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s log file: %v", level, err)
	}
	prefix := fmt.Sprintf("[%s] ", level)
	return log.New(file, prefix, log.Ldate|log.Ltime|log.Lshortfile), nil
}

// The Log* helpers are nil-guarded so packages under test can log without
// calling InitLogger first.

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Printf(format, v...)
	}
}
