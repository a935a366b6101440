package logger

import (
	"fmt"
	"os"
	"time"
)

type LogWriter struct {
	Level LogLevel
}

type LogLevel string

const (
	InfoLevel  LogLevel = "info"
	DebugLevel LogLevel = "debug"
)

// NewLogWriter returns a writer honoring the PMS_LOG_LEVEL environment
// variable. At debug level every message is framed with a timestamp,
// otherwise output passes through unchanged.
func NewLogWriter() *LogWriter {
	level := os.Getenv("PMS_LOG_LEVEL")
	if level == "" {
		level = string(InfoLevel)
	}
	return &LogWriter{Level: LogLevel(level)}
}

func (lw *LogWriter) Write(p []byte) (n int, err error) {
	if lw.Level == DebugLevel {
		fmt.Fprintf(os.Stdout, "[DEBUG %s] %s", time.Now().Format(time.RFC3339), string(p))
		return len(p), nil
	}

	fmt.Fprint(os.Stdout, string(p))
	return len(p), nil
}
