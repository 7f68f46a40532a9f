package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	Error = log.New(io.Discard, "", 0)
	Warn  = log.New(io.Discard, "", 0)
	Info  = log.New(io.Discard, "", 0)
	Debug = log.New(io.Discard, "", 0)
	Trace = log.New(io.Discard, "", 0)
)

func ParseLogLevel(value string) (LogLevel, error) {
	switch strings.ToLower(value) {
	case "error":
		return ERROR, nil
	case "warn":
		return WARN, nil
	case "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	}
	return WARN, fmt.Errorf("invalid log level: %q", value)
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

// Initialize points every logger at or below logLevel to w and silences the rest.
func Initialize(logLevel LogLevel, w io.Writer) {
	writerFor := func(level LogLevel) io.Writer {
		if logLevel >= level {
			return w
		}
		return io.Discard
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	Error = log.New(writerFor(ERROR), "ERROR: ", flags)
	Warn = log.New(writerFor(WARN), "WARN:  ", flags)
	Info = log.New(writerFor(INFO), "INFO:  ", flags)
	Debug = log.New(writerFor(DEBUG), "DEBUG: ", flags)
	Trace = log.New(writerFor(TRACE), "TRACE: ", flags)
}
