package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Leveled logger shared by the API server and the seeder.
// Init(level) picks the threshold; Fatalf always logs and exits.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

var (
	mu     sync.RWMutex
	out    io.Writer   = os.Stdout
	logger *log.Logger = log.New(out, "", 0)
	level  Level       = LevelInfo
	exit               = os.Exit
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown values fall back to info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(l)
}

// ParseLevel maps a level name to a Level.
func ParseLevel(l string) Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

// SetOutput redirects every subsequent log line to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = log.New(w, "", 0)
}

// Writer returns the current destination, used to point gin's access log at the same sink.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

func logf(l Level, format string, v ...interface{}) {
	mu.RLock()
	lg, enabled := logger, l >= level
	mu.RUnlock()
	if !enabled {
		return
	}
	hdr := fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(levelNames[l]))
	lg.Printf(hdr+format, v...)
}

func Debugf(format string, v ...interface{}) { logf(LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { logf(LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { logf(LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { logf(LevelError, format, v...) }

func Fatalf(format string, v ...interface{}) {
	mu.RLock()
	lg := logger
	mu.RUnlock()
	lg.Printf(fmt.Sprintf("%s [FATAL] ", time.Now().Format(time.RFC3339))+format, v...)
	exit(1)
}

func Info(v string) { Infof("%s", v) }
func Warn(v string) { Warnf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return levelNames[level]
}
