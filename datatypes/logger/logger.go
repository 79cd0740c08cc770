// Package logger implements the datatype library log front
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/KaiOnGitHub/galaxy/datatypes/conf"
	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
)

var Log *Logger

type Logger struct {
	l *log.Logger
}

// Initialize sets up package var Log for use in Info(), Error(), Debug()
// and Warning()
func Initialize() {
	Log = New()
}

// New configures and returns a new logger. Logs go to a file under
// conf.PATH_LOGS when set, stderr otherwise.
func New() *Logger {
	var out io.Writer = os.Stderr
	if conf.PATH_LOGS != "" {
		if fh, err := os.OpenFile(filepath.Join(conf.PATH_LOGS, "datatypes.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			out = fh
		}
	}
	lvl, err := log.ParseLevel(conf.LOG_LEVEL)
	if err != nil {
		lvl = log.InfoLevel
	}
	if conf.DEBUG {
		lvl = log.DebugLevel
	}
	return &Logger{l: log.NewWithOptions(out, log.Options{
		Level:           lvl,
		Prefix:          "datatypes",
		ReportTimestamp: true,
	})}
}

// Info is a short cut function that uses the package initialized logger
func Info(format string, a ...interface{}) {
	get().l.Infof(format, a...)
}

// Error is a short cut function that uses the package initialized logger
func Error(format string, a ...interface{}) {
	get().l.Errorf(format, a...)
}

// Debug is a short cut function that uses the package initialized logger
func Debug(format string, a ...interface{}) {
	get().l.Debugf(format, a...)
}

// Warning is a short cut function that uses the package initialized logger
func Warning(format string, a ...interface{}) {
	get().l.Warnf(format, a...)
}

// Dump writes a spew dump of v to the debug log when conf.DEBUG is set
func Dump(v interface{}) {
	if conf.DEBUG {
		get().l.Debug(spew.Sdump(v))
	}
}

func get() *Logger {
	if Log == nil {
		Initialize()
	}
	return Log
}
