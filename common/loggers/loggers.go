package loggers

import (
	"io"
	"log"
	"os"

	jww "github.com/spf13/jwalterweatherman"
)

// Counts ERROR and WARN logs.
type LogCounters struct {
	ErrorCounter *jww.Counter
	WarnCounter  *jww.Counter
}

// Logger is the logger used by the taxonomy builder and its collaborators.
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Debug() *log.Logger
	Debugf(format string, v ...any)
	Debugln(v ...any)
	Info() *log.Logger
	Infof(format string, v ...any)
	Infoln(v ...any)
	Warn() *log.Logger
	Warnf(format string, v ...any)
	Warnln(v ...any)
	Error() *log.Logger
	Errorf(format string, v ...any)
	Errorln(v ...any)
	Out() io.Writer

	LogCounters() *LogCounters

	Reset()
}

type logger struct {
	*jww.Notepad

	// The writer that represents stdout.
	out io.Writer

	logCounters *LogCounters
}

func (l *logger) Printf(format string, v ...any) {
	l.FEEDBACK.Printf(format, v...)
}

func (l *logger) Println(v ...any) {
	l.FEEDBACK.Println(v...)
}

func (l *logger) Debug() *log.Logger {
	return l.DEBUG
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Debugln(v ...any) {
	l.DEBUG.Println(v...)
}

func (l *logger) Info() *log.Logger {
	return l.INFO
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Infoln(v ...any) {
	l.INFO.Println(v...)
}

func (l *logger) Warn() *log.Logger {
	return l.WARN
}

func (l *logger) Warnf(format string, v ...any) {
	l.WARN.Printf(format, v...)
}

func (l *logger) Warnln(v ...any) {
	l.WARN.Println(v...)
}

func (l *logger) Error() *log.Logger {
	return l.ERROR
}

func (l *logger) Errorf(format string, v ...any) {
	l.ERROR.Printf(format, v...)
}

func (l *logger) Errorln(v ...any) {
	l.ERROR.Println(v...)
}

func (l *logger) Out() io.Writer {
	return l.out
}

func (l *logger) LogCounters() *LogCounters {
	return l.logCounters
}

// Reset resets the logger's internal state.
func (l *logger) Reset() {
	l.logCounters.ErrorCounter.Reset()
	l.logCounters.WarnCounter.Reset()
}

// NewLogger creates a new Logger for the given thresholds
func NewLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) Logger {
	return newLogger(stdoutThreshold, logThreshold, outHandle, logHandle)
}

// NewDebugLogger is a convenience function to create a debug logger.
func NewDebugLogger() Logger {
	return NewBasicLogger(jww.LevelDebug)
}

// NewWarningLogger is a convenience function to create a warning logger.
func NewWarningLogger() Logger {
	return NewBasicLogger(jww.LevelWarn)
}

// NewInfoLogger is a convenience function to create a info logger.
func NewInfoLogger() Logger {
	return NewBasicLogger(jww.LevelInfo)
}

// NewErrorLogger is a convenience function to create an error logger.
func NewErrorLogger() Logger {
	return NewBasicLogger(jww.LevelError)
}

// NewBasicLogger creates a new basic logger writing to Stdout.
func NewBasicLogger(t jww.Threshold) Logger {
	return newLogger(t, jww.LevelError, os.Stdout, io.Discard)
}

// NewBasicLoggerForWriter creates a new basic logger writing to w.
func NewBasicLoggerForWriter(t jww.Threshold, w io.Writer) Logger {
	return newLogger(t, jww.LevelError, w, io.Discard)
}

// NewDefault creates a logger that prints warnings and above to Stdout.
func NewDefault() Logger {
	return NewWarningLogger()
}

func newLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) *logger {
	errorCounter := &jww.Counter{}
	warnCounter := &jww.Counter{}

	listeners := []jww.LogListener{
		jww.LogCounter(errorCounter, jww.LevelError),
		jww.LogCounter(warnCounter, jww.LevelWarn),
	}
	return &logger{
		Notepad: jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", log.Ldate|log.Ltime, listeners...),
		out:     outHandle,
		logCounters: &LogCounters{
			ErrorCounter: errorCounter,
			WarnCounter:  warnCounter,
		},
	}
}

// WarnCount returns the number of WARN and ERROR messages logged by l.
func WarnCount(l Logger) uint64 {
	if l == nil || l.LogCounters() == nil {
		return 0
	}
	return l.LogCounters().WarnCounter.Count()
}
