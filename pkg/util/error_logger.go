package util

import (
	"log"
)

// ErrorLogger may be used to report errors. Implementations may decide
// to log, mutate, redirect and discard them. This interface is used in
// places where errors are generated while another error is already
// being returned to the caller, meaning they cannot be returned
// directly.
type ErrorLogger interface {
	Log(err error)
}

type defaultErrorLogger struct{}

func (l defaultErrorLogger) Log(err error) {
	log.Print(err)
}

// DefaultErrorLogger writes errors using Go's standard logging package.
var DefaultErrorLogger ErrorLogger = defaultErrorLogger{}

type statusWrappingErrorLogger struct {
	base ErrorLogger
	msg  string
}

// NewStatusWrappingErrorLogger creates an ErrorLogger that prepends a
// fixed string to the message of every error, before forwarding it to
// a base ErrorLogger.
func NewStatusWrappingErrorLogger(base ErrorLogger, msg string) ErrorLogger {
	return &statusWrappingErrorLogger{
		base: base,
		msg:  msg,
	}
}

func (l *statusWrappingErrorLogger) Log(err error) {
	l.base.Log(StatusWrap(err, l.msg))
}
