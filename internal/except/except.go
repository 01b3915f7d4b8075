// Package except holds helpers for invariants and for logging failures.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with the formatted message if pred is false. It is reserved for programming errors.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics if err is not nil.
func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const (
	logErrKey  = "err"
	logPathKey = "path"
)

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}

// LogPathAttr wraps a path into a loggable attribute, using its textual form.
func LogPathAttr(p fmt.Stringer) slog.Attr {
	return slog.String(logPathKey, p.String())
}
