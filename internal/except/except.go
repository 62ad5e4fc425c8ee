// Package except contains assertion and error logging helpers.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with the formatted message if pred is false. It guards programmer errors, never user
// input.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
