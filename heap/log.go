package heap

// logging functions

import (
	"github.com/intuitivelabs/slog"
)

const logName = "heapkit"

// internal constants
const (
	pDBG  = "DBG: " + logName + ": "
	pWARN = "WARNING: " + logName + ": "
	pERR  = "ERROR: " + logName + ": "
	pBUG  = "BUG: " + logName + ": "
)

// Log is the generic log
var Log slog.Log = slog.New(slog.LWARN, slog.LbackTraceS|slog.LlocInfoS,
	slog.LStdErr)

// WARNon() is a shorthand for checking if logging at LWARN level is enabled
func WARNon() bool {
	return Log.WARNon()
}

// WARN is a shorthand for logging a warning message.
func WARN(f string, a ...interface{}) {
	Log.LLog(slog.LWARN, 1, pWARN, f, a...)
}

// ERRon() is a shorthand for checking if logging at LERR level is enabled.
func ERRon() bool {
	return Log.ERRon()
}

// ERR is a shorthand for logging an error message.
func ERR(f string, a ...interface{}) {
	Log.LLog(slog.LERR, 1, pERR, f, a...)
}

// BUG is a shorthand for logging a bug message.
func BUG(f string, a ...interface{}) {
	Log.LLog(slog.LBUG, 1, pBUG, f, a...)
}
