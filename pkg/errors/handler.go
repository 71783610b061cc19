package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything passed to Report and ReportPanic.
	// Replace it with SetHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err and hands it to the global handler. Widgets use it for
// failures inside event callbacks, where there is no caller to return to.
func Report(err *KitError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler().HandleError(err)
}

// ReportPanic stamps err and hands it to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler().HandlePanic(err)
}

// Recover reports a panic in the deferring function under op and stops it.
//
//	defer errors.Recover("theme.Load")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// RecoverNode is Recover for scene event handlers: the report also names
// the node whose handler panicked, so one bad widget callback can be traced
// without stopping dispatch to the others.
//
//	defer errors.RecoverNode("rendering.Scene.pointerdown", node.ID())
func RecoverNode(op, node string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Node: node, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack returns the calling goroutine's stack, one "function\n\tfile:line"
// entry per frame. Frames of the runtime's panic machinery are dropped so a
// trace taken during recovery starts at the code that panicked.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, "runtime.") && !isRecoverHelper(f.Function) {
			sb.WriteString(f.Function)
			sb.WriteString("\n\t")
			sb.WriteString(f.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(f.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func isRecoverHelper(fn string) bool {
	return strings.HasSuffix(fn, "/errors.Recover") || strings.HasSuffix(fn, "/errors.RecoverNode")
}
