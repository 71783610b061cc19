package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestKitErrorString(t *testing.T) {
	err := &KitError{
		Op:   "core.Window.dispatch",
		Kind: KindAccessibility,
		Err:  &AccessibilityError{Component: "*widgets.Button"},
	}
	got := err.Error()
	if !strings.Contains(got, "core.Window.dispatch [accessibility]") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestKitErrorUnwrap(t *testing.T) {
	inner := &AccessibilityError{Component: "*widgets.Heading", Op: "Update"}
	err := &KitError{Op: "test", Kind: KindAccessibility, Err: inner}

	var target *AccessibilityError
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to find the AccessibilityError")
	}
	if target.Component != "*widgets.Heading" {
		t.Errorf("Component = %q, want %q", target.Component, "*widgets.Heading")
	}
	if !stderrors.Is(err, ErrNoRole) {
		t.Error("expected errors.Is(err, ErrNoRole) through the wrapper")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindBackend, "backend"},
		{KindConfig, "config"},
		{KindAccessibility, "accessibility"},
		{KindCapability, "capability"},
		{KindPanic, "panic"},
		{KindRender, "render"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAccessibilityErrorString(t *testing.T) {
	err := &AccessibilityError{Component: "*core.Component", Op: "Update"}
	want := "Update: *core.Component: aria role not implemented"
	if got := err.Error(); got != want {
		t.Errorf("AccessibilityError.Error() = %q, want %q", got, want)
	}

	bare := &AccessibilityError{Component: "*core.Component"}
	if got := bare.Error(); got != "*core.Component: aria role not implemented" {
		t.Errorf("AccessibilityError.Error() = %q", got)
	}
}

func TestCapabilityErrorString(t *testing.T) {
	err := &CapabilityError{Widget: "*widgets.Button", Missing: "hooks"}
	want := "*widgets.Button: missing hooks"
	if got := err.Error(); got != want {
		t.Errorf("CapabilityError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "rendering.Scene.Dispatch"
	if got, want := err.Error(), "panic in rendering.Scene.Dispatch: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorLocation(t *testing.T) {
	tests := []struct {
		op, node string
		want     string
	}{
		{"rendering.Scene.pointerup", "n1", "panic in rendering.Scene.pointerup (node n1): boom"},
		{"", "n1", "panic in node n1: boom"},
		{"theme.Load", "", "panic in theme.Load: boom"},
		{"", "", "panic: boom"},
	}
	for _, tt := range tests {
		err := &PanicError{Op: tt.op, Node: tt.node, Value: "boom"}
		if got := err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	var captured *KitError
	handler := &testHandler{
		onError: func(err *KitError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&KitError{
		Op:   "test.op",
		Kind: KindBackend,
		Err:  stderrors.New("boom"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{onError: func(*KitError) { called = true }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil errors should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverNode(t *testing.T) {
	var captured *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer RecoverNode("rendering.Scene.keyup", "node-7")
		panic("handler failed")
	}()

	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if captured.Op != "rendering.Scene.keyup" || captured.Node != "node-7" {
		t.Errorf("captured %q on %q", captured.Op, captured.Node)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
	if !strings.Contains(captured.StackTrace, "TestRecoverNode") {
		t.Errorf("stack should include the panicking function:\n%s", captured.StackTrace)
	}
	if strings.Contains(captured.StackTrace, "runtime.gopanic") {
		t.Errorf("stack should skip runtime frames:\n%s", captured.StackTrace)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&KitError{Op: "core.Component.Update", Kind: KindAccessibility, Err: ErrNoRole})
	if got := buf.String(); got != "[widgetkit error] core.Component.Update: aria role not implemented\n" {
		t.Errorf("HandleError wrote %q", got)
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "op", Value: 42, StackTrace: "frame"})
	got := buf.String()
	if !strings.Contains(got, "[widgetkit panic] op: 42") || !strings.Contains(got, "Stack trace:\nframe") {
		t.Errorf("verbose HandlePanic wrote %q", got)
	}

	buf.Reset()
	h.Verbose = false
	h.HandlePanic(&PanicError{Op: "rendering.Scene.pointerdown", Node: "n1", Value: "boom"})
	if got := buf.String(); got != "[widgetkit panic] rendering.Scene.pointerdown (node n1): boom\n" {
		t.Errorf("HandlePanic wrote %q", got)
	}
}

type testHandler struct {
	onError func(*KitError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *KitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
