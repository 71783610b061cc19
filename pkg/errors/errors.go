// Package errors provides structured error handling for widgetkit.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBackend indicates a failure reported by the rendering backend.
	KindBackend
	// KindConfig indicates a configuration or theme loading error.
	KindConfig
	// KindAccessibility indicates a component pushed a visual update without a role.
	KindAccessibility
	// KindCapability indicates a widget was constructed without its required hooks.
	KindCapability
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindRender indicates a rasterization or snapshot error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindBackend:
		return "backend"
	case KindConfig:
		return "config"
	case KindAccessibility:
		return "accessibility"
	case KindCapability:
		return "capability"
	case KindPanic:
		return "panic"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// ErrNoRole is matched by every AccessibilityError via errors.Is.
var ErrNoRole = stderrors.New("aria role not implemented")

// KitError represents a structured error raised while dispatching an event
// or painting a component.
type KitError struct {
	// Op is the operation that failed (e.g., "core.Window.dispatch").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KitError) Unwrap() error {
	return e.Err
}

// AccessibilityError is returned when a component is asked to push a visual
// update before an accessibility role was assigned.
type AccessibilityError struct {
	// Component describes the offending component (its Go type name).
	Component string
	// Op is the operation that was refused.
	Op string
}

func (e *AccessibilityError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Component, ErrNoRole)
	}
	return fmt.Sprintf("%s: %v", e.Component, ErrNoRole)
}

// Is reports ErrNoRole as the sentinel for every accessibility error.
func (e *AccessibilityError) Is(target error) bool {
	return target == ErrNoRole
}

// CapabilityError is returned when a widget is initialized without the
// values it needs to take part in the state machine.
type CapabilityError struct {
	// Widget is the type name of the widget being initialized.
	Widget string
	// Missing names the absent capability (e.g., "hooks", "window").
	Missing string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Widget, e.Missing)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "rendering.Scene.pointerdown").
	Op string
	// Node is the ID of the scene node whose handler panicked, if any.
	Node string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if loc := e.location(); loc != "" {
		return fmt.Sprintf("panic in %s: %v", loc, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// location joins Op and Node as "op (node id)".
func (e *PanicError) location() string {
	switch {
	case e.Op != "" && e.Node != "":
		return fmt.Sprintf("%s (node %s)", e.Op, e.Node)
	case e.Node != "":
		return "node " + e.Node
	}
	return e.Op
}

// ErrorHandler receives errors reported by widgetkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *KitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
