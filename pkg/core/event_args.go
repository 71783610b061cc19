package core

// EventArgs is the payload handed to listeners registered with Attach. It is
// built once per Raise and never modified.
type EventArgs struct {
	obj     *Component
	event   any
	itemRef any
}

// NewEventArgs bundles the raising component, the backend event that caused
// it (may be nil) and an optional item reference, such as a selected index.
func NewEventArgs(obj *Component, event any, itemRef any) EventArgs {
	return EventArgs{obj: obj, event: event, itemRef: itemRef}
}

// Obj returns the component that raised the event.
func (a EventArgs) Obj() *Component { return a.obj }

// Event returns the originating backend event, or nil.
func (a EventArgs) Event() any { return a.event }

// ItemRef returns the item reference, or nil.
func (a EventArgs) ItemRef() any { return a.itemRef }
