// Package widgets provides the concrete widgets built on the interaction
// core: Button, Checkbox, RadioButton and RadioGroup, Scrollbar,
// ProgressBar, Heading, and the TodoList composite.
//
// # Construction
//
// Every widget is created in a window and styled from [theme.Current] at
// construction time:
//
//	win, _ := core.NewWindow(scene)
//	title, _ := widgets.NewHeading(win)
//	title.SetText("Button Demo")
//	title.Move(10, 20)
//
//	b, _ := widgets.NewButton(win)
//	b.Move(12, 50)
//	b.OnClick(func(core.EventArgs) { title.SetText("Button Clicked!") })
//
// # Behavior
//
// Widgets react to the state machine through their hooks. Colors change on
// every state entry; clicks are raised on a release that follows a press.
// Key releases are broadcast to the whole window, so widgets that react to
// keys only act while the pointer is over them.
package widgets
