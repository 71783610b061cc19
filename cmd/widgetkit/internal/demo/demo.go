// Package demo builds the sample scenes shown by the widgetkit command.
package demo

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

// App is a built demo: a scene, its window and the widgets placed in it.
type App struct {
	Name   string
	Scene  *rendering.Scene
	Window *core.Window
	// Widgets holds the top-level widgets by name, for scripted interaction.
	Widgets map[string]any

	now    func() time.Time
	timers []timer
}

type timer struct {
	due time.Time
	fn  func()
}

// ClickFeedback is how long the button demo shows its clicked text.
const ClickFeedback = time.Second

// After schedules fn to run from the first RunDue call at or after d from
// now. Callbacks never run on their own; the front end calls RunDue from its
// event loop so they stay on the dispatch goroutine.
func (a *App) After(d time.Duration, fn func()) {
	a.timers = append(a.timers, timer{due: a.now().Add(d), fn: fn})
}

// RunDue runs the callbacks due at now in scheduling order and returns how
// many ran.
func (a *App) RunDue(now time.Time) int {
	var due []timer
	pending := a.timers[:0]
	for _, t := range a.timers {
		if t.due.After(now) {
			pending = append(pending, t)
		} else {
			due = append(due, t)
		}
	}
	a.timers = pending
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of scheduled callbacks that have not run.
func (a *App) Pending() int {
	return len(a.timers)
}

type builder func(app *App) error

var builders = map[string]builder{
	"button":  buildButton,
	"todo":    buildTodo,
	"widgets": buildGallery,
}

// Names returns the available demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the named demo on a width x height scene.
func Build(name string, width, height float64) (*App, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %v)", name, Names())
	}
	scene := rendering.NewScene(width, height)
	win, err := core.NewWindow(scene)
	if err != nil {
		return nil, err
	}
	app := &App{Name: name, Scene: scene, Window: win, Widgets: map[string]any{}, now: time.Now}
	if err := build(app); err != nil {
		return nil, fmt.Errorf("build %s demo: %w", name, err)
	}
	return app, nil
}

func buildButton(app *App) error {
	title, err := widgets.NewHeading(app.Window)
	if err != nil {
		return err
	}
	title.TabIndex = 1
	if err := title.SetFontSize(20); err != nil {
		return err
	}
	if err := title.SetText("Button Demo"); err != nil {
		return err
	}
	if err := title.Move(10, 20); err != nil {
		return err
	}

	button, err := widgets.NewButton(app.Window)
	if err != nil {
		return err
	}
	button.TabIndex = 2
	if err := button.SetFontSize(14); err != nil {
		return err
	}
	if err := button.Move(12, 50); err != nil {
		return err
	}
	button.OnClick(func(core.EventArgs) {
		report(title.SetText("Button Clicked!"))
		app.After(ClickFeedback, func() {
			report(title.SetText("Button Demo"))
			report(button.SetLabel(widgets.DefaultButtonLabel))
			button.SetState(core.IdleUp)
			button.IdleUpState()
		})
	})

	app.Widgets["title"] = title
	app.Widgets["button"] = button
	return nil
}

func buildTodo(app *App) error {
	title, err := widgets.NewHeading(app.Window)
	if err != nil {
		return err
	}
	if err := title.SetText("Todo"); err != nil {
		return err
	}
	if err := title.Move(10, 10); err != nil {
		return err
	}

	list, err := widgets.NewTodoList(app.Window, nil)
	if err != nil {
		return err
	}
	if err := list.Move(10, 40); err != nil {
		return err
	}

	app.Widgets["title"] = title
	app.Widgets["todo"] = list
	return nil
}

func buildGallery(app *App) error {
	title, err := widgets.NewHeading(app.Window)
	if err != nil {
		return err
	}
	if err := title.SetText("Widgets"); err != nil {
		return err
	}
	if err := title.Move(10, 10); err != nil {
		return err
	}

	button, err := widgets.NewButton(app.Window)
	if err != nil {
		return err
	}
	if err := button.SetLabel("Increment"); err != nil {
		return err
	}
	if err := button.SetFontSize(14); err != nil {
		return err
	}
	if err := button.Move(10, 40); err != nil {
		return err
	}

	check, err := widgets.NewCheckbox(app.Window, "Enable")
	if err != nil {
		return err
	}
	if err := check.Move(10, 90); err != nil {
		return err
	}

	radio, err := widgets.NewRadioGroup(app.Window, []string{"Small", "Medium", "Large"})
	if err != nil {
		return err
	}
	if err := radio.Move(10, 130); err != nil {
		return err
	}

	scroll, err := widgets.NewScrollbar(app.Window)
	if err != nil {
		return err
	}
	if err := scroll.Move(200, 40); err != nil {
		return err
	}

	progress, err := widgets.NewProgressBar(app.Window)
	if err != nil {
		return err
	}
	if err := progress.Move(240, 40); err != nil {
		return err
	}

	button.OnClick(func(core.EventArgs) {
		report(progress.IncrementBy(progress.Increment()))
	})
	scroll.OnScroll(func(_ widgets.ScrollDirection, ratio float64) {
		report(progress.SetValue(ratio * 100))
	})

	app.Widgets["title"] = title
	app.Widgets["button"] = button
	app.Widgets["checkbox"] = check
	app.Widgets["radio"] = radio
	app.Widgets["scrollbar"] = scroll
	app.Widgets["progress"] = progress
	return nil
}

func report(err error) {
	if err != nil {
		errors.Report(&errors.KitError{Op: "demo.callback", Kind: errors.KindRender, Err: err})
	}
}
