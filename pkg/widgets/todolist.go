package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/widgetkit/pkg/core"
)

// DefaultTasks are the tasks of a TodoList created without any.
var DefaultTasks = []string{"Buy supplies", "Update inventory", "Email supplier"}

const (
	todoRowHeight = 30
	todoBarGap    = 10
	todoLabelGap  = 10
	todoFontSize  = 14
)

// TodoList is a column of task checkboxes above a progress bar and a
// heading that report the share of tasks completed.
type TodoList struct {
	tasks      []*Checkbox
	subs       []*core.Subscription
	progress   *ProgressBar
	summary    *Heading
	percentage int
}

// NewTodoList creates the list in win. Empty tasks means DefaultTasks.
func NewTodoList(win *core.Window, tasks []string) (*TodoList, error) {
	if len(tasks) == 0 {
		tasks = DefaultTasks
	}
	t := &TodoList{}
	for _, task := range tasks {
		cb, err := NewCheckbox(win, task)
		if err != nil {
			return nil, err
		}
		t.tasks = append(t.tasks, cb)
		t.subs = append(t.subs, cb.OnChange(func(bool) { t.refresh() }))
	}

	var err error
	if t.progress, err = NewProgressBar(win); err != nil {
		return nil, err
	}
	if t.summary, err = NewHeading(win); err != nil {
		return nil, err
	}
	if err := t.summary.SetFontSize(todoFontSize); err != nil {
		return nil, err
	}
	if err := t.Move(0, 0); err != nil {
		return nil, err
	}
	t.refresh()
	return t, nil
}

// Move places the first checkbox at (x, y) and lays out the rest below it.
func (t *TodoList) Move(x, y float64) error {
	for i, cb := range t.tasks {
		if err := cb.Move(x, y+float64(i)*todoRowHeight); err != nil {
			return err
		}
	}
	barY := y + float64(len(t.tasks))*todoRowHeight + todoBarGap
	if err := t.progress.Move(x, barY); err != nil {
		return err
	}
	return t.summary.Move(x+t.progress.Width+todoLabelGap, barY)
}

// Tasks returns the task checkboxes in order.
func (t *TodoList) Tasks() []*Checkbox {
	return t.tasks
}

// ProgressBar returns the bar showing completion.
func (t *TodoList) ProgressBar() *ProgressBar {
	return t.progress
}

// Summary returns the heading showing completion as text.
func (t *TodoList) Summary() *Heading {
	return t.summary
}

// Percentage returns the share of checked tasks, rounded to a whole
// percent.
func (t *TodoList) Percentage() int {
	return t.percentage
}

func (t *TodoList) refresh() {
	done := 0
	for _, cb := range t.tasks {
		if cb.Checked() {
			done++
		}
	}
	t.percentage = int(math.Round(float64(done) / float64(len(t.tasks)) * 100))
	reportRender("widgets.TodoList.refresh", t.progress.SetValue(float64(t.percentage)))
	reportRender("widgets.TodoList.refresh", t.summary.SetText(fmt.Sprintf("%d%% Complete", t.percentage)))
}

// Destroy removes every widget of the list.
func (t *TodoList) Destroy() {
	for _, s := range t.subs {
		s.Cancel()
	}
	for _, cb := range t.tasks {
		cb.Destroy()
	}
	t.progress.Destroy()
	t.summary.Destroy()
}
