package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/widgetkit/pkg/terminal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tui",
		Short: "Run a demo in the terminal",
		Long: `Run a demo full screen in the terminal.

The mouse moves, presses and releases the pointer. Keys are sent to the
widget under the pointer. Press q to quit.`,
		Usage: "widgetkit tui <demo>",
		Run:   runTUI,
	})
}

// tickInterval is how often timed demo callbacks are checked.
const tickInterval = 100 * time.Millisecond

func runTUI(args []string) error {
	app, cfg, rest, err := loadDemo(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}
	title := fmt.Sprintf("%s: %s", cfg.AppName, app.Name)
	return terminal.Run(app.Scene, app.Window, title, terminal.WithTicker(tickInterval, func(now time.Time) {
		app.RunDue(now)
	}))
}
