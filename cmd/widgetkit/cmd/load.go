package cmd

import (
	"fmt"

	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/config"
	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/demo"
)

// loadDemo resolves widgetkit.yaml, applies its theme and debug settings and
// builds the named demo at the configured window size.
func loadDemo(args []string) (*demo.App, *config.Resolved, []string, error) {
	if len(args) == 0 {
		return nil, nil, nil, fmt.Errorf("missing demo name (available: %v)", demo.Names())
	}
	cfg, err := config.ResolveWorkingDir()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Apply(); err != nil {
		return nil, nil, nil, err
	}
	app, err := demo.Build(args[0], cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, nil, err
	}
	return app, cfg, args[1:], nil
}
