package cmd

import (
	"fmt"

	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/demo"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List the available demos",
		Long:  `List the demo scenes that tui and snapshot can show.`,
		Usage: "widgetkit demos",
		Run:   runDemos,
	})
}

func runDemos(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("demos takes no arguments")
	}
	for _, name := range demo.Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}
