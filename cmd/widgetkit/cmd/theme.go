package cmd

import (
	"fmt"

	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/config"
	"github.com/go-drift/widgetkit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print the resolved theme as YAML",
		Long: `Print the theme the demos would use, as YAML.

The output is the stock theme merged with the file named by "theme" in
widgetkit.yaml, and can be edited and referenced from widgetkit.yaml.`,
		Usage: "widgetkit theme",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("theme takes no arguments")
	}
	cfg, err := config.ResolveWorkingDir()
	if err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return err
	}
	data, err := theme.Current().Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
