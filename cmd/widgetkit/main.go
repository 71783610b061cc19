// Command widgetkit shows the widget demos in a terminal and renders them to
// PNG and JSON snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/widgetkit/cmd/widgetkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
