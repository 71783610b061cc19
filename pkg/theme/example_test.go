package theme_test

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

// This example shows how to override part of the stock palette from YAML.
func ExampleParse() {
	th, err := theme.Parse([]byte(`
button:
  hover: {fill: "#008080"}
`))
	if err != nil {
		panic(err)
	}
	fmt.Println(th.Button.Hover.Fill, th.Button.IdleUp.Fill)
	// Output: #008080 #606c38
}

// This example shows how to customize a theme in code before creating widgets.
func ExampleSetCurrent() {
	custom := theme.DefaultTheme().Copy()
	custom.ProgressBar.BarColor = rendering.RGB(0, 150, 136)
	theme.SetCurrent(custom)
	defer theme.SetCurrent(nil)

	fmt.Println(theme.Current().ProgressBar.BarColor)
	// Output: #009688
}
