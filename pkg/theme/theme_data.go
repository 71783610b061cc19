// Package theme holds the color palettes and default sizes used by the
// widgets, and loads overrides from YAML.
package theme

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/widgetkit/pkg/errors"
)

// ThemeData contains the styling for every widget.
type ThemeData struct {
	Button      ButtonThemeData      `yaml:"button"`
	Checkbox    CheckboxThemeData    `yaml:"checkbox"`
	Radio       RadioThemeData       `yaml:"radio"`
	Scrollbar   ScrollbarThemeData   `yaml:"scrollbar"`
	ProgressBar ProgressBarThemeData `yaml:"progress_bar"`
	Heading     HeadingThemeData     `yaml:"heading"`
}

// DefaultTheme returns the stock theme.
func DefaultTheme() *ThemeData {
	return &ThemeData{
		Button:      DefaultButtonTheme(),
		Checkbox:    DefaultCheckboxTheme(),
		Radio:       DefaultRadioTheme(),
		Scrollbar:   DefaultScrollbarTheme(),
		ProgressBar: DefaultProgressBarTheme(),
		Heading:     DefaultHeadingTheme(),
	}
}

// Copy returns an independent copy of t.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	return &c
}

var (
	currentMu sync.RWMutex
	current   = DefaultTheme()
)

// Current returns the theme new widgets are styled with.
func Current() *ThemeData {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the theme used by widgets created afterwards. Pass nil
// to restore the default.
func SetCurrent(t *ThemeData) {
	currentMu.Lock()
	defer currentMu.Unlock()
	if t == nil {
		t = DefaultTheme()
	}
	current = t
}

// Parse reads a YAML theme. Keys that are absent keep their default values:
//
//	button:
//	  hover: {fill: "#ff8800", text: "#ffffff"}
//	  font_size: 14
//	scrollbar:
//	  thumb_color: "#333"
func Parse(data []byte) (*ThemeData, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, &errors.KitError{Op: "theme.Parse", Kind: errors.KindConfig, Err: err}
	}
	return t, nil
}

// Load reads and parses the theme file at path.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.KitError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("read %s: %w", path, err),
		}
	}
	return Parse(data)
}

// Marshal encodes t as YAML, suitable for Parse.
func (t *ThemeData) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
