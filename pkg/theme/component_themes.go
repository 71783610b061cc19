package theme

import "github.com/go-drift/widgetkit/pkg/rendering"

var hex = rendering.MustParseColor

// StatePalette is the pair of colors a widget paints for one state.
type StatePalette struct {
	// Fill is the body color.
	Fill rendering.Color `yaml:"fill"`
	// Text is the label color.
	Text rendering.Color `yaml:"text"`
}

// ButtonThemeData defines styling for Button widgets, one palette per state.
type ButtonThemeData struct {
	IdleUp       StatePalette    `yaml:"idle_up"`
	IdleDown     StatePalette    `yaml:"idle_down"`
	Pressed      StatePalette    `yaml:"pressed"`
	Hover        StatePalette    `yaml:"hover"`
	HoverPressed StatePalette    `yaml:"hover_pressed"`
	PressedOut   StatePalette    `yaml:"pressed_out"`
	Move         StatePalette    `yaml:"move"`
	Keyup        StatePalette    `yaml:"keyup"`
	BorderColor  rendering.Color `yaml:"border_color"`
	// FontSize is the default label font size.
	FontSize float64 `yaml:"font_size"`
	// Width and Height are the default button size.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CheckboxThemeData defines styling for Checkbox widgets.
type CheckboxThemeData struct {
	// BoxColor is the box fill when unchecked.
	BoxColor rendering.Color `yaml:"box_color"`
	// ActiveColor is the box fill when checked, and the box outline.
	ActiveColor rendering.Color `yaml:"active_color"`
	// HoverColor is the box fill while hovered.
	HoverColor rendering.Color `yaml:"hover_color"`
	// HoverPressedColor outlines the box when entered with the button held.
	HoverPressedColor rendering.Color `yaml:"hover_pressed_color"`
	// LabelColor and CheckedLabelColor color the label.
	LabelColor        rendering.Color `yaml:"label_color"`
	CheckedLabelColor rendering.Color `yaml:"checked_label_color"`
	Size              float64         `yaml:"size"`
	FontSize          float64         `yaml:"font_size"`
}

// RadioThemeData defines styling for RadioButton widgets.
type RadioThemeData struct {
	// InactiveColor is the circle fill when unselected.
	InactiveColor rendering.Color `yaml:"inactive_color"`
	// ActiveColor is the circle fill when selected.
	ActiveColor rendering.Color `yaml:"active_color"`
	// HoverColor is the circle fill while hovered.
	HoverColor rendering.Color `yaml:"hover_color"`
	// DotColor fills the inner dot of the selected button.
	DotColor    rendering.Color `yaml:"dot_color"`
	BorderColor rendering.Color `yaml:"border_color"`
	LabelColor  rendering.Color `yaml:"label_color"`
	// Size is the circle diameter.
	Size     float64 `yaml:"size"`
	FontSize float64 `yaml:"font_size"`
	// Spacing is the vertical distance between buttons in a group.
	Spacing float64 `yaml:"spacing"`
}

// ScrollbarThemeData defines styling for Scrollbar widgets.
type ScrollbarThemeData struct {
	ThumbColor        rendering.Color `yaml:"thumb_color"`
	ThumbPressedColor rendering.Color `yaml:"thumb_pressed_color"`
	ThumbHoverColor   rendering.Color `yaml:"thumb_hover_color"`
	ThumbDownColor    rendering.Color `yaml:"thumb_down_color"`
	ThumbMoveColor    rendering.Color `yaml:"thumb_move_color"`
	// ThumbOutlineColor outlines the thumb after the pointer leaves it pressed.
	ThumbOutlineColor rendering.Color `yaml:"thumb_outline_color"`
	HoverPressedColor rendering.Color `yaml:"hover_pressed_color"`
	TrackColor        rendering.Color `yaml:"track_color"`
	ButtonColor       rendering.Color `yaml:"button_color"`
	// Width is the bar width, also used as the button height.
	Width float64 `yaml:"width"`
	// ScrollAmount is how far one button press or arrow key moves the thumb.
	ScrollAmount float64 `yaml:"scroll_amount"`
}

// ProgressBarThemeData defines styling for ProgressBar widgets.
type ProgressBarThemeData struct {
	TrackColor        rendering.Color `yaml:"track_color"`
	BarColor          rendering.Color `yaml:"bar_color"`
	MoveColor         rendering.Color `yaml:"move_color"`
	HoverPressedColor rendering.Color `yaml:"hover_pressed_color"`
	LabelColor        rendering.Color `yaml:"label_color"`
	Width             float64         `yaml:"width"`
	Height            float64         `yaml:"height"`
	FontSize          float64         `yaml:"font_size"`
	// Increment is the step applied by IncrementBy from a key release.
	Increment float64 `yaml:"increment"`
}

// HeadingThemeData defines styling for Heading widgets.
type HeadingThemeData struct {
	BackgroundColor rendering.Color `yaml:"background_color"`
	TextColor       rendering.Color `yaml:"text_color"`
	FontSize        float64         `yaml:"font_size"`
}

// DefaultButtonTheme returns the stock button palette.
func DefaultButtonTheme() ButtonThemeData {
	return ButtonThemeData{
		IdleUp:       StatePalette{Fill: hex("#606C38"), Text: hex("#fff")},
		IdleDown:     StatePalette{Fill: hex("#283618"), Text: hex("#fff")},
		Pressed:      StatePalette{Fill: hex("#FEFAE0"), Text: hex("#e3f2fd")},
		Hover:        StatePalette{Fill: hex("#DDA15E"), Text: hex("#fff")},
		HoverPressed: StatePalette{Fill: hex("#BC6C25"), Text: hex("#fff")},
		PressedOut:   StatePalette{Fill: hex("#525F30"), Text: hex("#ddd")},
		Move:         StatePalette{Fill: hex("#93987C"), Text: hex("#fff")},
		Keyup:        StatePalette{Fill: hex("#EECE9F"), Text: hex("#fff")},
		BorderColor:  rendering.ColorBlack,
		FontSize:     18,
		Width:        80,
		Height:       30,
	}
}

// DefaultCheckboxTheme returns the stock checkbox palette.
func DefaultCheckboxTheme() CheckboxThemeData {
	return CheckboxThemeData{
		BoxColor:          rendering.ColorWhite,
		ActiveColor:       hex("#606C38"),
		HoverColor:        hex("#DDA15E"),
		HoverPressedColor: hex("#FEFAE0"),
		LabelColor:        hex("#333"),
		CheckedLabelColor: hex("#969696"),
		Size:              20,
		FontSize:          15,
	}
}

// DefaultRadioTheme returns the stock radio palette.
func DefaultRadioTheme() RadioThemeData {
	return RadioThemeData{
		InactiveColor: hex("#ccc"),
		ActiveColor:   hex("#606C38"),
		HoverColor:    hex("#DDA15E"),
		DotColor:      hex("#DDA15E"),
		BorderColor:   hex("#333"),
		LabelColor:    hex("#333"),
		Size:          16,
		FontSize:      15,
		Spacing:       35,
	}
}

// DefaultScrollbarTheme returns the stock scrollbar palette.
func DefaultScrollbarTheme() ScrollbarThemeData {
	return ScrollbarThemeData{
		ThumbColor:        hex("#777"),
		ThumbPressedColor: hex("#444"),
		ThumbHoverColor:   hex("#999"),
		ThumbDownColor:    hex("#555"),
		ThumbMoveColor:    hex("#666"),
		ThumbOutlineColor: hex("#ccc"),
		HoverPressedColor: hex("#FEFAE0"),
		TrackColor:        hex("#eee"),
		ButtonColor:       hex("#aaa"),
		Width:             20,
		ScrollAmount:      10,
	}
}

// DefaultProgressBarTheme returns the stock progress bar palette.
func DefaultProgressBarTheme() ProgressBarThemeData {
	return ProgressBarThemeData{
		TrackColor:        hex("#eee"),
		BarColor:          hex("#76c7c0"),
		MoveColor:         hex("#bbb"),
		HoverPressedColor: hex("#FEFAE0"),
		LabelColor:        rendering.ColorBlack,
		Width:             200,
		Height:            20,
		FontSize:          12,
		Increment:         10,
	}
}

// DefaultHeadingTheme returns the stock heading palette.
func DefaultHeadingTheme() HeadingThemeData {
	return HeadingThemeData{
		BackgroundColor: rendering.ColorWhite,
		TextColor:       rendering.ColorBlack,
		FontSize:        18,
	}
}
