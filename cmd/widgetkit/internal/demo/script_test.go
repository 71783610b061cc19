package demo

import (
	"strconv"
	"testing"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestPlay_ButtonDemo(t *testing.T) {
	app, err := Build("button", 400, 200)
	if err != nil {
		t.Fatal(err)
	}
	c := app.Widgets["button"].(*widgets.Button).Node().Bounds().Center()
	script := "move:1,1; tap:" + formatPoint(c.X, c.Y)
	if err := app.Play(script); err != nil {
		t.Fatal(err)
	}
	if got := app.Widgets["title"].(*widgets.Heading).Text(); got != "Button Clicked!" {
		t.Errorf("title = %q", got)
	}
	if err := app.Play("wait:1000"); err != nil {
		t.Fatal(err)
	}
	if got := app.Widgets["title"].(*widgets.Heading).Text(); got != "Button Demo" {
		t.Errorf("title after wait = %q", got)
	}
}

func TestPlay_DownUp(t *testing.T) {
	app, err := Build("button", 400, 200)
	if err != nil {
		t.Fatal(err)
	}
	button := app.Widgets["button"].(*widgets.Button)
	c := button.Node().Bounds().Center()
	if err := app.Play("move:" + formatPoint(c.X, c.Y) + ";down"); err != nil {
		t.Fatal(err)
	}
	if button.State() != core.Pressed {
		t.Fatalf("state = %v, want Pressed", button.State())
	}
	if err := app.Play("up"); err != nil {
		t.Fatal(err)
	}
	if button.State() != core.Hover {
		t.Errorf("state = %v, want Hover", button.State())
	}
}

func TestPlay_KeyAndDrag(t *testing.T) {
	app, err := Build("widgets", 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	check := app.Widgets["checkbox"].(*widgets.Checkbox)
	box := check.Node().Children()[0].Bounds().Center()
	if err := app.Play("move:" + formatPoint(box.X, box.Y) + "; key:Space"); err != nil {
		t.Fatal(err)
	}
	if !check.Checked() {
		t.Error("expected Space to check the hovered checkbox")
	}

	scroll := app.Widgets["scrollbar"].(*widgets.Scrollbar)
	if err := app.Play("drag:210,80,0,6"); err != nil {
		t.Fatal(err)
	}
	if scroll.ThumbPosition() == 0 {
		t.Error("expected the drag to move the thumb")
	}
}

func TestPlay_Errors(t *testing.T) {
	app, err := Build("button", 400, 200)
	if err != nil {
		t.Fatal(err)
	}
	for _, script := range []string{"jump", "move:1", "tap:a,b", "key:", "drag:1,2,3", "wait:x", "wait:-5"} {
		if err := app.Play(script); err == nil {
			t.Errorf("Play(%q) expected error", script)
		}
	}
	if err := app.Play(" ; ;"); err != nil {
		t.Errorf("blank script: %v", err)
	}
}

func formatPoint(x, y float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
}
