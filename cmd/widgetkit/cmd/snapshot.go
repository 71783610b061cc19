package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/rendering"
	wktest "github.com/go-drift/widgetkit/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a demo to PNG and JSON",
		Long: `Render a demo to <demo>.png and <demo>.json.

The optional script is applied before rendering. Steps are separated by
semicolons: move:X,Y  down  up  tap:X,Y  drag:X,Y,DX,DY  key:NAME  wait:MS

Flags:
  --out DIR         Output directory (default: current directory)
  --script STEPS    Interaction to play before rendering`,
		Usage: "widgetkit snapshot <demo> [--out DIR] [--script STEPS]",
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	outDir, args, err := flagValue(args, "--out")
	if err != nil {
		return err
	}
	script, args, err := flagValue(args, "--script")
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = "."
	}

	app, _, rest, err := loadDemo(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}
	if err := app.Play(script); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	pngPath := filepath.Join(outDir, app.Name+".png")
	if err := writePNG(pngPath, app.Scene); err != nil {
		return renderError("snapshot.png", err)
	}

	jsonPath := filepath.Join(outDir, app.Name+".json")
	if err := wktest.CaptureScene(app.Scene).UpdateFile(jsonPath); err != nil {
		return renderError("snapshot.json", err)
	}

	fmt.Fprintf(stdout, "Wrote %s\n", pngPath)
	fmt.Fprintf(stdout, "Wrote %s\n", jsonPath)
	return nil
}

func writePNG(path string, scene *rendering.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, scene.Rasterize()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderError(op string, err error) error {
	return &errors.KitError{Op: op, Kind: errors.KindRender, Err: err}
}
