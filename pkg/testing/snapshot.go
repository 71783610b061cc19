package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/widgetkit/pkg/rendering"
)

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "WIDGETKIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure and presentation of a scene.
type Snapshot struct {
	Size [2]float64 `json:"size"`
	Root *SceneNode `json:"root"`
}

// SceneNode represents a node in the serialized scene tree.
type SceneNode struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Bounds     [4]float64     `json:"bounds"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*SceneNode   `json:"children,omitempty"`
}

// CaptureScene serializes scene. Node IDs are replaced by per-kind counters
// ("rect#0", "rect#1") so snapshots are stable across runs.
func CaptureScene(scene *rendering.Scene) *Snapshot {
	size := scene.Size()
	counter := &typeCounter{}
	return &Snapshot{
		Size: [2]float64{round2(size.Width), round2(size.Height)},
		Root: captureNode(scene.Root(), counter),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// WIDGETKIT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns a unified diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.Marshal()
	b, _ := other.Marshal()
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// typeCounter assigns stable IDs like "rect#0", "rect#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(n rendering.Node, counter *typeCounter) *SceneNode {
	typeName := n.Kind().String()
	b := n.Bounds()
	node := &SceneNode{
		ID:   counter.next(typeName),
		Type: typeName,
		Bounds: [4]float64{
			round2(b.Left), round2(b.Top), round2(b.Width()), round2(b.Height()),
		},
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range n.Children() {
		node.Children = append(node.Children, captureNode(child, counter))
	}
	return node
}

// attrSource is implemented by Scene nodes.
type attrSource interface {
	Attrs() map[string]any
}

func captureProperties(n rendering.Node) map[string]any {
	props := make(map[string]any)
	if n.Kind() != rendering.KindGroup {
		props["fill"] = n.FillColor().Hex()
	}
	if w := n.StrokeWidth(); w > 0 {
		props["stroke"] = n.StrokeColor().Hex()
		props["strokeWidth"] = round2(w)
	}
	if n.Kind() == rendering.KindText {
		props["text"] = n.Content()
		props["fontSize"] = round2(n.FontSize())
	}
	if o := n.Opacity(); o != 1 {
		props["opacity"] = round2(o)
	}
	if !n.Visible() {
		props["visible"] = false
	}
	if src, ok := n.(attrSource); ok {
		for k, v := range src.Attrs() {
			props[k] = v
		}
	}
	return props
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := len(expectedLines)
	if len(actualLines) > maxLen {
		maxLen = len(actualLines)
	}

	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
