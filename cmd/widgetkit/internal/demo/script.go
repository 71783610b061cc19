package demo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/widgetkit/pkg/rendering"
)

// Play runs a semicolon separated script of pointer and key steps against
// the scene:
//
//	move:X,Y     move the pointer
//	down         press at the pointer
//	up           release at the pointer
//	tap:X,Y      move, press and release
//	drag:X,Y,DX,DY
//	key:NAME     release a key, such as Enter or ArrowUp
//	wait:MS      run the callbacks due within MS milliseconds
//
// Blank steps are ignored.
func (a *App) Play(script string) error {
	for i, step := range strings.Split(script, ";") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		if err := a.step(step); err != nil {
			return fmt.Errorf("step %d %q: %w", i+1, step, err)
		}
	}
	return nil
}

func (a *App) step(step string) error {
	verb, arg, _ := strings.Cut(step, ":")
	s := a.Scene
	switch verb {
	case "move", "tap":
		p, err := parseFloats(arg, 2)
		if err != nil {
			return err
		}
		at := rendering.Offset{X: p[0], Y: p[1]}
		s.PointerMove(at)
		if verb == "tap" {
			s.PointerDown(at)
			s.PointerUp(at)
		}
	case "down":
		s.PointerDown(s.Pointer())
	case "up":
		s.PointerUp(s.Pointer())
	case "drag":
		p, err := parseFloats(arg, 4)
		if err != nil {
			return err
		}
		start := rendering.Offset{X: p[0], Y: p[1]}
		s.PointerMove(start)
		s.PointerDown(start)
		const steps = 5
		for i := 1; i <= steps; i++ {
			frac := float64(i) / steps
			s.PointerMove(rendering.Offset{X: p[0] + p[2]*frac, Y: p[1] + p[3]*frac})
		}
		s.PointerUp(s.Pointer())
	case "wait":
		p, err := parseFloats(arg, 1)
		if err != nil {
			return err
		}
		if p[0] < 0 {
			return fmt.Errorf("negative wait %v", p[0])
		}
		a.RunDue(a.now().Add(time.Duration(p[0] * float64(time.Millisecond))))
	case "key":
		if arg == "" {
			return fmt.Errorf("missing key name")
		}
		if arg == "Space" {
			arg = " "
		}
		s.KeyUp(arg)
	default:
		return fmt.Errorf("unknown step %q", verb)
	}
	return nil
}

func parseFloats(arg string, n int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d numbers, got %q", n, arg)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
