package widgets

import (
	"math"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
	"github.com/go-drift/widgetkit/pkg/theme"
)

const (
	scrollbarHeight      = 100
	scrollbarThumbHeight = 40
	scrollbarMinThumb    = 10
)

// ScrollDirection tells OnScroll listeners which way the thumb moved.
type ScrollDirection string

const (
	ScrollUp   ScrollDirection = "up"
	ScrollDown ScrollDirection = "down"
	ScrollNone ScrollDirection = "none"
)

// ScrollEvent is the item reference raised by a Scrollbar.
type ScrollEvent struct {
	Direction ScrollDirection
	// Ratio is the thumb position along the track, from 0 (top) to 1.
	Ratio float64
}

// Scrollbar is a vertical scrollbar with step buttons at both ends, a track
// that jumps the thumb when clicked, and a draggable thumb. The state
// machine is driven by the thumb.
type Scrollbar struct {
	core.Widget

	pos         float64
	thumbHeight float64
	dragOffset  float64
	dragging    bool
	palette     theme.ScrollbarThemeData
	focus       pointerFocus
	follow      *core.Subscription

	up        rendering.Node
	upRect    rendering.Node
	upLabel   rendering.Node
	track     rendering.Node
	thumb     rendering.Node
	down      rendering.Node
	downRect  rendering.Node
	downLabel rendering.Node
}

var (
	_ core.Hooks   = (*Scrollbar)(nil)
	_ core.Painter = (*Scrollbar)(nil)
)

// NewScrollbar creates a scrollbar with its thumb at the top.
func NewScrollbar(win *core.Window) (*Scrollbar, error) {
	th := theme.Current().Scrollbar
	s := &Scrollbar{palette: th, thumbHeight: scrollbarThumbHeight}
	s.Width = th.Width
	s.Height = scrollbarHeight
	s.Draggable = true
	if err := s.Init(win, s); err != nil {
		return nil, err
	}
	s.SetRole(core.RoleScrollbar)

	g := s.Node()
	s.up, s.upRect, s.upLabel = s.stepButton(g, "^")
	s.track = g.Rect(s.Width, 0)
	s.track.SetRadius(10)
	s.track.Fill(th.TrackColor)
	s.thumb = g.Rect(s.Width, s.thumbHeight)
	s.thumb.SetRadius(10)
	s.thumb.Fill(th.ThumbColor)
	s.down, s.downRect, s.downLabel = s.stepButton(g, "v")

	onClick(s.up, func(*rendering.Event) { s.ScrollBy(-th.ScrollAmount) })
	onClick(s.down, func(*rendering.Event) { s.ScrollBy(th.ScrollAmount) })
	onClick(s.track, s.jumpTo)
	// Registered before RegisterEvent so the offset is known when
	// PressedState runs.
	s.thumb.On(rendering.PointerDown, func(e *rendering.Event) {
		s.dragOffset = e.Position.Y - s.thumb.Bounds().Top
	})
	s.RegisterEvent(s.thumb)
	s.focus.track(g)
	// The thumb stops receiving moves once the pointer outruns it. The
	// window still sees them, so keep following from its broadcasts.
	s.follow = win.AddObserver(func(core.State) {
		if s.dragging && s.State() == core.PressedOut {
			s.followPointer(win.PointerEvent())
		}
	})

	s.SetState(core.IdleUp)
	if err := s.Update(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scrollbar) stepButton(parent rendering.Node, glyph string) (group, rect, label rendering.Node) {
	group = parent.Group()
	rect = group.Rect(s.Width, s.Width)
	rect.SetRadius(3)
	rect.Fill(s.palette.ButtonColor)
	label = group.Text(glyph)
	label.SetFontSize(14)
	label.Fill(rendering.ColorBlack)
	return group, rect, label
}

func (s *Scrollbar) trackY() float64 { return s.Width }

func (s *Scrollbar) trackHeight() float64 { return s.Height - 2*s.Width }

// travel is how far the thumb can move along the track.
func (s *Scrollbar) travel() float64 {
	return s.trackHeight() - s.thumbHeight
}

// Paint lays out the buttons, track and thumb for the current size and
// ratio.
func (s *Scrollbar) Paint() {
	s.upRect.Resize(s.Width, s.Width)
	centerText(s.upLabel, s.Width, s.Width, -1)
	s.track.Move(0, s.trackY())
	s.track.Resize(s.Width, s.trackHeight())
	s.thumb.Resize(s.Width, s.thumbHeight)
	s.thumb.Move(0, s.trackY()+s.ThumbPosition())
	s.down.Move(0, s.Height-s.Width)
	s.downRect.Resize(s.Width, s.Width)
	centerText(s.downLabel, s.Width, s.Width, -1)
}

// ScrollRatio returns the thumb position along the track, from 0 to 1.
func (s *Scrollbar) ScrollRatio() float64 {
	if s.travel() <= 0 {
		return 0
	}
	return s.pos / s.travel()
}

// SetScrollRatio moves the thumb without notifying listeners. r is clamped
// to [0, 1].
func (s *Scrollbar) SetScrollRatio(r float64) error {
	s.pos = rendering.Clamp(r, 0, 1) * math.Max(s.travel(), 0)
	return s.Update()
}

// ThumbPosition returns the thumb offset from the top of the track.
func (s *Scrollbar) ThumbPosition() float64 {
	return s.pos
}

// ThumbHeight returns the thumb length.
func (s *Scrollbar) ThumbHeight() float64 {
	return s.thumbHeight
}

// SetThumbHeight resizes the thumb, clamped between a small minimum and the
// track length.
func (s *Scrollbar) SetThumbHeight(h float64) error {
	ratio := s.ScrollRatio()
	s.thumbHeight = rendering.Clamp(h, scrollbarMinThumb, s.trackHeight())
	return s.SetScrollRatio(ratio)
}

// SetHeight changes the scrollbar length, keeping the ratio.
func (s *Scrollbar) SetHeight(h float64) error {
	ratio := s.ScrollRatio()
	s.Height = h
	if s.thumbHeight > s.trackHeight() {
		s.thumbHeight = math.Max(s.trackHeight(), scrollbarMinThumb)
	}
	return s.SetScrollRatio(ratio)
}

// ScrollBy moves the thumb by delta pixels along the track and notifies
// listeners.
func (s *Scrollbar) ScrollBy(delta float64) {
	s.setThumbPosition(s.ThumbPosition() + delta)
}

// OnScroll registers fn to receive every thumb movement made by the user.
func (s *Scrollbar) OnScroll(fn func(dir ScrollDirection, ratio float64)) *core.Subscription {
	return s.Attach(func(args core.EventArgs) {
		if ev, ok := args.ItemRef().(ScrollEvent); ok {
			fn(ev.Direction, ev.Ratio)
		}
	})
}

// Destroy removes the scrollbar and stops following the pointer.
func (s *Scrollbar) Destroy() {
	s.follow.Cancel()
	s.Widget.Destroy()
}

func (s *Scrollbar) setThumbPosition(pos float64) {
	next := rendering.Clamp(pos, 0, math.Max(s.travel(), 0))
	dir := ScrollNone
	switch {
	case next > s.pos:
		dir = ScrollDown
	case next < s.pos:
		dir = ScrollUp
	}
	s.pos = next
	repaint(&s.Component, "widgets.Scrollbar.scroll")
	ev := ScrollEvent{Direction: dir, Ratio: s.ScrollRatio()}
	s.Raise(core.NewEventArgs(&s.Component, s.RawEvent(), ev))
}

// jumpTo centers the thumb on a track click.
func (s *Scrollbar) jumpTo(e *rendering.Event) {
	top := s.Node().Bounds().Top + s.trackY()
	s.setThumbPosition(e.Position.Y - top - s.thumbHeight/2)
}

func (s *Scrollbar) followPointer(e *rendering.Event) {
	if e == nil {
		return
	}
	top := s.Node().Bounds().Top + s.trackY()
	s.setThumbPosition(e.Position.Y - s.dragOffset - top)
}

func (s *Scrollbar) IdleUpState() {
	s.dragging = false
	s.thumb.Fill(s.palette.ThumbColor)
}

func (s *Scrollbar) IdleDownState() { s.thumb.Fill(s.palette.ThumbDownColor) }

func (s *Scrollbar) PressedState() {
	s.dragging = true
	s.thumb.Fill(s.palette.ThumbPressedColor)
}

func (s *Scrollbar) PressReleaseState() {
	s.dragging = false
	s.thumb.Stroke(s.palette.ThumbColor, 0)
}

func (s *Scrollbar) HoverState() {
	s.dragging = false
	s.thumb.Fill(s.palette.ThumbHoverColor)
}

func (s *Scrollbar) HoverPressedState() { s.thumb.Stroke(s.palette.HoverPressedColor, 2) }

func (s *Scrollbar) PressedOutState() { s.thumb.Stroke(s.palette.ThumbOutlineColor, 2) }

// MoveState follows the pointer while the thumb is dragged.
func (s *Scrollbar) MoveState() {
	if s.State() != core.DragWindow && s.State() != core.PressedOut {
		return
	}
	s.thumb.Fill(s.palette.ThumbMoveColor)
	s.followPointer(s.RawEvent())
}

func (s *Scrollbar) KeyupState(key *rendering.Event) {
	if !s.focus.focused() {
		return
	}
	switch keyName(key) {
	case "ArrowUp":
		s.ScrollBy(-s.palette.ScrollAmount)
	case "ArrowDown":
		s.ScrollBy(s.palette.ScrollAmount)
	}
}
