package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scrollWindow returns a 300x100 window with 500 units of content.
func scrollWindow(s *WindowStack, name string, spec WindowSpec) *Window {
	if spec.Size == (Vec2{}) {
		spec.Size = Vec2{X: 300, Y: 100}
	}
	w := s.Window(s.CreateWindow(name, spec))
	w.ContentSizeExplicit = Vec2{Y: 500}
	w.finishContent()
	return w
}

func TestScrollToRect_KeepVisibleEdge(t *testing.T) {
	s := NewWindowStack()
	w := scrollWindow(s, "W", WindowSpec{})
	sc := NewWindowScroller(s, Vec2{X: 8, Y: 4})

	// Below the view: bottom-align with spacing.
	delta := sc.ScrollToRect(w, RectXYWH(0, 200, 100, 20), ScrollNone)
	assert.Equal(t, Vec2{Y: 124}, delta)
	w.Scroll = sc.NextScroll(w)
	w.clearScrollTarget()
	assert.Equal(t, float32(124), w.Scroll.Y)

	// Above the view: top-align with spacing.
	delta = sc.ScrollToRect(w, RectXYWH(0, -50, 100, 20), ScrollNone)
	assert.Equal(t, Vec2{Y: -54}, delta)

	// Already visible: nothing to do.
	w.clearScrollTarget()
	delta = sc.ScrollToRect(w, RectXYWH(0, 10, 100, 20), ScrollNone)
	assert.True(t, delta.IsZero())
}

func TestScrollToRect_AlwaysCenter(t *testing.T) {
	s := NewWindowStack()
	w := scrollWindow(s, "W", WindowSpec{})
	sc := NewWindowScroller(s, Vec2{X: 8, Y: 4})

	delta := sc.ScrollToRect(w, RectXYWH(0, 300, 100, 20), ScrollAlwaysCenterY)
	assert.Equal(t, Vec2{Y: 260}, delta)

	// Centering applies even when the item is visible.
	w.clearScrollTarget()
	delta = sc.ScrollToRect(w, RectXYWH(0, 0, 100, 20), ScrollAlwaysCenterY)
	assert.Zero(t, delta.Y, "clamped at the top")
}

func TestScrollToRect_ForwardsToParent(t *testing.T) {
	s := NewWindowStack()
	parent := scrollWindow(s, "Parent", WindowSpec{})
	child := scrollWindow(s, "Child", WindowSpec{Role: RoleChild, Parent: parent.Handle, Pos: Vec2{Y: 300}})
	sc := NewWindowScroller(s, Vec2{X: 8, Y: 4})

	item := RectXYWH(0, 310, 100, 20)
	delta := sc.ScrollToRect(child, item, ScrollNone)
	assert.Equal(t, Vec2{Y: 234}, delta, "visible in the child, so only the parent scrolls")
	assert.Equal(t, float32(234), sc.NextScroll(parent).Y)

	parent.clearScrollTarget()
	delta = sc.ScrollToRect(child, item, ScrollNoScrollParent)
	assert.True(t, delta.IsZero())
	assert.Zero(t, sc.NextScroll(parent).Y)
}

func TestSetScroll_ClampsOnCommit(t *testing.T) {
	s := NewWindowStack()
	w := scrollWindow(s, "W", WindowSpec{})
	sc := NewWindowScroller(s, Vec2{})

	sc.SetScrollY(w, 1000)
	assert.Equal(t, float32(400), sc.NextScroll(w).Y)
	sc.SetScrollY(w, -5)
	assert.Zero(t, sc.NextScroll(w).Y)
	sc.SetScrollX(w, 50)
	assert.Zero(t, sc.NextScroll(w).X, "no horizontal overflow")

	sc.SetScrollY(w, 33.7)
	assert.Equal(t, float32(33), sc.NextScroll(w).Y, "scroll is whole pixels")
}

func TestBeginWindow_CommitsScrollTarget(t *testing.T) {
	h := newHarness(t)
	win := h.window("W", WindowSpec{Size: Vec2{X: 300, Y: 100}})
	w := h.windows.Window(win)
	w.ContentSizeExplicit = Vec2{Y: 500}
	h.frame()

	NewWindowScroller(h.windows, Vec2{}).SetScrollY(w, 120)
	assert.Zero(t, w.Scroll.Y)
	h.frame()
	assert.Equal(t, float32(120), w.Scroll.Y)
	h.frame()
	assert.Equal(t, float32(120), w.Scroll.Y, "targets apply once")
}
