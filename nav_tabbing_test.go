package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tab(h *harness) {
	h.frame(KeyTab)
	h.frame()
}

func shiftTab(h *harness) {
	h.hold(KeyModShift)
	h.frame(KeyTab)
	h.release(KeyModShift)
	h.frame()
}

func TestTab_WithoutFocusGoesToFirstItem(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 3, 0, 0, 50, 20)
	h.ctx.FocusWindow(win)
	h.frame()

	tab(h)
	h.requireFocus(ids[0])
	assert.True(t, h.ctx.IsHighlightVisible())
}

func TestTab_ForwardCyclesAndWraps(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 3, 0, 0, 50, 20)
	h.focus(win, ids[0])

	tab(h)
	h.requireFocus(ids[1])
	tab(h)
	h.requireFocus(ids[2])
	tab(h)
	h.requireFocus(ids[0], "tab past the last item wraps to the first")
}

func TestTab_BackwardCyclesAndWraps(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 3, 0, 0, 50, 20)
	h.focus(win, ids[0])

	shiftTab(h)
	h.requireFocus(ids[2], "shift+tab from the first item wraps to the last")
	shiftTab(h)
	h.requireFocus(ids[1])
	shiftTab(h)
	h.requireFocus(ids[0])
}

func TestTab_SkipsNonStops(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	first := h.add(win, ItemCandidate{ID: 1, Rect: RectXYWH(0, 0, 50, 20)})
	h.add(win, ItemCandidate{ID: 2, Rect: RectXYWH(50, 0, 50, 20), Flags: ItemNoTabStop})
	h.add(win, ItemCandidate{ID: 3, Rect: RectXYWH(100, 0, 50, 20), Flags: ItemDisabled})
	h.add(win, ItemCandidate{ID: 4, Rect: RectXYWH(150, 0, 50, 20), Layer: LayerMenu})
	last := h.add(win, ItemCandidate{ID: 5, Rect: RectXYWH(200, 0, 50, 20)})
	h.focus(win, first)

	tab(h)
	h.requireFocus(last)
	shiftTab(h)
	h.requireFocus(first)
}

func TestTab_OrderIsSubmissionOrder(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	// Submitted bottom to top: Tab follows submission, not position.
	low := h.add(win, ItemCandidate{ID: 1, Rect: RectXYWH(0, 100, 50, 20)})
	high := h.add(win, ItemCandidate{ID: 2, Rect: RectXYWH(0, 0, 50, 20)})
	h.focus(win, low)

	tab(h)
	h.requireFocus(high)
}

func TestTab_OntoInputActivatesForInput(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	btn := h.add(win, ItemCandidate{ID: 1, Rect: RectXYWH(0, 0, 50, 20)})
	field := h.add(win, ItemCandidate{ID: 2, Rect: RectXYWH(50, 0, 50, 20), Flags: ItemInputable})
	h.focus(win, btn)

	h.frame(KeyTab)
	h.frame()
	h.requireFocus(field)
	assert.Equal(t, field, h.ctx.ActivateInputID())
	assert.Equal(t, ActivatePreferInput|ActivateTryToPreserveState, h.ctx.ActivateFlags())
	assert.True(t, h.ctx.IsActivated(field))
	assert.Zero(t, h.ctx.ActivateID())

	h.frame()
	assert.Zero(t, h.ctx.ActivateInputID(), "activation lasts one frame")
}

func TestTab_HiddenHighlightShowsFocusedItem(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 3, 0, 0, 50, 20)
	h.focus(win, ids[1])

	h.ctx.NotifyMouseUsed()
	assert.False(t, h.ctx.IsHighlightVisible())
	tab(h)
	h.requireFocus(ids[1], "first Tab only reveals the highlight")
	assert.True(t, h.ctx.IsHighlightVisible())

	tab(h)
	h.requireFocus(ids[2])
}

func TestTab_HiddenHighlightOnNonStopRestartsFromFirst(t *testing.T) {
	h := newHarness(t)
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 3, 0, 0, 50, 20)
	h.items[win][1].Flags |= ItemNoTabStop
	h.focus(win, ids[1])

	h.ctx.NotifyMouseUsed()
	tab(h)
	h.requireFocus(ids[0])
	assert.True(t, h.ctx.IsHighlightVisible())
}

func TestTab_IgnoredWithCtrlOrAlt(t *testing.T) {
	for _, mod := range []Key{KeyModCtrl, KeyModAlt} {
		h := newHarness(t)
		win := h.window("A", WindowSpec{})
		ids := h.row(win, "field", 2, 0, 0, 50, 20)
		h.focus(win, ids[0])

		h.hold(mod)
		h.frame(KeyTab)
		assert.False(t, h.ctx.MoveFlags()&MoveTabbing != 0 && h.ctx.MoveRequestActive(), KeyName(mod))
		h.release(mod)
		h.frame()
		h.requireFocus(ids[0], KeyName(mod))
	}
}

func TestTab_WorksWithKeyboardNavDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.NavEnableKeyboard = false
	h := newHarness(t, WithConfig(cfg))
	win := h.window("A", WindowSpec{})
	ids := h.row(win, "field", 2, 0, 0, 50, 20)
	h.focus(win, ids[0])

	h.frame(KeyRight)
	h.frame()
	h.requireFocus(ids[0], "arrows are off")

	tab(h)
	h.requireFocus(ids[1])
}
