package tcellinput

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/nav"
)

func TestAdapter_ArrowPressAndRelease(t *testing.T) {
	a := New()
	a.NewFrame()
	assert.True(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	in := a.EndFrame(0.016)
	assert.True(t, in.KeyPressed(nav.KeyLeft))
	assert.True(t, in.KeyDown(nav.KeyLeft))

	a.NewFrame()
	in = a.EndFrame(0.016)
	assert.False(t, in.KeyDown(nav.KeyLeft))
	assert.True(t, in.KeyReleased(nav.KeyLeft))
}

func TestAdapter_Backtab(t *testing.T) {
	a := New()
	a.NewFrame()
	a.HandleEvent(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	in := a.EndFrame(0.016)
	assert.True(t, in.KeyPressed(nav.KeyTab))
	assert.True(t, in.ModShift)
}

func TestAdapter_FunctionKeyChords(t *testing.T) {
	a := New()
	a.NewFrame()
	a.HandleEvent(tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone))
	in := a.EndFrame(0.016)
	assert.True(t, in.KeyPressed(nav.KeyModAlt))
	assert.True(t, in.ModAlt)

	a.NewFrame()
	in = a.EndFrame(0.016)
	assert.True(t, in.KeyReleased(nav.KeyModAlt), "Alt tap releases next frame")

	a.NewFrame()
	a.HandleEvent(tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModNone))
	in = a.EndFrame(0.016)
	assert.True(t, in.ModCtrl)
	assert.True(t, in.KeyPressed(nav.KeyTab))
}

func TestAdapter_Runes(t *testing.T) {
	a := New()
	a.NewFrame()
	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	in := a.EndFrame(0.016)
	assert.True(t, in.KeyPressed(nav.KeySpace))
	assert.Equal(t, []rune{'q'}, in.InputChars)
}

func TestAdapter_MouseAndUnknownEvents(t *testing.T) {
	a := New()
	a.NewFrame()
	assert.True(t, a.HandleEvent(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone)))
	assert.True(t, a.MouseUsed())
	assert.Equal(t, float32(12), a.Input().MouseX)
	assert.Equal(t, float32(7), a.Input().MouseY)

	assert.False(t, a.HandleEvent(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
	assert.False(t, a.HandleEvent(tcell.NewEventResize(80, 24)))

	a.NewFrame()
	assert.False(t, a.MouseUsed())
}
