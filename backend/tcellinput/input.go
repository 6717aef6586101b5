// Package tcellinput adapts tcell terminal events to nav.InputState.
//
// Terminals report key presses but not releases, so every key is pressed
// on its event and released at the start of the next frame. Terminal
// autorepeat then shows up as fresh presses. Keys a terminal can't send
// are mapped to function keys:
//
//	F10        Alt tap (toggle menu layer)
//	F6         Ctrl+Tab (next window)
//	Shift+F6   Ctrl+Shift+Tab (previous window)
package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/nav"
)

// Adapter feeds tcell events into a nav.InputState.
type Adapter struct {
	input     *nav.InputState
	held      []nav.Key
	mouseUsed bool
}

// New creates an adapter.
func New() *Adapter {
	return &Adapter{
		input: nav.NewInputState(),
		held:  make([]nav.Key, 0, 8),
	}
}

// Input returns the input state.
func (a *Adapter) Input() *nav.InputState { return a.input }

// MouseUsed reports whether a mouse event arrived this frame.
func (a *Adapter) MouseUsed() bool { return a.mouseUsed }

// NewFrame clears last frame's edges and releases last frame's keys.
// Call it before handling this frame's events.
func (a *Adapter) NewFrame() {
	a.input.Reset()
	for _, k := range a.held {
		a.input.SetKey(k, false)
	}
	a.held = a.held[:0]
	a.mouseUsed = false
}

// EndFrame advances key repeat. Call it after this frame's events.
func (a *Adapter) EndFrame(dt float32) *nav.InputState {
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// HandleEvent applies one event. It returns false for events the adapter
// does not use.
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.SetMousePos(float32(x), float32(y))
		a.mouseUsed = true
		return true
	}
	return false
}

func (a *Adapter) press(k nav.Key) {
	a.input.SetKey(k, true)
	a.held = append(a.held, k)
}

func (a *Adapter) handleKey(ev *tcell.EventKey) bool {
	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		a.press(nav.KeyModCtrl)
	}
	if mods&tcell.ModShift != 0 {
		a.press(nav.KeyModShift)
	}
	if mods&tcell.ModAlt != 0 {
		a.press(nav.KeyModAlt)
	}

	switch ev.Key() {
	case tcell.KeyBacktab:
		a.press(nav.KeyModShift)
		a.press(nav.KeyTab)
	case tcell.KeyF10:
		a.press(nav.KeyModAlt)
	case tcell.KeyF6:
		a.press(nav.KeyModCtrl)
		a.press(nav.KeyTab)
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			a.press(nav.KeySpace)
			return true
		}
		a.input.AddInputChar(ev.Rune())
	default:
		k := tcellKeyToNavKey(ev.Key())
		if k == nav.KeyNone {
			return false
		}
		a.press(k)
	}
	return true
}

func tcellKeyToNavKey(key tcell.Key) nav.Key {
	switch key {
	case tcell.KeyTab:
		return nav.KeyTab
	case tcell.KeyLeft:
		return nav.KeyLeft
	case tcell.KeyRight:
		return nav.KeyRight
	case tcell.KeyUp:
		return nav.KeyUp
	case tcell.KeyDown:
		return nav.KeyDown
	case tcell.KeyPgUp:
		return nav.KeyPageUp
	case tcell.KeyPgDn:
		return nav.KeyPageDown
	case tcell.KeyHome:
		return nav.KeyHome
	case tcell.KeyEnd:
		return nav.KeyEnd
	case tcell.KeyEnter:
		return nav.KeyEnter
	case tcell.KeyEscape:
		return nav.KeyEscape
	default:
		return nav.KeyNone
	}
}
