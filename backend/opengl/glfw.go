package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/nav"
)

// GLFWInputAdapter adapts GLFW keyboard, mouse and gamepad input to
// nav.InputState.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *nav.InputState
	joystick glfw.Joystick

	mouseUsed bool
}

// NewGLFWInputAdapter creates a new GLFW input adapter reading the first
// joystick that has a gamepad mapping.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		input:    nav.NewInputState(),
		joystick: glfw.Joystick1,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// NewFrame clears per-frame edges. Call it before glfw.PollEvents so the
// presses delivered by the callbacks survive until Update.
func (a *GLFWInputAdapter) NewFrame() {
	a.input.Reset()
	a.mouseUsed = false
}

// Update polls modifiers and the gamepad and advances key repeat.
// Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Update(dt float32) *nav.InputState {
	// Left and right modifiers are merged by polling instead of in the
	// key callback.
	a.input.SetModifiers(
		a.down(glfw.KeyLeftControl) || a.down(glfw.KeyRightControl),
		a.down(glfw.KeyLeftShift) || a.down(glfw.KeyRightShift),
		a.down(glfw.KeyLeftAlt) || a.down(glfw.KeyRightAlt),
		a.down(glfw.KeyLeftSuper) || a.down(glfw.KeyRightSuper),
	)
	a.pollGamepad()
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *nav.InputState {
	return a.input
}

// MouseUsed reports whether the mouse moved or clicked this frame.
func (a *GLFWInputAdapter) MouseUsed() bool {
	return a.mouseUsed
}

// WarpMouse moves the OS cursor, for nav.Context.WantSetMousePos.
func (a *GLFWInputAdapter) WarpMouse(pos nav.Vec2) {
	a.window.SetCursorPos(float64(pos.X), float64(pos.Y))
	a.input.SetMousePos(pos.X, pos.Y)
}

func (a *GLFWInputAdapter) down(key glfw.Key) bool {
	return a.window.GetKey(key) == glfw.Press
}

func (a *GLFWInputAdapter) pollGamepad() {
	if !a.joystick.Present() || !a.joystick.IsGamepad() {
		if a.input.HasGamepad {
			for _, m := range gamepadButtons {
				a.input.SetKey(m.key, false)
			}
			a.input.SetKeyAnalog(nav.KeyGamepadL2, 0)
			a.input.SetKeyAnalog(nav.KeyGamepadR2, 0)
			a.setStick(0, 0)
		}
		a.input.HasGamepad = false
		return
	}
	state := a.joystick.GetGamepadState()
	if state == nil {
		return
	}
	a.input.HasGamepad = true
	for _, m := range gamepadButtons {
		a.input.SetKey(m.key, state.Buttons[m.button] == glfw.Press)
	}
	// Triggers report -1 at rest and 1 fully pressed.
	a.input.SetKeyAnalog(nav.KeyGamepadL2, (state.Axes[glfw.AxisLeftTrigger]+1)*0.5)
	a.input.SetKeyAnalog(nav.KeyGamepadR2, (state.Axes[glfw.AxisRightTrigger]+1)*0.5)
	a.setStick(state.Axes[glfw.AxisLeftX], state.Axes[glfw.AxisLeftY])
}

func (a *GLFWInputAdapter) setStick(x, y float32) {
	a.input.SetKeyAnalog(nav.KeyGamepadLStickLeft, -x)
	a.input.SetKeyAnalog(nav.KeyGamepadLStickRight, x)
	a.input.SetKeyAnalog(nav.KeyGamepadLStickUp, -y)
	a.input.SetKeyAnalog(nav.KeyGamepadLStickDown, y)
}

var gamepadButtons = [...]struct {
	button glfw.GamepadButton
	key    nav.Key
}{
	{glfw.ButtonStart, nav.KeyGamepadStart},
	{glfw.ButtonBack, nav.KeyGamepadBack},
	{glfw.ButtonX, nav.KeyGamepadFaceLeft},
	{glfw.ButtonB, nav.KeyGamepadFaceRight},
	{glfw.ButtonY, nav.KeyGamepadFaceUp},
	{glfw.ButtonA, nav.KeyGamepadFaceDown},
	{glfw.ButtonDpadLeft, nav.KeyGamepadDpadLeft},
	{glfw.ButtonDpadRight, nav.KeyGamepadDpadRight},
	{glfw.ButtonDpadUp, nav.KeyGamepadDpadUp},
	{glfw.ButtonDpadDown, nav.KeyGamepadDpadDown},
	{glfw.ButtonLeftBumper, nav.KeyGamepadL1},
	{glfw.ButtonRightBumper, nav.KeyGamepadR1},
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	navKey := glfwKeyToNavKey(key)
	if navKey == nav.KeyNone {
		return
	}

	// GLFW repeats are ignored: InputState times repeats itself.
	switch action {
	case glfw.Press:
		a.input.SetKey(navKey, true)
	case glfw.Release:
		a.input.SetKey(navKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		a.mouseUsed = true
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	if x != a.input.MouseX || y != a.input.MouseY {
		a.mouseUsed = true
	}
	a.input.SetMousePos(x, y)
}

// glfwKeyToNavKey maps GLFW keys to nav keys. Modifiers are polled in
// Update.
func glfwKeyToNavKey(key glfw.Key) nav.Key {
	switch key {
	case glfw.KeyTab:
		return nav.KeyTab
	case glfw.KeyLeft:
		return nav.KeyLeft
	case glfw.KeyRight:
		return nav.KeyRight
	case glfw.KeyUp:
		return nav.KeyUp
	case glfw.KeyDown:
		return nav.KeyDown
	case glfw.KeyPageUp:
		return nav.KeyPageUp
	case glfw.KeyPageDown:
		return nav.KeyPageDown
	case glfw.KeyHome:
		return nav.KeyHome
	case glfw.KeyEnd:
		return nav.KeyEnd
	case glfw.KeySpace:
		return nav.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return nav.KeyEnter
	case glfw.KeyEscape:
		return nav.KeyEscape
	default:
		return nav.KeyNone
	}
}
