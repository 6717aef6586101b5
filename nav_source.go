package nav

// Keys that switch the input source to the device that owns them.
var (
	gamepadSourceKeys = [...]Key{
		KeyGamepadFaceRight, KeyGamepadFaceLeft, KeyGamepadFaceUp, KeyGamepadFaceDown,
		KeyGamepadDpadRight, KeyGamepadDpadLeft, KeyGamepadDpadUp, KeyGamepadDpadDown,
	}
	keyboardSourceKeys = [...]Key{
		KeySpace, KeyEnter, KeyEscape,
		KeyRight, KeyLeft, KeyUp, KeyDown,
	}
)

// updateInputSource picks the device that drives navigation this frame.
// Both gates are re-evaluated every call; keyboard wins a tie because it is
// checked last.
func (ctx *Context) updateInputSource() (keyboard, gamepad bool) {
	in := ctx.input
	gamepad = ctx.gamepadActive()
	keyboard = ctx.keyboardActive()
	if gamepad {
		for _, k := range gamepadSourceKeys {
			if in.KeyDown(k) {
				ctx.navInputSource = InputSourceGamepad
				break
			}
		}
	}
	if keyboard {
		for _, k := range keyboardSourceKeys {
			if in.KeyDown(k) {
				ctx.navInputSource = InputSourceKeyboard
				break
			}
		}
	}
	return keyboard, gamepad
}

// NotifyMouseUsed tells navigation the mouse moved or clicked, so hovering
// is honored again and the highlight hides.
func (ctx *Context) NotifyMouseUsed() {
	ctx.navInputSource = InputSourceMouse
	ctx.navDisableMouseHover = false
	ctx.navDisableHighlight = true
}
