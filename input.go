package nav

// Key represents a keyboard key, a modifier or a gamepad control.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyEnter
	KeyEscape

	// Modifiers are tracked as keys so presses and releases can be detected.
	KeyModCtrl
	KeyModShift
	KeyModAlt
	KeyModSuper

	// Gamepad, named by position on an Xbox-style pad.
	KeyGamepadStart
	KeyGamepadBack
	KeyGamepadFaceLeft  // X (Xbox), Square (PS)
	KeyGamepadFaceRight // B (Xbox), Circle (PS)
	KeyGamepadFaceUp    // Y (Xbox), Triangle (PS)
	KeyGamepadFaceDown  // A (Xbox), Cross (PS)
	KeyGamepadDpadLeft
	KeyGamepadDpadRight
	KeyGamepadDpadUp
	KeyGamepadDpadDown
	KeyGamepadL1
	KeyGamepadR1
	KeyGamepadL2 // analog
	KeyGamepadR2 // analog
	KeyGamepadLStickLeft
	KeyGamepadLStickRight
	KeyGamepadLStickUp
	KeyGamepadLStickDown
	KeyCount
)

// Gamepad roles used by navigation.
const (
	KeyNavGamepadMenu      = KeyGamepadFaceLeft  // hold: windowing, tap: toggle menu layer
	KeyNavGamepadActivate  = KeyGamepadFaceDown  // activate / open / toggle
	KeyNavGamepadCancel    = KeyGamepadFaceRight // cancel / close / exit
	KeyNavGamepadInput     = KeyGamepadFaceUp    // text input / on-screen keyboard
	KeyNavGamepadTweakSlow = KeyGamepadL1
	KeyNavGamepadTweakFast = KeyGamepadR1
)

// KeyMod is a bitmask of held modifiers.
type KeyMod uint8

const (
	ModNone  KeyMod = 0
	ModCtrl  KeyMod = 1 << 0
	ModShift KeyMod = 1 << 1
	ModAlt   KeyMod = 1 << 2
	ModSuper KeyMod = 1 << 3
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.275 // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.05  // Repeat interval once repeating (seconds)
)

// analogDeadZone is the value above which an analog control counts as down.
const analogDeadZone float32 = 0.10

// InputState holds input state for the current frame.
// This is typically populated by a backend adapter (GLFW, tcell).
type InputState struct {
	// Mouse position, used only when navigation repositions the mouse.
	MouseX, MouseY float32

	// Keyboard and gamepad - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
	keyValue   [KeyCount]float32

	// Key repeat tracking. -1 while the key is up, 0 on the press frame.
	downDuration     [KeyCount]float32
	downDurationPrev [KeyCount]float32

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	// HasGamepad is set by the backend when a gamepad is connected.
	HasGamepad bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	s := &InputState{
		InputChars: make([]rune, 0, 16),
	}
	for i := range s.downDuration {
		s.downDuration[i] = -1
		s.downDurationPrev[i] = -1
	}
	return s
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.InputChars = s.InputChars[:0]
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	v := float32(0)
	if down {
		v = 1
	}
	s.setKey(key, down, v)
}

// SetKeyAnalog sets the value of an analog control (sticks, triggers).
// The key counts as down once the value leaves the dead zone.
func (s *InputState) SetKeyAnalog(key Key, value float32) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	value = saturate(value)
	s.setKey(key, value > analogDeadZone, value)
}

func (s *InputState) setKey(key Key, down bool, value float32) {
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	s.keyValue[key] = value

	if down && !wasDown {
		s.keyPressed[key] = true
		s.downDuration[key] = 0 // Reset hold time on fresh press
		s.downDurationPrev[key] = -1
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.downDuration[key] = -1
		s.downDurationPrev[key] = -1
	}

	switch key {
	case KeyModCtrl:
		s.ModCtrl = down
	case KeyModShift:
		s.ModShift = down
	case KeyModAlt:
		s.ModAlt = down
	case KeyModSuper:
		s.ModSuper = down
	}
}

// SetModifiers sets all modifier keys at once.
func (s *InputState) SetModifiers(ctrl, shift, alt, super bool) {
	s.SetKey(KeyModCtrl, ctrl)
	s.SetKey(KeyModShift, shift)
	s.SetKey(KeyModAlt, alt)
	s.SetKey(KeyModSuper, super)
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time, after keys were set.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if !s.keyDown[key] || s.keyPressed[key] {
			continue
		}
		s.downDurationPrev[key] = s.downDuration[key]
		s.downDuration[key] += dt
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyValue returns the analog value of a key in [0,1]. Digital keys
// report 1 while held.
func (s *InputState) KeyValue(key Key) float32 {
	if key < 0 || key >= KeyCount {
		return 0
	}
	return s.keyValue[key]
}

// KeyMagnitude2D combines four keys into a direction vector.
func (s *InputState) KeyMagnitude2D(left, right, up, down Key) Vec2 {
	return Vec2{
		X: s.KeyValue(right) - s.KeyValue(left),
		Y: s.KeyValue(down) - s.KeyValue(up),
	}
}

// KeyMods returns the held modifiers as a bitmask.
func (s *InputState) KeyMods() KeyMod {
	var m KeyMod
	if s.ModCtrl {
		m |= ModCtrl
	}
	if s.ModShift {
		m |= ModShift
	}
	if s.ModAlt {
		m |= ModAlt
	}
	if s.ModSuper {
		m |= ModSuper
	}
	return m
}

// KeyRepeatCount returns how many typematic repeats fired for key this
// frame with the given delay and rate. The press frame counts as one.
func (s *InputState) KeyRepeatCount(key Key, delay, rate float32) int {
	if key < 0 || key >= KeyCount || !s.keyDown[key] {
		return 0
	}
	return CalcTypematicRepeat(s.downDurationPrev[key], s.downDuration[key], delay, rate)
}

// KeyPressedRepeat returns true on the press frame and on every repeat
// tick afterwards.
func (s *InputState) KeyPressedRepeat(key Key, delay, rate float32) bool {
	return s.KeyRepeatCount(key, delay, rate) > 0
}

// KeyRepeated returns true if a key should trigger this frame: on the
// press, then after cfg.KeyRepeatDelay, then every cfg.KeyRepeatRate.
func (s *InputState) KeyRepeated(key Key, cfg Config) bool {
	return s.KeyPressedRepeat(key, cfg.KeyRepeatDelay, cfg.KeyRepeatRate)
}

// CalcTypematicRepeat counts repeat ticks between hold times t0 and t1.
// t1 == 0 is the press frame and always counts once.
func CalcTypematicRepeat(t0, t1, delay, rate float32) int {
	if t1 == 0 {
		return 1
	}
	if t0 >= t1 {
		return 0
	}
	if rate <= 0 {
		if t0 < delay && t1 >= delay {
			return 1
		}
		return 0
	}
	countT0 := -1
	if t0 >= delay {
		countT0 = int((t0 - delay) / rate)
	}
	countT1 := -1
	if t1 >= delay {
		countT1 = int((t1 - delay) / rate)
	}
	return countT1 - countT0
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

var keyNames = map[Key]string{
	KeyNone:               "--",
	KeyTab:                "Tab",
	KeyLeft:               "Left",
	KeyRight:              "Right",
	KeyUp:                 "Up",
	KeyDown:               "Down",
	KeyPageUp:             "PgUp",
	KeyPageDown:           "PgDn",
	KeyHome:               "Home",
	KeyEnd:                "End",
	KeySpace:              "Space",
	KeyEnter:              "Enter",
	KeyEscape:             "Esc",
	KeyModCtrl:            "Ctrl",
	KeyModShift:           "Shift",
	KeyModAlt:             "Alt",
	KeyModSuper:           "Super",
	KeyGamepadStart:       "Start",
	KeyGamepadBack:        "Back",
	KeyGamepadFaceLeft:    "FaceLeft",
	KeyGamepadFaceRight:   "FaceRight",
	KeyGamepadFaceUp:      "FaceUp",
	KeyGamepadFaceDown:    "FaceDown",
	KeyGamepadDpadLeft:    "DpadLeft",
	KeyGamepadDpadRight:   "DpadRight",
	KeyGamepadDpadUp:      "DpadUp",
	KeyGamepadDpadDown:    "DpadDown",
	KeyGamepadL1:          "L1",
	KeyGamepadR1:          "R1",
	KeyGamepadL2:          "L2",
	KeyGamepadR2:          "R2",
	KeyGamepadLStickLeft:  "LStickLeft",
	KeyGamepadLStickRight: "LStickRight",
	KeyGamepadLStickUp:    "LStickUp",
	KeyGamepadLStickDown:  "LStickDown",
}
