package nav

import "testing"

func TestCalcTypematicRepeat(t *testing.T) {
	const delay, rate = 0.25, 0.05
	tests := []struct {
		name   string
		t0, t1 float32
		want   int
	}{
		{"press frame", -1, 0, 1},
		{"held before delay", 0.1, 0.2, 0},
		{"crosses delay", 0.2, 0.26, 1},
		{"one tick", 0.31, 0.36, 1},
		{"two ticks in a long frame", 0.26, 0.36, 2},
		{"no time passed", 0.3, 0.3, 0},
	}
	for _, tt := range tests {
		if got := CalcTypematicRepeat(tt.t0, tt.t1, delay, rate); got != tt.want {
			t.Errorf("%s: CalcTypematicRepeat(%v, %v) = %d, want %d", tt.name, tt.t0, tt.t1, got, tt.want)
		}
	}

	// No rate: fires once when crossing the delay.
	if got := CalcTypematicRepeat(0.2, 0.3, delay, 0); got != 1 {
		t.Errorf("zero rate crossing delay = %d, want 1", got)
	}
	if got := CalcTypematicRepeat(0.3, 0.4, delay, 0); got != 0 {
		t.Errorf("zero rate after delay = %d, want 0", got)
	}
}

func TestInputState_PressRepeatRelease(t *testing.T) {
	s := NewInputState()
	const dt = 0.1
	const delay, rate = 0.25, 0.1

	s.SetKey(KeyDown, true)
	s.UpdateKeyRepeat(dt)
	if !s.KeyPressed(KeyDown) || !s.KeyPressedRepeat(KeyDown, delay, rate) {
		t.Fatal("expected press on first frame")
	}

	var fired []int
	for frame := 1; frame <= 5; frame++ {
		s.Reset()
		s.SetKey(KeyDown, true)
		s.UpdateKeyRepeat(dt)
		if s.KeyPressed(KeyDown) {
			t.Fatalf("frame %d: held key reported as pressed", frame)
		}
		if s.KeyPressedRepeat(KeyDown, delay, rate) {
			fired = append(fired, frame)
		}
	}
	// Hold times 0.1..0.5: repeats at 0.3, 0.4, 0.5.
	if len(fired) != 3 || fired[0] != 3 {
		t.Errorf("repeat frames = %v, want [3 4 5]", fired)
	}

	s.Reset()
	s.SetKey(KeyDown, false)
	if !s.KeyReleased(KeyDown) || s.KeyDown(KeyDown) {
		t.Error("expected release edge")
	}
	if s.KeyPressedRepeat(KeyDown, delay, rate) {
		t.Error("released key must not repeat")
	}
}

func TestInputState_Modifiers(t *testing.T) {
	s := NewInputState()
	s.SetModifiers(true, false, true, false)
	if got := s.KeyMods(); got != ModCtrl|ModAlt {
		t.Errorf("KeyMods = %b, want Ctrl|Alt", got)
	}
	if !s.KeyPressed(KeyModAlt) {
		t.Error("modifier keys have press edges")
	}
	s.SetKey(KeyModCtrl, false)
	if s.ModCtrl {
		t.Error("ModCtrl should follow the key")
	}
}

func TestInputState_AnalogDeadZone(t *testing.T) {
	s := NewInputState()
	s.SetKeyAnalog(KeyGamepadLStickRight, 0.05)
	if s.KeyDown(KeyGamepadLStickRight) {
		t.Error("value inside the dead zone counts as down")
	}
	if got := s.KeyValue(KeyGamepadLStickRight); got != 0.05 {
		t.Errorf("KeyValue = %v, want 0.05", got)
	}

	s.SetKeyAnalog(KeyGamepadLStickRight, 1.5)
	if !s.KeyDown(KeyGamepadLStickRight) || !s.KeyPressed(KeyGamepadLStickRight) {
		t.Error("expected stick press")
	}
	if got := s.KeyValue(KeyGamepadLStickRight); got != 1 {
		t.Errorf("KeyValue = %v, want saturated 1", got)
	}

	s.SetKeyAnalog(KeyGamepadLStickLeft, 0.5)
	v := s.KeyMagnitude2D(KeyGamepadLStickLeft, KeyGamepadLStickRight, KeyGamepadLStickUp, KeyGamepadLStickDown)
	if v.X != 0.5 || v.Y != 0 {
		t.Errorf("KeyMagnitude2D = %v, want {0.5 0}", v)
	}
}

func TestInputState_IgnoresOutOfRangeKeys(t *testing.T) {
	s := NewInputState()
	s.SetKey(KeyNone, true)
	s.SetKey(KeyCount, true)
	s.SetKey(Key(-3), true)
	if s.KeyDown(KeyCount) || s.KeyPressed(Key(-3)) || s.KeyValue(KeyCount+1) != 0 {
		t.Error("out of range keys must be ignored")
	}
}

func TestInputState_ResetKeepsHeldKeys(t *testing.T) {
	s := NewInputState()
	s.SetKey(KeySpace, true)
	s.AddInputChar('x')
	s.Reset()
	if !s.KeyDown(KeySpace) {
		t.Error("Reset must keep held keys")
	}
	if s.KeyPressed(KeySpace) || s.HasInputChars() {
		t.Error("Reset must clear edges and typed characters")
	}
}

func TestKeyName(t *testing.T) {
	if KeyName(KeyTab) != "Tab" || KeyName(KeyGamepadFaceDown) != "FaceDown" {
		t.Error("unexpected key names")
	}
	if KeyName(KeyCount) != "?" {
		t.Error("unknown keys are named ?")
	}
}

func TestInputState_KeyRepeatedUsesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeyRepeatDelay = 0.25
	cfg.KeyRepeatRate = 0.1

	s := NewInputState()
	var fired []int
	for frame := 0; frame < 5; frame++ {
		s.Reset()
		s.SetKey(KeyTab, true)
		s.UpdateKeyRepeat(0.1)
		if s.KeyRepeated(KeyTab, cfg) {
			fired = append(fired, frame)
		}
	}
	// Hold times 0..0.4: press, then repeats at 0.3 and 0.4.
	if len(fired) != 3 || fired[0] != 0 || fired[1] != 3 {
		t.Errorf("KeyRepeated frames = %v, want [0 3 4]", fired)
	}
}
