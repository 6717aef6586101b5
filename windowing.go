package nav

// windowingState is the Ctrl+Tab / hold-Menu window switcher.
type windowingState struct {
	target     WindowHandle // window that would be focused on release
	targetAnim WindowHandle // window still drawn highlighted while fading out
	alpha      float32
	timer      float32
	accumDelta Vec2
	// toggleLayer is armed by a tap of Menu or Alt and disarmed by anything
	// that shows the tap was not meant to open the menu layer.
	toggleLayer bool
	list        WindowingList
}

// WindowingTarget returns the window highlighted by the switcher, or the
// zero handle when inactive.
func (ctx *Context) WindowingTarget() WindowHandle { return ctx.windowing.target }

// WindowingHighlightAlpha returns the fade of the switcher highlight. It
// stays > 0 for a few frames after release while the highlight fades out.
func (ctx *Context) WindowingHighlightAlpha() float32 { return ctx.windowing.alpha }

// WindowingHighlightWindow returns the window to draw the switcher
// highlight around, including while it fades out.
func (ctx *Context) WindowingHighlightWindow() WindowHandle { return ctx.windowing.targetAnim }

// updateWindowing runs the window switcher and the Alt menu-layer toggle.
func (ctx *Context) updateWindowing(keyboard, gamepad bool) {
	in := ctx.input
	ws := &ctx.windowing
	var applyFocus WindowHandle
	applyToggleLayer := false

	allowWindowing := !ctx.popups.TopMostModal().IsValid()
	if !allowWindowing {
		ws.target = WindowHandle{}
	}

	if ws.targetAnim.IsValid() && !ws.target.IsValid() {
		ws.alpha = maxf(ws.alpha-ctx.dt*10, 0)
		if ws.alpha <= 0 {
			ws.targetAnim = WindowHandle{}
		}
	}

	// Ctrl+Tab next, Ctrl+Shift+Tab previous; repeats while held.
	tabRepeat := in.KeyRepeated(KeyTab, ctx.cfg)
	keyboardNext := allowWindowing && tabRepeat && in.ModCtrl && !in.ModShift
	keyboardPrev := allowWindowing && tabRepeat && in.ModCtrl && in.ModShift
	startWithGamepad := allowWindowing && gamepad && !ws.target.IsValid() && in.KeyPressed(KeyNavGamepadMenu)
	startWithKeyboard := allowWindowing && !ws.target.IsValid() && (keyboardNext || keyboardPrev)
	if startWithGamepad || startWithKeyboard {
		start := ctx.navWindow
		if ctx.window(start) == nil {
			start = ctx.findNavFocusable(len(ctx.wm.FocusOrder())-1, -1, -1)
		}
		if w := ctx.window(start); w != nil {
			ws.target = w.Root
			ws.targetAnim = w.Root
			ws.timer = 0
			ws.alpha = 0
			ws.accumDelta = Vec2{}
			ws.toggleLayer = startWithGamepad
			if startWithKeyboard {
				ctx.navInputSource = InputSourceKeyboard
			} else {
				ctx.navInputSource = InputSourceGamepad
			}
			ctx.log.Debug("windowing start", "target", w.Name, "source", ctx.navInputSource)
		}
	}

	ws.timer += ctx.dt
	highlightDelay := ctx.cfg.WindowingHighlightDelay

	if ws.target.IsValid() && ctx.navInputSource == InputSourceGamepad {
		// The highlight only fades in after a short hold, so a tap to
		// toggle the menu layer doesn't flash it.
		ws.alpha = maxf(ws.alpha, saturate((ws.timer-highlightDelay)/0.05))

		dir := 0
		if in.KeyPressed(KeyGamepadL1) {
			dir++
		}
		if in.KeyPressed(KeyGamepadR1) {
			dir--
		}
		if dir != 0 {
			ctx.highlightNextWindow(dir)
			ws.alpha = 1
		}

		// Tap toggles the layer; a long press focuses on release.
		if !in.KeyDown(KeyNavGamepadMenu) {
			ws.toggleLayer = ws.toggleLayer && ws.alpha < 1
			if ws.toggleLayer && ctx.navWindow.IsValid() {
				applyToggleLayer = true
			} else if !ws.toggleLayer {
				applyFocus = ws.target
			}
			ws.target = WindowHandle{}
		}
	}

	if ws.target.IsValid() && ctx.navInputSource == InputSourceKeyboard {
		ws.alpha = maxf(ws.alpha, saturate((ws.timer-highlightDelay)/0.05))
		if keyboardNext || keyboardPrev {
			dir := 1
			if keyboardNext {
				dir = -1
			}
			ctx.highlightNextWindow(dir)
		} else if !in.ModCtrl {
			applyFocus = ws.target
		}
	}

	// Tap Alt to toggle the menu layer. Modifiers or typing while Alt is
	// held cancel it (Alt+Shift layout switch, AltGr text).
	if keyboard && in.KeyPressed(KeyModAlt) {
		ws.toggleLayer = true
		ctx.navInputSource = InputSourceKeyboard
	}
	if ws.toggleLayer && ctx.navInputSource == InputSourceKeyboard {
		if in.HasInputChars() || in.ModCtrl || in.ModShift || in.ModSuper {
			ws.toggleLayer = false
		}
		if in.KeyReleased(KeyModAlt) && ws.toggleLayer && ctx.activeID == 0 {
			applyToggleLayer = true
		}
		if !in.KeyDown(KeyModAlt) {
			ws.toggleLayer = false
		}
	}

	// Move the highlighted window with arrows or the left stick.
	if tw := ctx.window(ws.target); tw != nil && tw.Flags&WindowNoMove == 0 {
		var moveDir Vec2
		if ctx.navInputSource == InputSourceKeyboard && !in.ModShift {
			moveDir = in.KeyMagnitude2D(KeyLeft, KeyRight, KeyUp, KeyDown)
		}
		if ctx.navInputSource == InputSourceGamepad {
			moveDir = in.KeyMagnitude2D(KeyGamepadLStickLeft, KeyGamepadLStickRight, KeyGamepadLStickUp, KeyGamepadLStickDown)
		}
		if !moveDir.IsZero() {
			ws.accumDelta = ws.accumDelta.Add(moveDir.Mul(ctx.cfg.WindowingMoveSpeed * ctx.dt))
			ctx.navDisableMouseHover = true
			step := ws.accumDelta.Floor()
			if !step.IsZero() {
				if root := ctx.window(tw.Root); root != nil {
					ctx.wm.SetWindowPos(root.Handle, root.Pos.Add(step))
				}
				ws.accumDelta = ws.accumDelta.Sub(step)
			}
		}
	}

	if aw := ctx.window(applyFocus); aw != nil {
		nw := ctx.window(ctx.navWindow)
		if nw == nil || applyFocus != nw.Root {
			ctx.applyWindowingFocus(applyFocus)
		}
	}
	if applyFocus.IsValid() {
		ws.target = WindowHandle{}
	}

	if applyToggleLayer && ctx.window(ctx.navWindow) != nil {
		ctx.applyLayerToggle()
	}
}

func (ctx *Context) applyWindowingFocus(h WindowHandle) {
	ctx.ClearActiveID()
	ctx.restoreHighlightAfterMove()
	h = ctx.restoreLastChildNavWindow(h)
	ctx.popups.ClosePopupsOverWindow(h)
	ctx.FocusWindow(h)
	w := ctx.window(h)
	if w == nil {
		return
	}
	if w.Nav.LastIDs[LayerMain] == 0 {
		ctx.InitWindow(h, false)
	}
	// Menu-only windows (e.g. a main menu bar) go straight to the Menu layer.
	if w.navLayersActiveMaskNext == 1<<uint(LayerMenu) {
		ctx.navLayer = LayerMenu
	}
	ctx.log.Debug("windowing apply focus", "window", w.Name)
}

// applyLayerToggle flips between the Main and Menu layers of the nav
// window, first climbing to the nearest ancestor that has a menu layer.
func (ctx *Context) applyLayerToggle() {
	ctx.ClearActiveID()

	cur := ctx.window(ctx.navWindow)
	nw := cur
	for {
		parent := ctx.window(nw.Parent)
		if parent == nil || nw.HasNavLayer(LayerMenu) || !nw.IsChild() || nw.Role.Any(RolePopup|RoleChildMenu) {
			break
		}
		nw = parent
	}
	if nw != cur {
		ctx.FocusWindow(nw.Handle)
		nw.Nav.LastChild = cur.Handle
	}

	newLayer := LayerMain
	if nw.HasNavLayer(LayerMenu) {
		newLayer = ctx.navLayer ^ 1
	}
	if newLayer == ctx.navLayer {
		return
	}
	// Entering the menu bar always starts from its first item.
	if newLayer == LayerMenu && !nw.Role.Has(RoleDockHost) {
		nw.Nav.LastIDs[LayerMenu] = 0
	}
	ctx.log.Debug("toggle layer", "window", nw.Name, "layer", newLayer)
	ctx.restoreLayer(newLayer)
	ctx.restoreHighlightAfterMove()
}

// highlightNextWindow moves the switcher target through the focus order,
// wrapping at the ends. dir -1 goes toward older windows.
func (ctx *Context) highlightNextWindow(dir int) {
	ws := &ctx.windowing
	if tw := ctx.window(ws.target); tw != nil && tw.Role.Has(RoleModal) {
		return
	}
	order := ctx.wm.FocusOrder()
	current := -1
	for i, h := range order {
		if h == ws.target {
			current = i
			break
		}
	}
	next := ctx.findNavFocusable(current+dir, -maxInt, dir)
	if !next.IsValid() {
		start := 0
		if dir < 0 {
			start = len(order) - 1
		}
		next = ctx.findNavFocusable(start, current, dir)
	}
	if next.IsValid() {
		ws.target = next
		ws.targetAnim = next
		ws.accumDelta = Vec2{}
	}
	ws.toggleLayer = false
}

const maxInt = int(^uint(0) >> 1)

// findNavFocusable scans the focus order from start in steps of dir,
// stopping before stop.
func (ctx *Context) findNavFocusable(start, stop, dir int) WindowHandle {
	order := ctx.wm.FocusOrder()
	for i := start; i >= 0 && i < len(order) && i != stop; i += dir {
		if ctx.wm.IsNavFocusable(order[i]) {
			return order[i]
		}
	}
	return WindowHandle{}
}
