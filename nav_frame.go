package nav

// Update runs the frame-start half of navigation: it resolves last frame's
// requests, then turns this frame's input into new requests. Call it once
// per frame after the window manager's NewFrame and before any window.
func (ctx *Context) Update(in *InputState, dt float32) {
	if in == nil {
		in = NewInputState()
	}
	ctx.input = in
	ctx.dt = dt
	ctx.frame++
	ctx.wantSetMousePos = false
	ctx.windowStack = ctx.windowStack[:0]

	keyboard, gamepad := ctx.updateInputSource()

	// Resolve last frame's requests.
	if ctx.navInitResultID != 0 {
		ctx.applyInitResult()
	}
	ctx.navInitRequest = false
	ctx.navInitRequestFromMove = false
	ctx.navInitResultID = 0
	ctx.navJustMovedToID = 0

	if ctx.move.submitted {
		ctx.applyMoveResult()
	}
	ctx.tabbing.counter = 0
	ctx.move.submitted = false
	ctx.move.scoring = false

	ctx.updateMousePos()

	// Remember the child window to come back to from the Menu layer, and
	// forget it once back on Main.
	if nw := ctx.window(ctx.navWindow); nw != nil {
		ctx.saveLastChildNavWindowIntoParent(ctx.navWindow)
		if nw.Nav.LastChild.IsValid() && ctx.navLayer == LayerMain {
			nw.Nav.LastChild = WindowHandle{}
		}
	}

	ctx.updateWindowing(keyboard, gamepad)

	nw := ctx.window(ctx.navWindow)
	ctx.navActive = (keyboard || gamepad) && nw != nil && nw.Flags&WindowNoNavInputs == 0
	ctx.navVisible = (ctx.navActive && ctx.navID != 0 && !ctx.navDisableHighlight) || ctx.windowing.target.IsValid()

	ctx.updateCancelRequest(keyboard, gamepad)
	ctx.updateActivation(keyboard, gamepad)

	ctx.updateCreateMoveRequest(keyboard, gamepad)
	if ctx.move.dir == DirNone {
		ctx.updateCreateTabbingRequest()
	}
	ctx.updateAnyRequestFlag()
	ctx.navIDIsAlive = false

	ctx.updateFallbackScroll(gamepad)
}

// BeginWindow starts item submission for window h.
func (ctx *Context) BeginWindow(h WindowHandle) {
	w := ctx.window(h)
	if !ctx.check(w != nil, "BeginWindow", "unknown window") {
		return
	}
	w.Appearing = !w.WasActive
	w.Active = true
	w.updateRects()
	w.Scroll = ctx.scroller.NextScroll(w)
	w.clearScrollTarget()
	w.navLayersActiveMask = w.navLayersActiveMaskNext
	w.navLayersActiveMaskNext = 0
	w.contentMax = Vec2{}
	ctx.windowStack = append(ctx.windowStack, h)
}

// EndWindow ends item submission for window h and commits its content size.
func (ctx *Context) EndWindow(h WindowHandle) {
	n := len(ctx.windowStack)
	if !ctx.check(n > 0 && ctx.windowStack[n-1] == h, "EndWindow", "does not match BeginWindow") {
		return
	}
	ctx.windowStack = ctx.windowStack[:n-1]
	if w := ctx.window(h); w != nil {
		w.finishContent()
	}
}

func (ctx *Context) currentWindow() *Window {
	if n := len(ctx.windowStack); n > 0 {
		return ctx.window(ctx.windowStack[n-1])
	}
	return nil
}

// ProcessItem reports one item of the current window. Items must be
// reported in submission order, once their final rect is known.
func (ctx *Context) ProcessItem(it ItemCandidate) {
	w := ctx.currentWindow()
	if !ctx.check(w != nil, "ProcessItem", "no window between BeginWindow and EndWindow") {
		return
	}
	if !ctx.check(it.Layer.valid(), "ProcessItem", "layer must be Main or Menu") {
		return
	}
	w.measureItem(it.Rect)
	if it.Flags&ItemNoNav != 0 {
		return
	}
	w.navLayersActiveMaskNext |= 1 << uint(it.Layer)

	if ctx.navID != it.ID && !ctx.navAnyRequest {
		return
	}
	nw := ctx.window(ctx.navWindow)
	if nw == nil || nw.RootForNav != w.RootForNav {
		return
	}
	if w != nw && (w.Flags|nw.Flags)&WindowNavFlattened == 0 {
		return
	}
	ctx.processItem(w, &it)
}

func (ctx *Context) processItem(w *Window, it *ItemCandidate) {
	// Init request: first item of the layer, or the default-focus item.
	if ctx.navInitRequest && ctx.navLayer == it.Layer && it.Flags&ItemDisabled == 0 {
		defaultFocus := it.Flags&ItemNoNavDefaultFocus == 0
		if defaultFocus || ctx.navInitResultID == 0 {
			ctx.navInitResultID = it.ID
			ctx.navInitResultRectRel = w.RectAbsToRel(it.navRect())
		}
		if defaultFocus {
			ctx.navInitRequest = false
			ctx.updateAnyRequestFlag()
		}
	}

	if ctx.move.scoring && ctx.move.flags&MoveDebugNoResult == 0 {
		if ctx.move.flags&MoveTabbing != 0 {
			if it.Layer == ctx.navLayer {
				ctx.processTabbingItem(w, it)
			}
		} else if (ctx.navID != it.ID || ctx.move.flags&MoveAllowCurrentNavID != 0) && it.Flags&ItemDisabled == 0 {
			if w.Handle == ctx.navWindow {
				if res, ok := ctx.scoreItem(ctx.resultLocal, w, it); ok {
					ctx.resultLocal = res.withItem(w, it)
				} else {
					ctx.resultLocal = res
				}
			} else {
				if res, ok := ctx.scoreItem(ctx.resultOther, w, it); ok {
					ctx.resultOther = res.withItem(w, it)
				} else {
					ctx.resultOther = res
				}
			}

			if ctx.move.flags&MoveAlsoScoreVisibleSet != 0 && isVisibleForPage(it.navRect(), w.ClipRect) {
				if res, ok := ctx.scoreItem(ctx.resultLocalVisible, w, it); ok {
					ctx.resultLocalVisible = res.withItem(w, it)
				} else {
					ctx.resultLocalVisible = res
				}
			}
		}
	}

	// Keep the focused item's window, layer and rect current.
	if ctx.navID == it.ID {
		ctx.navWindow = w.Handle
		ctx.navLayer = it.Layer
		ctx.navFocusScope = it.FocusScope
		ctx.navIDIsAlive = true
		w.Nav.RectRel[it.Layer] = w.RectAbsToRel(it.navRect())
	}
}

// EndFrame runs the frame-end half: wrap-around retry and the window
// switcher list.
func (ctx *Context) EndFrame() {
	if !ctx.check(len(ctx.windowStack) == 0, "EndFrame", "unbalanced BeginWindow/EndWindow") {
		ctx.windowStack = ctx.windowStack[:0]
	}
	ctx.updateWindowingList()

	if ctx.window(ctx.navWindow) != nil && ctx.MoveRequestButNoResultYet() &&
		ctx.move.flags&MoveWrapMask != 0 && ctx.move.flags&MoveForwarded == 0 {
		ctx.updateCreateWrappingRequest()
	}
}

// updateCancelRequest handles Escape / gamepad Cancel. Each press undoes
// one level: active widget, menu layer, child window, popup, then focus.
func (ctx *Context) updateCancelRequest(keyboard, gamepad bool) {
	in := ctx.input
	if !(keyboard && in.KeyPressed(KeyEscape)) && !(gamepad && in.KeyPressed(KeyNavGamepadCancel)) {
		return
	}
	ctx.log.Debug("cancel request")
	nw := ctx.window(ctx.navWindow)
	top, hasPopup := ctx.popups.TopPopup()
	topWin := ctx.window(top)

	switch {
	case ctx.activeID != 0:
		ctx.ClearActiveID()
	case ctx.navLayer != LayerMain:
		ctx.restoreLayer(LayerMain)
		ctx.restoreHighlightAfterMove()
	case nw != nil && !nw.IsRoot() && !nw.IsPopup() && ctx.window(nw.Parent) != nil:
		// Leave the child window, focusing it as an item of its parent.
		parent := ctx.window(nw.Parent)
		ctx.check(nw.ChildID != 0, "cancel", "child window without ChildID")
		childRect := nw.Rect()
		ctx.FocusWindow(parent.Handle)
		ctx.SetFocus(nw.ChildID, LayerMain, 0, parent.RectAbsToRel(childRect))
		ctx.restoreHighlightAfterMove()
	case hasPopup && topWin != nil && !topWin.Role.Has(RoleModal):
		restore := ctx.popups.CloseTopPopup()
		if ctx.window(restore) != nil {
			ctx.FocusWindow(restore)
		}
	default:
		// Popups and roots forget the item; plain children keep it so
		// coming back lands where we left.
		if nw != nil && (nw.IsPopup() || !nw.IsChild()) {
			nw.Nav.LastIDs[LayerMain] = 0
		}
		ctx.navID = 0
	}
}

// updateActivation turns Space/Enter (or pad Activate/Input) into
// activation ids, then applies any activation queued by a move.
func (ctx *Context) updateActivation(keyboard, gamepad bool) {
	in := ctx.input
	ctx.navActivateID = 0
	ctx.navActivateDownID = 0
	ctx.navActivatePressedID = 0
	ctx.navActivateInputID = 0
	ctx.navActivateFlags = ActivateNone

	nw := ctx.window(ctx.navWindow)
	if ctx.navID != 0 && !ctx.navDisableHighlight && !ctx.windowing.target.IsValid() && nw != nil && nw.Flags&WindowNoNavInputs == 0 {
		activateDown := (keyboard && in.KeyDown(KeySpace)) || (gamepad && in.KeyDown(KeyNavGamepadActivate))
		activatePressed := activateDown && ((keyboard && in.KeyPressed(KeySpace)) || (gamepad && in.KeyPressed(KeyNavGamepadActivate)))
		inputDown := (keyboard && in.KeyDown(KeyEnter)) || (gamepad && in.KeyDown(KeyNavGamepadInput))
		inputPressed := inputDown && ((keyboard && in.KeyPressed(KeyEnter)) || (gamepad && in.KeyPressed(KeyNavGamepadInput)))
		ownsActive := ctx.activeID == 0 || ctx.activeID == ctx.navID

		if ctx.activeID == 0 && activatePressed {
			ctx.navActivateID = ctx.navID
			ctx.navActivateFlags = ActivatePreferTweak
		}
		if ownsActive && inputPressed {
			ctx.navActivateInputID = ctx.navID
			ctx.navActivateFlags = ActivatePreferInput
		}
		if ownsActive && activateDown {
			ctx.navActivateDownID = ctx.navID
		}
		if ownsActive && activatePressed {
			ctx.navActivatePressedID = ctx.navID
		}
	}
	if nw != nil && nw.Flags&WindowNoNavInputs != 0 {
		ctx.navDisableHighlight = true
	}

	if ctx.navNextActivateID != 0 {
		if ctx.navNextActivateFlags&ActivatePreferInput != 0 {
			ctx.navActivateInputID = ctx.navNextActivateID
		} else {
			ctx.navActivateID = ctx.navNextActivateID
			ctx.navActivateDownID = ctx.navNextActivateID
			ctx.navActivatePressedID = ctx.navNextActivateID
		}
		ctx.navActivateFlags = ctx.navNextActivateFlags
	}
	ctx.navNextActivateID = 0
}

// updateFallbackScroll scrolls windows that have nothing to focus, and
// scrolls with the left stick.
func (ctx *Context) updateFallbackScroll(gamepad bool) {
	w := ctx.window(ctx.navWindow)
	if w == nil || w.Flags&WindowNoNavInputs != 0 || ctx.windowing.target.IsValid() {
		return
	}
	speed := floorf(ctx.cfg.FontSize*100*ctx.dt + 0.5)

	if w.navLayersActiveMask == 0 && w.navHasScroll && ctx.move.submitted {
		switch ctx.move.dir {
		case DirLeft:
			ctx.scroller.SetScrollX(w, floorf(w.Scroll.X-speed))
		case DirRight:
			ctx.scroller.SetScrollX(w, floorf(w.Scroll.X+speed))
		case DirUp:
			ctx.scroller.SetScrollY(w, floorf(w.Scroll.Y-speed))
		case DirDown:
			ctx.scroller.SetScrollY(w, floorf(w.Scroll.Y+speed))
		}
	}

	if !gamepad {
		return
	}
	in := ctx.input
	dir := in.KeyMagnitude2D(KeyGamepadLStickLeft, KeyGamepadLStickRight, KeyGamepadLStickUp, KeyGamepadLStickDown)
	tweak := float32(1)
	switch {
	case in.KeyDown(KeyNavGamepadTweakSlow):
		tweak = 1.0 / 10.0
	case in.KeyDown(KeyNavGamepadTweakFast):
		tweak = 10
	}
	if dir.X != 0 && w.HasScrollX() {
		ctx.scroller.SetScrollX(w, floorf(w.Scroll.X+dir.X*speed*tweak))
		ctx.navDisableMouseHover = true
	}
	if dir.Y != 0 && w.HasScrollY() {
		ctx.scroller.SetScrollY(w, floorf(w.Scroll.Y+dir.Y*speed*tweak))
		ctx.navDisableMouseHover = true
	}
}

// updateMousePos reports where the application should warp the mouse after
// a keyboard/gamepad move, when that is enabled.
func (ctx *Context) updateMousePos() {
	if !ctx.navMousePosDirty || !ctx.navIDIsAlive {
		return
	}
	w := ctx.window(ctx.navWindow)
	if ctx.cfg.NavEnableSetMousePos && !ctx.navDisableHighlight && ctx.navDisableMouseHover && w != nil {
		ctx.mousePos = ctx.calcPreferredMousePos(w)
		ctx.wantSetMousePos = true
		ctx.input.SetMousePos(ctx.mousePos.X, ctx.mousePos.Y)
	}
	ctx.navMousePosDirty = false
}

// calcPreferredMousePos picks a point near the bottom-left of the focused
// item, accounting for scroll that applies next frame.
func (ctx *Context) calcPreferredMousePos(w *Window) Vec2 {
	r := w.RectRelToAbs(w.Nav.RectRel[ctx.navLayer])
	if next := ctx.scroller.NextScroll(w); next != w.Scroll {
		r = r.Translate(w.Scroll.Sub(next))
	}
	pad := ctx.cfg.ItemSpacing
	pos := Vec2{
		X: r.Min.X + minf(pad.X*4, r.W()),
		Y: r.Max.Y - minf(pad.Y, r.H()),
	}
	display := ctx.cfg.DisplaySize
	return Vec2{X: clampf(pos.X, 0, display.X), Y: clampf(pos.Y, 0, display.Y)}.Floor()
}
