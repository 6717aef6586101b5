package nav

// SubmitMove starts a move request scored during this frame's traversal.
// The scoring rect is taken from the nav window's remembered focus rect.
func (ctx *Context) SubmitMove(dir, clipDir Dir, flags MoveFlags, scrollFlags ScrollFlags) {
	w := ctx.window(ctx.navWindow)
	if !ctx.check(w != nil, "SubmitMove", "no nav window") {
		return
	}
	ctx.scoringRect = ctx.calcScoringRect(w, 0)
	ctx.submitMove(dir, clipDir, flags, scrollFlags)
}

func (ctx *Context) submitMove(dir, clipDir Dir, flags MoveFlags, scrollFlags ScrollFlags) {
	if flags&MoveTabbing != 0 {
		flags |= MoveAllowCurrentNavID
	}
	ctx.move.submitted = true
	ctx.move.scoring = true
	ctx.move.dir = dir
	ctx.move.clipDir = clipDir
	ctx.move.flags = flags
	ctx.move.scrollFlags = scrollFlags
	ctx.move.forwardToNextFrame = false
	if ctx.input != nil {
		ctx.move.keyMods = ctx.input.KeyMods()
	}
	ctx.resultLocal = emptyResult()
	ctx.resultLocalVisible = emptyResult()
	ctx.resultOther = emptyResult()
	ctx.tabbing.counter = 0
	ctx.tabbingFirst = emptyResult()
	ctx.updateAnyRequestFlag()
	ctx.log.Debug("move submitted", "dir", dir, "clip", clipDir, "flags", flags)
}

// forwardMove cancels the live request and re-arms it for the next frame
// with the Forwarded flag.
func (ctx *Context) forwardMove(dir, clipDir Dir, flags MoveFlags, scrollFlags ScrollFlags) {
	if !ctx.check(!ctx.move.forwardToNextFrame, "forwardMove", "request already forwarded") {
		return
	}
	ctx.CancelMove()
	ctx.move.forwardToNextFrame = true
	ctx.move.dir = dir
	ctx.move.clipDir = clipDir
	ctx.move.flags = flags | MoveForwarded
	ctx.move.scrollFlags = scrollFlags
	ctx.log.Debug("move forwarded", "dir", dir, "clip", clipDir, "flags", ctx.move.flags)
}

// CancelMove drops the live request. Calling it twice is harmless.
func (ctx *Context) CancelMove() {
	ctx.move.submitted = false
	ctx.move.scoring = false
	ctx.updateAnyRequestFlag()
}

// resolveWithLastItem stops scoring and makes it the local result.
func (ctx *Context) resolveWithLastItem(w *Window, it *ItemCandidate) {
	ctx.move.scoring = false
	ctx.resultLocal = ctx.resultLocal.withItem(w, it)
	ctx.updateAnyRequestFlag()
}

// MoveRequestButNoResultYet reports whether a request is still being scored
// and nothing has matched so far.
func (ctx *Context) MoveRequestButNoResultYet() bool {
	return ctx.move.scoring && ctx.resultLocal.ID == 0 && ctx.resultOther.ID == 0
}

// MoveRequestActive reports whether a request was submitted this frame.
func (ctx *Context) MoveRequestActive() bool { return ctx.move.submitted }

// MoveDir returns the direction of the live or forwarded request.
func (ctx *Context) MoveDir() Dir { return ctx.move.dir }

// MoveFlags returns the flags of the live or forwarded request.
func (ctx *Context) MoveFlags() MoveFlags { return ctx.move.flags }

// calcScoringRect turns the remembered focus rect into the reference used
// for scoring: a zero-width segment one pixel inside its left edge, so
// items of varying width and zero-spaced neighbors score consistently.
func (ctx *Context) calcScoringRect(w *Window, offsetY float32) Rect {
	rel := w.Nav.RectRel[ctx.navLayer]
	if rel.IsInverted() {
		rel = Rect{}
	}
	r := w.RectRelToAbs(rel).TranslateY(offsetY)
	r.Min.X = minf(r.Min.X+1, r.Max.X)
	r.Max.X = r.Min.X
	return r
}

// updateCreateMoveRequest turns arrows, d-pad and page keys into a request,
// or re-submits a forwarded one.
func (ctx *Context) updateCreateMoveRequest(keyboard, gamepad bool) {
	in := ctx.input
	w := ctx.window(ctx.navWindow)

	if ctx.move.forwardToNextFrame && w != nil {
		// Direction and flags were set by forwardMove.
		ctx.log.Debug("move forward resumed", "dir", ctx.move.dir)
	} else {
		ctx.move.dir = DirNone
		ctx.move.flags = 0
		ctx.move.scrollFlags = ScrollNone
		if w != nil && !ctx.windowing.target.IsValid() && w.Flags&WindowNoNavInputs == 0 {
			delay, rate := ctx.cfg.navMoveRepeat()
			pressed := func(kbd, pad Key) bool {
				return (gamepad && in.KeyPressedRepeat(pad, delay, rate)) || (keyboard && in.KeyPressedRepeat(kbd, delay, rate))
			}
			activeUsesNav := ctx.activeID != 0
			switch {
			case !activeUsesNav && pressed(KeyLeft, KeyGamepadDpadLeft):
				ctx.move.dir = DirLeft
			case !activeUsesNav && pressed(KeyRight, KeyGamepadDpadRight):
				ctx.move.dir = DirRight
			case !activeUsesNav && pressed(KeyUp, KeyGamepadDpadUp):
				ctx.move.dir = DirUp
			case !activeUsesNav && pressed(KeyDown, KeyGamepadDpadDown):
				ctx.move.dir = DirDown
			}
		}
		ctx.move.clipDir = ctx.move.dir
		ctx.scoringNoClipRect = InvertedRect()
	}

	var offsetY float32
	if w != nil && ctx.move.dir == DirNone && keyboard {
		offsetY = ctx.updatePageUpPageDown(w)
	}
	if offsetY != 0 {
		ctx.scoringNoClipRect = w.InnerRect.TranslateY(offsetY)
	}

	ctx.move.forwardToNextFrame = false
	if ctx.move.dir != DirNone && w != nil {
		ctx.submitMove(ctx.move.dir, ctx.move.clipDir, ctx.move.flags, ctx.move.scrollFlags)
	}

	// Moving with nothing focused falls back to the first item.
	if ctx.move.submitted && ctx.navID == 0 {
		ctx.log.Debug("init request from move", "window", windowName(w), "layer", ctx.navLayer)
		ctx.navInitRequest = true
		ctx.navInitRequestFromMove = true
		ctx.navInitResultID = 0
		ctx.navDisableHighlight = false
	}

	// A gamepad can't point at things, so after scrolling far away the
	// reference is pulled back into the visible area.
	if ctx.move.submitted && ctx.navInputSource == InputSourceGamepad && ctx.navLayer == LayerMain && w != nil {
		ctx.clampRefRectForGamepad(w)
	}

	if w != nil {
		ctx.scoringRect = ctx.calcScoringRect(w, offsetY)
		ctx.scoringNoClipRect = ctx.scoringNoClipRect.Union(ctx.scoringRect)
	}
}

func (ctx *Context) clampRefRectForGamepad(w *Window) {
	clampX := ctx.move.flags&(MoveLoopX|MoveWrapX) == 0
	clampY := ctx.move.flags&(MoveLoopY|MoveWrapY) == 0
	if !clampX && !clampY {
		return
	}
	inner := w.RectAbsToRel(w.InnerRect.Expand(1))
	ref := w.Nav.RectRel[ctx.navLayer]
	if inner.ContainsRect(ref) {
		return
	}
	padX := minf(inner.W(), ctx.cfg.FontSize*0.5)
	padY := minf(inner.H(), ctx.cfg.FontSize*0.5)
	bounds := Rect{Min: Vec2{X: -maxDist, Y: -maxDist}, Max: Vec2{X: maxDist, Y: maxDist}}
	if clampX {
		bounds.Min.X, bounds.Max.X = inner.Min.X+padX, inner.Max.X-padX
	}
	if clampY {
		bounds.Min.Y, bounds.Max.Y = inner.Min.Y+padY, inner.Max.Y-padY
	}
	w.Nav.RectRel[ctx.navLayer] = ref.ClipWithFull(bounds)
	ctx.navID = 0
	ctx.log.Debug("clamp reference rect for gamepad move", "window", w.Name)
}

// updatePageUpPageDown handles PageUp/PageDown/Home/End. It returns the
// vertical offset to apply to the scoring rect.
func (ctx *Context) updatePageUpPageDown(w *Window) float32 {
	in := ctx.input
	if w.Flags&WindowNoNavInputs != 0 || ctx.windowing.target.IsValid() {
		return 0
	}
	delay, rate := ctx.cfg.KeyRepeatDelay, ctx.cfg.KeyRepeatRate
	pageUpHeld := in.KeyDown(KeyPageUp)
	pageDownHeld := in.KeyDown(KeyPageDown)
	homePressed := in.KeyPressedRepeat(KeyHome, delay, rate)
	endPressed := in.KeyPressedRepeat(KeyEnd, delay, rate)
	if pageUpHeld == pageDownHeld && homePressed == endPressed {
		return 0
	}

	if ctx.navLayer != LayerMain {
		ctx.restoreLayer(LayerMain)
		if w = ctx.window(ctx.navWindow); w == nil {
			return 0
		}
	}

	if w.navLayersActiveMask == 0 && w.navHasScroll {
		// Nothing to focus: scroll by pages instead.
		switch {
		case in.KeyPressedRepeat(KeyPageUp, delay, rate):
			ctx.scroller.SetScrollY(w, w.Scroll.Y-w.InnerRect.H())
		case in.KeyPressedRepeat(KeyPageDown, delay, rate):
			ctx.scroller.SetScrollY(w, w.Scroll.Y+w.InnerRect.H())
		case homePressed:
			ctx.scroller.SetScrollY(w, 0)
		case endPressed:
			ctx.scroller.SetScrollY(w, w.ScrollMax.Y)
		}
		return 0
	}

	rel := &w.Nav.RectRel[ctx.navLayer]
	pageOffset := maxf(0, w.InnerRect.H()-ctx.cfg.FontSize+rel.H())
	switch {
	case in.KeyPressedRepeat(KeyPageUp, delay, rate):
		// The scoring rect moves up a page and searches down, so the
		// request can land on the item at the page boundary.
		ctx.move.dir = DirDown
		ctx.move.clipDir = DirUp
		ctx.move.flags = MoveAllowCurrentNavID | MoveAlsoScoreVisibleSet
		return -pageOffset
	case in.KeyPressedRepeat(KeyPageDown, delay, rate):
		ctx.move.dir = DirUp
		ctx.move.clipDir = DirDown
		ctx.move.flags = MoveAllowCurrentNavID | MoveAlsoScoreVisibleSet
		return pageOffset
	case homePressed:
		rel.Min.Y, rel.Max.Y = 0, 0
		if rel.IsInverted() {
			rel.Min.X, rel.Max.X = 0, 0
		}
		ctx.move.dir = DirDown
		ctx.move.flags = MoveAllowCurrentNavID | MoveScrollToEdgeY
	case endPressed:
		rel.Min.Y, rel.Max.Y = w.ContentSize.Y, w.ContentSize.Y
		if rel.IsInverted() {
			rel.Min.X, rel.Max.X = 0, 0
		}
		ctx.move.dir = DirUp
		ctx.move.flags = MoveAllowCurrentNavID | MoveScrollToEdgeY
	}
	return 0
}

// applyMoveResult focuses the winner of last frame's request.
func (ctx *Context) applyMoveResult() {
	var result *ScoreResult
	switch {
	case ctx.resultLocal.ID != 0:
		result = &ctx.resultLocal
	case ctx.resultOther.ID != 0:
		result = &ctx.resultOther
	}

	// Forward tab past the last item, or a hidden-highlight tab that never
	// saw the focused item, goes to the first item seen.
	wrapToFirst := ctx.tabbing.counter == 1 || (ctx.tabbing.dir == 0 && ctx.resultLocal.ID == 0)
	if ctx.move.flags&MoveTabbing != 0 && wrapToFirst && ctx.tabbingFirst.ID != 0 {
		result = &ctx.tabbingFirst
	}

	if result == nil {
		if ctx.move.flags&MoveTabbing != 0 {
			ctx.move.flags |= MoveDontSetNavHighlight
		}
		if ctx.navID != 0 && ctx.move.flags&MoveDontSetNavHighlight == 0 {
			ctx.restoreHighlightAfterMove()
		}
		ctx.log.Debug("move resolved without result", "dir", ctx.move.dir)
		return
	}

	// PageUp/PageDown first go to the last fully visible item.
	if ctx.move.flags&MoveAlsoScoreVisibleSet != 0 &&
		ctx.resultLocalVisible.ID != 0 && ctx.resultLocalVisible.ID != ctx.navID {
		result = &ctx.resultLocalVisible
	}

	// Entering a flattened child from its parent: the child wins only when
	// strictly closer.
	if result != &ctx.resultOther && ctx.resultOther.ID != 0 {
		if ow := ctx.window(ctx.resultOther.Window); ow != nil && ow.Parent == ctx.navWindow {
			if ctx.resultOther.DistBox < result.DistBox ||
				(ctx.resultOther.DistBox == result.DistBox && ctx.resultOther.DistCenter < result.DistCenter) {
				result = &ctx.resultOther
			}
		}
	}

	// Either window may have been destroyed since scoring.
	rw := ctx.window(result.Window)
	if rw == nil || ctx.window(ctx.navWindow) == nil {
		ctx.log.Debug("move result dropped, window gone", "id", result.ID)
		return
	}

	if ctx.navLayer == LayerMain {
		if ctx.move.flags&MoveScrollToEdgeY != 0 {
			target := float32(0)
			if ctx.move.dir == DirUp {
				target = rw.ScrollMax.Y
			}
			ctx.scroller.SetScrollY(rw, target)
		} else {
			ctx.scroller.ScrollToRect(rw, rw.RectRelToAbs(result.RectRel), ctx.move.scrollFlags)
		}
	}

	if ctx.activeID != result.ID {
		ctx.ClearActiveID()
	}
	if ctx.navID != result.ID {
		ctx.navJustMovedToID = result.ID
		ctx.navJustMovedToFocusScope = result.FocusScope
		ctx.navJustMovedToKeyMods = ctx.move.keyMods
	}

	ctx.navWindow = result.Window
	ctx.log.Debug("move resolved", "id", result.ID, "layer", ctx.navLayer, "window", rw.Name)
	ctx.SetFocus(result.ID, ctx.navLayer, result.FocusScope, result.RectRel)

	// Tab onto an input starts editing it; other items are just focused.
	if ctx.move.flags&MoveTabbing != 0 && result.Flags&ItemInputable != 0 {
		ctx.navNextActivateID = result.ID
		ctx.navNextActivateFlags = ActivatePreferInput | ActivateTryToPreserveState
		ctx.move.flags |= MoveDontSetNavHighlight
	}
	if ctx.move.flags&MoveActivate != 0 {
		ctx.navNextActivateID = result.ID
		ctx.navNextActivateFlags = ActivateNone
	}

	if ctx.move.flags&MoveDontSetNavHighlight == 0 {
		ctx.restoreHighlightAfterMove()
	}
}

// applyInitResult focuses the item found by last frame's init request.
func (ctx *Context) applyInitResult() {
	if ctx.window(ctx.navWindow) == nil {
		return
	}
	ctx.log.Debug("init resolved", "id", ctx.navInitResultID, "layer", ctx.navLayer)
	ctx.SetFocus(ctx.navInitResultID, ctx.navLayer, 0, ctx.navInitResultRectRel)
	if ctx.navInitRequestFromMove {
		ctx.restoreHighlightAfterMove()
	}
}
