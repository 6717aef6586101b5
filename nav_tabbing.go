package nav

// updateCreateTabbingRequest starts a Tab/Shift+Tab request. Tab works even
// when keyboard navigation is disabled.
func (ctx *Context) updateCreateTabbingRequest() {
	w := ctx.window(ctx.navWindow)
	if w == nil || ctx.windowing.target.IsValid() || w.Flags&WindowNoNavInputs != 0 {
		return
	}
	in := ctx.input
	if !in.KeyRepeated(KeyTab, ctx.cfg) || in.ModCtrl || in.ModAlt {
		return
	}

	switch {
	case in.ModShift:
		ctx.tabbing.dir = -1
	case ctx.navID == 0 || (ctx.navDisableHighlight && ctx.activeID == 0):
		ctx.tabbing.dir = 0
	default:
		ctx.tabbing.dir = 1
	}

	scrollFlags := ScrollKeepVisibleEdgeX | ScrollKeepVisibleEdgeY
	if w.Appearing {
		scrollFlags = ScrollKeepVisibleEdgeX | ScrollAlwaysCenterY
	}
	clipDir := DirDown
	if ctx.tabbing.dir < 0 {
		clipDir = DirUp
	}
	ctx.scoringRect = ctx.calcScoringRect(w, 0)
	ctx.submitMove(DirNone, clipDir, MoveTabbing, scrollFlags)
	ctx.tabbing.counter = -1
}

// processTabbingItem runs the order-based Tab traversal for one item. All
// results go to the local slot, whatever window the item is in.
//
// Forward: the first stop is kept for wrapping; seeing the focused item
// arms a one-item countdown that resolves on the next stop.
// Backward: every stop before the focused item overwrites the result;
// when the focused item is reached scoring stops. If it was the first
// stop (or never appears) traversal continues to the last stop, which
// wraps.
// Hidden highlight: the focused item wins again, else the first stop.
// No focus: the first stop wins.
func (ctx *Context) processTabbingItem(w *Window, it *ItemCandidate) {
	canStop := it.Flags&(ItemNoTabStop|ItemDisabled) == 0
	switch ctx.tabbing.dir {
	case 1:
		if canStop && ctx.tabbingFirst.ID == 0 {
			ctx.tabbingFirst = ctx.tabbingFirst.withItem(w, it)
		}
		if canStop && ctx.tabbing.counter > 0 {
			ctx.tabbing.counter--
			if ctx.tabbing.counter == 0 {
				ctx.resolveWithLastItem(w, it)
				return
			}
		}
		if ctx.navID == it.ID {
			ctx.tabbing.counter = 1
		}
	case -1:
		if ctx.navID == it.ID {
			if ctx.resultLocal.ID != 0 {
				ctx.move.scoring = false
				ctx.updateAnyRequestFlag()
			}
		} else if canStop {
			ctx.resultLocal = ctx.resultLocal.withItem(w, it)
		}
	case 0:
		if !canStop {
			return
		}
		if ctx.tabbingFirst.ID == 0 {
			ctx.tabbingFirst = ctx.tabbingFirst.withItem(w, it)
		}
		if ctx.navID == 0 || ctx.navID == it.ID {
			ctx.resolveWithLastItem(w, it)
		}
	}
}
