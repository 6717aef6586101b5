package nav

// visibleRatio is how much of an item's height must be inside the clip
// rect for it to count as visible for PageUp/PageDown.
const visibleRatio = 0.70

// distInterval is the signed gap between intervals a and b, 0 if they overlap.
func distInterval(a0, a1, b0, b1 float32) float32 {
	if a1 < b0 {
		return a1 - b0
	}
	if b1 < a0 {
		return a0 - b1
	}
	return 0
}

// clampRectToVisibleAreaForMoveDir clips r to clip on the axis across the
// movement, so items in other columns (or rows) don't win on distance.
func clampRectToVisibleAreaForMoveDir(dir Dir, r Rect, clip Rect) Rect {
	if dir.IsHorizontal() {
		r.Min.Y = clampf(r.Min.Y, clip.Min.Y, clip.Max.Y)
		r.Max.Y = clampf(r.Max.Y, clip.Min.Y, clip.Max.Y)
	} else {
		r.Min.X = clampf(r.Min.X, clip.Min.X, clip.Max.X)
		r.Max.X = clampf(r.Max.X, clip.Min.X, clip.Max.X)
	}
	return r
}

// scoreItem rates it against the scoring rect for the live move request.
// It returns the result with updated distances and whether the item is the
// new best; the caller then stores the item into the result.
func (ctx *Context) scoreItem(res ScoreResult, w *Window, it *ItemCandidate) (ScoreResult, bool) {
	if ctx.navLayer != it.Layer {
		return res, false
	}

	cand := it.navRect()
	curr := ctx.scoringRect

	// Items of a flattened child are scored clipped to the child.
	if w.Parent == ctx.navWindow && w.Parent.IsValid() {
		if !w.ClipRect.Intersects(cand) {
			return res, false
		}
		cand = cand.ClipWithFull(w.ClipRect)
	}

	cand = clampRectToVisibleAreaForMoveDir(ctx.move.clipDir, cand, w.ClipRect)

	// Y uses the middle 60% of each rect so vertically touching items
	// still have a box distance. When both axes differ, X is squashed so
	// vertical distance dominates.
	dbx := distInterval(cand.Min.X, cand.Max.X, curr.Min.X, curr.Max.X)
	dby := distInterval(
		lerpf(cand.Min.Y, cand.Max.Y, 0.2), lerpf(cand.Min.Y, cand.Max.Y, 0.8),
		lerpf(curr.Min.Y, curr.Max.Y, 0.2), lerpf(curr.Min.Y, curr.Max.Y, 0.8))
	if dby != 0 && dbx != 0 {
		if dbx > 0 {
			dbx = dbx/1000 + 1
		} else {
			dbx = dbx/1000 - 1
		}
	}
	distBox := absf(dbx) + absf(dby)

	// Doubled center delta; only compared against itself.
	dcx := (cand.Min.X + cand.Max.X) - (curr.Min.X + curr.Max.X)
	dcy := (cand.Min.Y + cand.Max.Y) - (curr.Min.Y + curr.Max.Y)
	distCenter := absf(dcx) + absf(dcy)

	var quadrant Dir
	var dax, day, distAxial float32
	switch {
	case dbx != 0 || dby != 0:
		dax, day, distAxial = dbx, dby, distBox
		quadrant = quadrantFromDelta(dbx, dby)
	case dcx != 0 || dcy != 0:
		dax, day, distAxial = dcx, dcy, distCenter
		quadrant = quadrantFromDelta(dcx, dcy)
	default:
		// Same center: order by id so the pair still links both ways.
		if it.ID < ctx.navID {
			quadrant = DirLeft
		} else {
			quadrant = DirRight
		}
	}

	moveDir := ctx.move.dir
	newBest := false
	if quadrant == moveDir {
		if distBox < res.DistBox {
			res.DistBox = distBox
			res.DistCenter = distCenter
			ctx.traceScore(it, distBox, distCenter, quadrant, "box")
			return res, true
		}
		if distBox == res.DistBox {
			if distCenter < res.DistCenter {
				res.DistCenter = distCenter
				newBest = true
			} else if distCenter == res.DistCenter {
				// Full tie: the later item wins only when moving it along
				// the axis would reduce the distance, which chains
				// zero-distance siblings in submission order.
				d := dbx
				if moveDir.IsVertical() {
					d = dby
				}
				if d < 0 {
					newBest = true
				}
			}
		}
	}

	// Axial link: a weaker match kept only while no real match exists.
	// Menu bars only, where a dead end is worse than an odd jump.
	if res.DistBox == maxDist && distAxial < res.DistAxial && ctx.axialLinksAllowed() {
		if (moveDir == DirLeft && dax < 0) || (moveDir == DirRight && dax > 0) ||
			(moveDir == DirUp && day < 0) || (moveDir == DirDown && day > 0) {
			res.DistAxial = distAxial
			newBest = true
		}
	}
	if newBest {
		ctx.traceScore(it, distBox, distCenter, quadrant, "tie")
	}
	return res, newBest
}

func (ctx *Context) axialLinksAllowed() bool {
	if ctx.navLayer != LayerMenu {
		return false
	}
	nw := ctx.window(ctx.navWindow)
	return nw != nil && !nw.Role.Has(RoleChildMenu)
}

func (ctx *Context) traceScore(it *ItemCandidate, box, center float32, q Dir, why string) {
	if !navVerbose() {
		return
	}
	ctx.log.Debug("score", "id", it.ID, "box", box, "center", center, "quadrant", q, "by", why)
}

// isVisibleForPage reports whether enough of r is inside clip vertically.
func isVisibleForPage(r, clip Rect) bool {
	if !clip.Intersects(r) {
		return false
	}
	visible := clampf(r.Max.Y, clip.Min.Y, clip.Max.Y) - clampf(r.Min.Y, clip.Min.Y, clip.Max.Y)
	return visible >= r.H()*visibleRatio
}
