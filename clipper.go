package nav

import (
	"cmp"
	"math"
	"slices"
)

// ClipRange is a half-open span of list rows.
type ClipRange struct {
	Start, End int
}

// ListClipper lists the rows of a uniform-height list that must be
// submitted this frame. Besides the visible rows it keeps the focused row
// and the rows a pending move request can reach, so navigation works in
// virtualized lists.
//
// Usage:
//
//	clip := ctx.ClipList(win, len(rows), 20, 0)
//	for _, r := range clip.Ranges {
//	    for i := r.Start; i < r.End; i++ {
//	        ctx.ProcessItem(win, ItemCandidate{ID: ids[i], Rect: RectXYWH(0, clip.ItemY(i, 0), 200, 20)})
//	    }
//	}
type ListClipper struct {
	Ranges     []ClipRange // sorted, non-overlapping
	ItemHeight float32
	TotalItems int
}

// ClipList computes the rows to submit for a list of total rows of
// itemHeight. startY is the content-relative top of row 0.
func (ctx *Context) ClipList(h WindowHandle, total int, itemHeight, startY float32) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, TotalItems: total}
	w := ctx.window(h)
	if w == nil || total <= 0 || itemHeight <= 0 {
		return c
	}

	origin := w.ContentOrigin().Y + startY
	fromPositions := func(minY, maxY float32, offMin, offMax int) ClipRange {
		start := int(math.Floor(float64((minY-origin)/itemHeight))) + offMin
		end := int(math.Ceil(float64((maxY-origin)/itemHeight))) + offMax
		return ClipRange{Start: clampi(start, 0, total), End: clampi(end, 0, total)}
	}

	scoring := false
	if nw := ctx.window(ctx.navWindow); nw != nil && ctx.move.scoring {
		scoring = nw.RootForNav == w.RootForNav
	}

	// Visible rows, plus one row in the move direction.
	offMin, offMax := 0, 0
	if scoring && ctx.move.clipDir == DirUp {
		offMin = -1
	}
	if scoring && ctx.move.clipDir == DirDown {
		offMax = 1
	}
	ranges := []ClipRange{fromPositions(w.ClipRect.Min.Y, w.ClipRect.Max.Y, offMin, offMax)}

	if scoring {
		if !ctx.scoringNoClipRect.IsInverted() {
			ranges = append(ranges, fromPositions(ctx.scoringNoClipRect.Min.Y, ctx.scoringNoClipRect.Max.Y, 0, 0))
		}
		// Backward tabbing can wrap to the last row.
		if ctx.move.flags&MoveTabbing != 0 && ctx.tabbing.dir < 0 {
			ranges = append(ranges, ClipRange{Start: total - 1, End: total})
		}
	}

	// The focused row stays alive while scrolled out of view.
	if ctx.navID != 0 && w.Nav.LastIDs[LayerMain] == ctx.navID && !w.Nav.RectRel[LayerMain].IsInverted() {
		nav := w.RectRelToAbs(w.Nav.RectRel[LayerMain])
		ranges = append(ranges, fromPositions(nav.Min.Y, nav.Max.Y, 0, 0))
	}

	c.Ranges = mergeRanges(ranges)
	return c
}

func mergeRanges(ranges []ClipRange) []ClipRange {
	slices.SortFunc(ranges, func(a, b ClipRange) int { return cmp.Compare(a.Start, b.Start) })
	out := ranges[:0]
	for _, r := range ranges {
		if r.End <= r.Start {
			continue
		}
		if n := len(out); n > 0 && r.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}

// ItemY returns the content-relative top of row idx.
func (c *ListClipper) ItemY(idx int, startY float32) float32 {
	return startY + float32(idx)*c.ItemHeight
}

// Contains reports whether row idx is submitted.
func (c *ListClipper) Contains(idx int) bool {
	for _, r := range c.Ranges {
		if idx >= r.Start && idx < r.End {
			return true
		}
	}
	return false
}

// Count returns the number of submitted rows.
func (c *ListClipper) Count() int {
	n := 0
	for _, r := range c.Ranges {
		n += r.End - r.Start
	}
	return n
}

// ContentHeight returns the height of the whole list, for
// Window.ContentSizeExplicit.
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}
