package opengl

import "github.com/go-theft-auto/nav"

// Overlay colors.
var (
	HighlightColor      = RGBA(66, 150, 250, 255)
	WindowingListBg     = RGBA(30, 30, 34, 240)
	WindowingListSelect = RGBA(66, 150, 250, 110)
)

// DrawNav queues the navigation overlay: the focus highlight, the window
// switcher highlight and its list.
func (r *Renderer) DrawNav(ctx *nav.Context) {
	if rect, ok := ctx.HighlightRect(); ok && ctx.IsHighlightVisible() {
		r.StrokeRect(rect.Expand(2), HighlightColor, 2)
	}

	if w := ctx.Windows().Window(ctx.WindowingHighlightWindow()); w != nil {
		alpha := ctx.WindowingHighlightAlpha()
		if alpha > 0 {
			a := uint8(alpha * 255)
			r.StrokeRect(w.Rect().Expand(3), RGBA(255, 255, 255, a), 3)
		}
	}

	list := ctx.WindowingList()
	if !list.Visible {
		return
	}
	r.FillRect(list.Rect, WindowingListBg)
	for i, row := range list.Rows(ctx.Config()) {
		if list.Entries[i].Selected {
			r.FillRect(row, WindowingListSelect)
		}
	}
}
