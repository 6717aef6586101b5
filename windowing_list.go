package nav

// WindowingListEntry is one row of the window switcher list.
type WindowingListEntry struct {
	Window   WindowHandle
	Label    string
	Selected bool
}

// WindowingList is the transient, input-inert list shown while the window
// switcher is held. Renderers draw it as-is; it never takes focus.
type WindowingList struct {
	Visible bool
	Rect    Rect
	Entries []WindowingListEntry
}

// WindowingList returns the list computed by the last EndFrame.
func (ctx *Context) WindowingList() WindowingList { return ctx.windowing.list }

// updateWindowingList rebuilds the switcher list once the hold passed the
// list delay. Windows are listed most recently focused first.
func (ctx *Context) updateWindowingList() {
	list := &ctx.windowing.list
	list.Entries = list.Entries[:0]
	list.Visible = false
	if !ctx.windowing.target.IsValid() || ctx.windowing.timer < ctx.cfg.WindowingListDelay {
		return
	}

	order := ctx.wm.FocusOrder()
	widest := 0
	for i := len(order) - 1; i >= 0; i-- {
		h := order[i]
		if !ctx.wm.IsNavFocusable(h) {
			continue
		}
		w := ctx.window(h)
		label := DisplayName(w)
		if n := len([]rune(label)); n > widest {
			widest = n
		}
		list.Entries = append(list.Entries, WindowingListEntry{
			Window:   h,
			Label:    label,
			Selected: h == ctx.windowing.target,
		})
	}

	// Auto-size around the labels, at least a fifth of the display,
	// centered on it.
	pad := ctx.cfg.WindowingPad
	rowH := ctx.cfg.FontSize + ctx.cfg.ItemSpacing.Y
	size := Vec2{
		X: float32(widest)*ctx.cfg.CharWidth + pad.X*2,
		Y: float32(len(list.Entries))*rowH - ctx.cfg.ItemSpacing.Y + pad.Y*2,
	}
	display := ctx.cfg.DisplaySize
	size.X = maxf(size.X, display.X*0.20)
	size.Y = maxf(size.Y, display.Y*0.20)
	pos := display.Mul(0.5).Sub(size.Mul(0.5)).Floor()
	list.Rect = Rect{Min: pos, Max: pos.Add(size)}
	list.Visible = true
}

// Rows returns the rect of each entry inside the list window.
func (l WindowingList) Rows(cfg Config) []Rect {
	rows := make([]Rect, len(l.Entries))
	rowH := cfg.FontSize + cfg.ItemSpacing.Y
	x := l.Rect.Min.X + cfg.WindowingPad.X
	w := l.Rect.W() - cfg.WindowingPad.X*2
	for i := range rows {
		y := l.Rect.Min.Y + cfg.WindowingPad.Y + float32(i)*rowH
		rows[i] = RectXYWH(x, y, w, cfg.FontSize)
	}
	return rows
}
