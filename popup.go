package nav

// openPopup is one entry of the popup stack.
type openPopup struct {
	window WindowHandle
	// backup is the window that had focus when the popup was opened.
	backup WindowHandle
}

// Popups is the default PopupStack, backed by a WindowManager for roles and
// the parent chain.
type Popups struct {
	wm    WindowManager
	stack []openPopup
}

// NewPopups creates an empty popup stack.
func NewPopups(wm WindowManager) *Popups {
	return &Popups{wm: wm}
}

// Open pushes a popup window. restoreTo receives focus when it closes.
func (p *Popups) Open(h, restoreTo WindowHandle) {
	for _, op := range p.stack {
		if op.window == h {
			return
		}
	}
	p.stack = append(p.stack, openPopup{window: h, backup: restoreTo})
}

// IsOpen reports whether h is on the stack.
func (p *Popups) IsOpen(h WindowHandle) bool {
	for _, op := range p.stack {
		if op.window == h {
			return true
		}
	}
	return false
}

// Len returns the number of open popups.
func (p *Popups) Len() int { return len(p.stack) }

// TopMostModal implements PopupStack.
func (p *Popups) TopMostModal() WindowHandle {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if w := p.wm.Window(p.stack[i].window); w != nil && w.Role.Has(RoleModal) {
			return p.stack[i].window
		}
	}
	return WindowHandle{}
}

// TopPopup implements PopupStack.
func (p *Popups) TopPopup() (WindowHandle, bool) {
	if len(p.stack) == 0 {
		return WindowHandle{}, false
	}
	return p.stack[len(p.stack)-1].window, true
}

// CloseTopPopup implements PopupStack.
func (p *Popups) CloseTopPopup() WindowHandle {
	if len(p.stack) == 0 {
		return WindowHandle{}
	}
	return p.closeToLevel(len(p.stack) - 1)
}

// ClosePopupsOverWindow implements PopupStack. Popups that ref lives in (or
// that are ancestors of ref through parent links) are kept, as is every
// popup below them. A modal stops the closing.
func (p *Popups) ClosePopupsOverWindow(ref WindowHandle) {
	if len(p.stack) == 0 {
		return
	}
	keep := 0
	if ref.IsValid() {
		for i := len(p.stack) - 1; i >= 0; i-- {
			if p.isAncestorOrSelf(p.stack[i].window, ref) {
				keep = i + 1
				break
			}
		}
	}
	for keep < len(p.stack) {
		if w := p.wm.Window(p.stack[keep].window); w != nil && w.Role.Has(RoleModal) {
			keep++
			continue
		}
		break
	}
	if keep < len(p.stack) {
		p.closeToLevel(keep)
	}
}

func (p *Popups) closeToLevel(level int) WindowHandle {
	restore := p.stack[level].backup
	p.stack = p.stack[:level]
	return restore
}

// isAncestorOrSelf walks ref's parent and root chain looking for popup.
func (p *Popups) isAncestorOrSelf(popup, ref WindowHandle) bool {
	for h, guard := ref, 0; h.IsValid() && guard < 64; guard++ {
		if h == popup {
			return true
		}
		w := p.wm.Window(h)
		if w == nil {
			return false
		}
		if w.Root != h && w.Root == popup {
			return true
		}
		h = w.Parent
	}
	return false
}
