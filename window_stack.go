package nav

import "strings"

// WindowSpec describes a window to create.
type WindowSpec struct {
	Role    WindowRole
	Flags   WindowFlags
	Parent  WindowHandle // required for RoleChild and child menus
	Pos     Vec2
	Size    Vec2
	Padding Vec2
	// FocusScope defaults to the window ID.
	FocusScope ID
}

// WindowStack is the default WindowManager: an arena of windows plus a
// back-to-front focus order.
type WindowStack struct {
	arena      WindowArena
	focusOrder []WindowHandle
	byID       map[ID]WindowHandle
}

// NewWindowStack creates an empty stack.
func NewWindowStack() *WindowStack {
	return &WindowStack{
		focusOrder: make([]WindowHandle, 0, 16),
		byID:       make(map[ID]WindowHandle),
	}
}

// CreateWindow adds a window on top of the focus order. Child windows hash
// their ID and ChildID under the parent's ID.
func (s *WindowStack) CreateWindow(name string, spec WindowSpec) WindowHandle {
	w := newWindow(name)
	w.Role = spec.Role.normalize()
	w.Flags = spec.Flags
	w.Pos = spec.Pos
	w.Size = spec.Size
	w.Padding = spec.Padding
	h := s.arena.Alloc(w)

	w.Root = h
	w.RootForNav = h
	if parent := s.arena.Get(spec.Parent); parent != nil && w.Role.Any(RoleChild|RoleChildMenu) {
		w.Parent = spec.Parent
		if w.Role.Has(RoleChild) {
			w.ID = HashID(name, parent.ID)
			w.ChildID = w.ID
			w.Root = parent.Root
			if w.Flags&WindowNavFlattened != 0 {
				w.RootForNav = parent.RootForNav
			}
		}
	} else if spec.Parent.IsValid() {
		// Popups keep the parent link for popup-chain checks but are roots.
		w.Parent = spec.Parent
	}
	w.FocusScope = spec.FocusScope
	if w.FocusScope == 0 {
		w.FocusScope = w.ID
	}
	w.updateRects()

	s.byID[w.ID] = h
	s.focusOrder = append(s.focusOrder, h)
	return h
}

// DestroyWindow removes a window. Children are not destroyed; their handles
// to it simply go stale.
func (s *WindowStack) DestroyWindow(h WindowHandle) bool {
	w := s.arena.Get(h)
	if w == nil {
		return false
	}
	delete(s.byID, w.ID)
	s.removeFromFocusOrder(h)
	return s.arena.Free(h)
}

// FindByName returns the handle of the root window with that name.
func (s *WindowStack) FindByName(name string) (WindowHandle, bool) {
	h, ok := s.byID[HashID(name, 0)]
	if ok && s.arena.Get(h) == nil {
		return WindowHandle{}, false
	}
	return h, ok
}

// Window implements WindowManager.
func (s *WindowStack) Window(h WindowHandle) *Window {
	return s.arena.Get(h)
}

// Len returns the number of live windows.
func (s *WindowStack) Len() int { return s.arena.Len() }

// FocusOrder implements WindowManager.
func (s *WindowStack) FocusOrder() []WindowHandle {
	return s.focusOrder
}

// IsNavFocusable implements WindowManager: the window was shown last frame,
// is a root and doesn't opt out.
func (s *WindowStack) IsNavFocusable(h WindowHandle) bool {
	w := s.arena.Get(h)
	return w != nil && w.WasActive && w.IsRoot() && w.Flags&WindowNoNavFocus == 0
}

// BringToFocusFront implements WindowManager.
func (s *WindowStack) BringToFocusFront(h WindowHandle) {
	n := len(s.focusOrder)
	if n > 0 && s.focusOrder[n-1] == h {
		return
	}
	if !s.removeFromFocusOrder(h) {
		return
	}
	s.focusOrder = append(s.focusOrder, h)
}

// SetWindowPos implements WindowManager.
func (s *WindowStack) SetWindowPos(h WindowHandle, pos Vec2) {
	if w := s.arena.Get(h); w != nil {
		w.Pos = pos
		w.updateRects()
	}
}

// NewFrame rolls Active into WasActive. Call it once per frame before
// Context.Update.
func (s *WindowStack) NewFrame() {
	for _, h := range s.focusOrder {
		if w := s.arena.Get(h); w != nil {
			w.WasActive = w.Active
			w.Active = false
		}
	}
}

// DisplayName returns the label shown in the windowing list. Anything after
// "##" is an id suffix and is hidden.
func DisplayName(w *Window) string {
	name, _, _ := strings.Cut(w.Name, "##")
	if name != "" {
		return name
	}
	switch {
	case w.Role.Has(RolePopup):
		return "(Popup)"
	case w.Role.Has(RoleMainMenuBar):
		return "(Main menu bar)"
	default:
		return "(Untitled)"
	}
}

func (s *WindowStack) removeFromFocusOrder(h WindowHandle) bool {
	for i, fh := range s.focusOrder {
		if fh == h {
			s.focusOrder = append(s.focusOrder[:i], s.focusOrder[i+1:]...)
			return true
		}
	}
	return false
}
