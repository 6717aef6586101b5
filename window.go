package nav

// NavLayer is one of the two independent focus planes of a window.
type NavLayer int8

const (
	LayerMain NavLayer = iota // ordinary widgets
	LayerMenu                 // menu-bar items
	navLayerCount
)

func (l NavLayer) String() string {
	switch l {
	case LayerMain:
		return "Main"
	case LayerMenu:
		return "Menu"
	default:
		return "Invalid"
	}
}

func (l NavLayer) valid() bool { return l == LayerMain || l == LayerMenu }

// WindowHandle is a generational index into a WindowArena.
// The zero handle is invalid.
type WindowHandle struct {
	index uint32
	gen   uint32
}

// IsValid reports whether h was ever issued by an arena. A valid handle may
// still be stale; WindowArena.Get returns nil for those.
func (h WindowHandle) IsValid() bool { return h.gen != 0 }

type arenaSlot struct {
	gen uint32
	win *Window
}

// WindowArena owns windows and hands out generational handles, so parent,
// root and last-child links never dangle after a window is destroyed.
type WindowArena struct {
	slots []arenaSlot
	free  []uint32
}

// Alloc stores w and returns its handle. w.Handle is set.
func (a *WindowArena) Alloc(w *Window) WindowHandle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot{})
	}
	slot := &a.slots[idx]
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	slot.win = w
	h := WindowHandle{index: idx, gen: slot.gen}
	w.Handle = h
	return h
}

// Free releases the slot. Returns false for stale or invalid handles.
func (a *WindowArena) Free(h WindowHandle) bool {
	if a.Get(h) == nil {
		return false
	}
	a.slots[h.index].win = nil
	a.free = append(a.free, h.index)
	return true
}

// Get returns the window for h, or nil if h is invalid or stale.
func (a *WindowArena) Get(h WindowHandle) *Window {
	if !h.IsValid() || int(h.index) >= len(a.slots) {
		return nil
	}
	slot := a.slots[h.index]
	if slot.gen != h.gen {
		return nil
	}
	return slot.win
}

// Len returns the number of live windows.
func (a *WindowArena) Len() int {
	return len(a.slots) - len(a.free)
}

// WindowRole is the capability set describing how a window behaves.
// A window may hold several roles: a modal is also a popup, a child menu
// is also a popup.
type WindowRole uint16

const (
	RoleChild WindowRole = 1 << iota
	RolePopup
	RoleModal
	RoleTooltip
	RoleChildMenu
	RoleDockHost
	RoleMainMenuBar
)

// Has reports whether every capability in c is present.
func (r WindowRole) Has(c WindowRole) bool { return r&c == c }

// Any reports whether at least one capability in c is present.
func (r WindowRole) Any(c WindowRole) bool { return r&c != 0 }

// normalize adds the roles implied by others.
func (r WindowRole) normalize() WindowRole {
	if r.Any(RoleModal | RoleChildMenu | RoleTooltip) {
		r |= RolePopup
	}
	return r
}

// WindowFlags are behavior switches that are not roles.
type WindowFlags uint16

const (
	WindowNoNavInputs WindowFlags = 1 << iota // no keyboard/gamepad navigation inside
	WindowNoNavFocus                          // skipped by Ctrl+Tab and the windowing list
	WindowNoMove
	WindowNavFlattened // child whose items are scored as part of its parent
	WindowNoInputs
	WindowAlwaysAutoResize
)

// WindowNavMemory is what a window remembers about navigation between frames.
// Rects are relative to the window content origin.
type WindowNavMemory struct {
	LastIDs   [navLayerCount]ID
	RectRel   [navLayerCount]Rect
	LastChild WindowHandle // child to return to when leaving the Menu layer
}

// Window is the navigation view of a GUI window.
type Window struct {
	Handle     WindowHandle
	ID         ID
	Name       string
	Role       WindowRole
	Flags      WindowFlags
	Parent     WindowHandle
	Root       WindowHandle
	RootForNav WindowHandle // differs from Root only for flattened children
	ChildID    ID           // item id of this child inside its parent
	FocusScope ID

	Pos     Vec2
	Size    Vec2
	Padding Vec2
	Scroll  Vec2
	// ScrollMax is recomputed by EndWindow from ContentSize.
	ScrollMax   Vec2
	ContentSize Vec2
	// ContentSizeExplicit overrides the measured content size per axis when > 0.
	ContentSizeExplicit Vec2
	InnerRect           Rect
	ClipRect            Rect

	WasActive bool
	Active    bool
	Appearing bool

	Nav WindowNavMemory

	navLayersActiveMask     uint8
	navLayersActiveMaskNext uint8
	contentMax              Vec2 // measured this frame, relative
	navHasScroll            bool

	scrollTarget            Vec2 // maxDist when unset
	scrollTargetCenterRatio Vec2
}

func newWindow(name string) *Window {
	w := &Window{
		Name: name,
		ID:   HashID(name, 0),
	}
	for i := range w.Nav.RectRel {
		w.Nav.RectRel[i] = InvertedRect()
	}
	w.clearScrollTarget()
	return w
}

// Rect returns the outer window rectangle.
func (w *Window) Rect() Rect {
	return Rect{Min: w.Pos, Max: w.Pos.Add(w.Size)}
}

// ContentOrigin is the absolute position of content coordinate (0,0).
func (w *Window) ContentOrigin() Vec2 {
	return w.Pos.Add(w.Padding).Sub(w.Scroll)
}

// RectAbsToRel converts a screen rect to content-relative coordinates.
func (w *Window) RectAbsToRel(r Rect) Rect {
	return r.Translate(Vec2{}.Sub(w.ContentOrigin()))
}

// RectRelToAbs converts a content-relative rect to screen coordinates.
func (w *Window) RectRelToAbs(r Rect) Rect {
	return r.Translate(w.ContentOrigin())
}

// HasNavLayer reports whether the window submitted nav items on layer last frame.
func (w *Window) HasNavLayer(l NavLayer) bool {
	return w.navLayersActiveMask&(1<<uint(l)) != 0
}

// IsChild reports whether the window is a child embedded in its parent.
func (w *Window) IsChild() bool { return w.Role.Has(RoleChild) }

// IsPopup reports whether the window is on the popup stack.
func (w *Window) IsPopup() bool { return w.Role.Has(RolePopup) }

// IsRoot reports whether the window is its own root.
func (w *Window) IsRoot() bool { return w.Root == w.Handle }

// HasScrollY reports whether the window can scroll vertically.
func (w *Window) HasScrollY() bool { return w.ScrollMax.Y > 0 }

// HasScrollX reports whether the window can scroll horizontally.
func (w *Window) HasScrollX() bool { return w.ScrollMax.X > 0 }

func (w *Window) clearScrollTarget() {
	w.scrollTarget = Vec2{X: maxDist, Y: maxDist}
	w.scrollTargetCenterRatio = Vec2{X: 0.5, Y: 0.5}
}

// updateRects refreshes InnerRect and ClipRect from Pos and Size.
func (w *Window) updateRects() {
	w.InnerRect = Rect{Min: w.Pos, Max: w.Pos.Add(w.Size)}
	w.ClipRect = w.InnerRect
}

// finishContent commits the content measured during the frame.
func (w *Window) finishContent() {
	size := w.contentMax
	if w.ContentSizeExplicit.X > 0 {
		size.X = w.ContentSizeExplicit.X
	}
	if w.ContentSizeExplicit.Y > 0 {
		size.Y = w.ContentSizeExplicit.Y
	}
	w.ContentSize = size
	inner := w.InnerRect.Size()
	w.ScrollMax = Vec2{
		X: maxf(0, size.X+w.Padding.X*2-inner.X),
		Y: maxf(0, size.Y+w.Padding.Y*2-inner.Y),
	}
	w.navHasScroll = w.ScrollMax.X > 0 || w.ScrollMax.Y > 0
	w.Scroll = Vec2{X: clampf(w.Scroll.X, 0, w.ScrollMax.X), Y: clampf(w.Scroll.Y, 0, w.ScrollMax.Y)}
}

// measureItem grows the frame's content extents to cover an item rect.
func (w *Window) measureItem(abs Rect) {
	rel := w.RectAbsToRel(abs)
	w.contentMax.X = maxf(w.contentMax.X, rel.Max.X)
	w.contentMax.Y = maxf(w.contentMax.Y, rel.Max.Y)
}

