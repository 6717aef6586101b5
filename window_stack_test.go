package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowArena_StaleHandles(t *testing.T) {
	var a WindowArena
	h1 := a.Alloc(newWindow("one"))
	h2 := a.Alloc(newWindow("two"))
	require.Equal(t, 2, a.Len())
	assert.Equal(t, h1, a.Get(h1).Handle)

	require.True(t, a.Free(h1))
	assert.Nil(t, a.Get(h1))
	assert.False(t, a.Free(h1), "double free")

	h3 := a.Alloc(newWindow("three"))
	assert.NotEqual(t, h1, h3, "reused slot gets a new generation")
	assert.Nil(t, a.Get(h1))
	assert.Equal(t, "three", a.Get(h3).Name)
	assert.Equal(t, "two", a.Get(h2).Name)
	assert.Equal(t, 2, a.Len())

	assert.Nil(t, a.Get(WindowHandle{}))
	assert.False(t, WindowHandle{}.IsValid())
}

func TestCreateWindow_Hierarchy(t *testing.T) {
	s := NewWindowStack()
	root := s.CreateWindow("Root", WindowSpec{})
	child := s.CreateWindow("Child", WindowSpec{Role: RoleChild, Parent: root})
	flat := s.CreateWindow("Flat", WindowSpec{Role: RoleChild, Parent: root, Flags: WindowNavFlattened})
	popup := s.CreateWindow("Popup", WindowSpec{Role: RolePopup, Parent: root})
	modal := s.CreateWindow("Modal", WindowSpec{Role: RoleModal, FocusScope: 99})

	rw := s.Window(root)
	assert.True(t, rw.IsRoot())
	assert.Equal(t, HashID("Root", 0), rw.ID)
	assert.Equal(t, rw.ID, rw.FocusScope)
	assert.Zero(t, rw.ChildID)

	cw := s.Window(child)
	assert.True(t, cw.IsChild())
	assert.False(t, cw.IsRoot())
	assert.Equal(t, root, cw.Root)
	assert.Equal(t, child, cw.RootForNav)
	assert.Equal(t, HashID("Child", rw.ID), cw.ID)
	assert.Equal(t, cw.ID, cw.ChildID)

	assert.Equal(t, root, s.Window(flat).RootForNav, "flattened children navigate with their parent")

	pw := s.Window(popup)
	assert.True(t, pw.IsRoot(), "popups are their own root")
	assert.Equal(t, root, pw.Parent)

	mw := s.Window(modal)
	assert.True(t, mw.IsPopup())
	assert.True(t, mw.Role.Has(RoleModal|RolePopup))
	assert.Equal(t, ID(99), mw.FocusScope)

	assert.Equal(t, []WindowHandle{root, child, flat, popup, modal}, s.FocusOrder())
	assert.Equal(t, 5, s.Len())
}

func TestDestroyWindow(t *testing.T) {
	s := NewWindowStack()
	a := s.CreateWindow("A", WindowSpec{})
	b := s.CreateWindow("B", WindowSpec{})

	got, ok := s.FindByName("A")
	require.True(t, ok)
	assert.Equal(t, a, got)

	require.True(t, s.DestroyWindow(a))
	assert.False(t, s.DestroyWindow(a))
	assert.Nil(t, s.Window(a))
	_, ok = s.FindByName("A")
	assert.False(t, ok)
	assert.Equal(t, []WindowHandle{b}, s.FocusOrder())
}

func TestBringToFocusFront(t *testing.T) {
	s := NewWindowStack()
	a := s.CreateWindow("A", WindowSpec{})
	b := s.CreateWindow("B", WindowSpec{})
	c := s.CreateWindow("C", WindowSpec{})

	s.BringToFocusFront(a)
	assert.Equal(t, []WindowHandle{b, c, a}, s.FocusOrder())
	s.BringToFocusFront(a)
	assert.Equal(t, []WindowHandle{b, c, a}, s.FocusOrder())
	s.BringToFocusFront(WindowHandle{})
	assert.Len(t, s.FocusOrder(), 3)
}

func TestIsNavFocusable(t *testing.T) {
	s := NewWindowStack()
	root := s.CreateWindow("Root", WindowSpec{})
	child := s.CreateWindow("Child", WindowSpec{Role: RoleChild, Parent: root})
	hidden := s.CreateWindow("Hidden", WindowSpec{Flags: WindowNoNavFocus})

	assert.False(t, s.IsNavFocusable(root), "not shown yet")
	for _, h := range []WindowHandle{root, child, hidden} {
		s.Window(h).Active = true
	}
	s.NewFrame()
	assert.True(t, s.IsNavFocusable(root))
	assert.False(t, s.IsNavFocusable(child))
	assert.False(t, s.IsNavFocusable(hidden))
	assert.False(t, s.Window(root).Active, "NewFrame rolls Active into WasActive")
}

func TestDisplayName(t *testing.T) {
	s := NewWindowStack()
	tests := []struct {
		name string
		spec WindowSpec
		want string
	}{
		{"Inventory", WindowSpec{}, "Inventory"},
		{"Tools##2", WindowSpec{}, "Tools"},
		{"##ctx", WindowSpec{Role: RolePopup}, "(Popup)"},
		{"##menubar", WindowSpec{Role: RoleMainMenuBar}, "(Main menu bar)"},
		{"##anon", WindowSpec{}, "(Untitled)"},
	}
	for _, tt := range tests {
		h := s.CreateWindow(tt.name, tt.spec)
		assert.Equal(t, tt.want, DisplayName(s.Window(h)), tt.name)
	}
}

func TestWindow_RectConversions(t *testing.T) {
	s := NewWindowStack()
	h := s.CreateWindow("W", WindowSpec{Pos: Vec2{X: 100, Y: 50}, Size: Vec2{X: 200, Y: 100}, Padding: Vec2{X: 8, Y: 8}})
	w := s.Window(h)
	w.Scroll = Vec2{Y: 30}

	assert.Equal(t, Vec2{X: 108, Y: 28}, w.ContentOrigin())
	rel := RectXYWH(0, 40, 50, 20)
	abs := w.RectRelToAbs(rel)
	assert.Equal(t, RectXYWH(108, 68, 50, 20), abs)
	assert.Equal(t, rel, w.RectAbsToRel(abs))
	assert.Equal(t, RectXYWH(100, 50, 200, 100), w.Rect())
}

func TestWindow_ContentAndScrollMax(t *testing.T) {
	s := NewWindowStack()
	h := s.CreateWindow("W", WindowSpec{Size: Vec2{X: 200, Y: 100}, Padding: Vec2{X: 4, Y: 4}})
	w := s.Window(h)

	w.measureItem(RectXYWH(4, 4, 100, 20))
	w.measureItem(RectXYWH(4, 150, 300, 20))
	w.Scroll = Vec2{Y: 500}
	w.finishContent()
	assert.Equal(t, Vec2{X: 300, Y: 166}, w.ContentSize)
	assert.Equal(t, Vec2{X: 108, Y: 74}, w.ScrollMax)
	assert.Equal(t, float32(74), w.Scroll.Y, "scroll is clamped")
	assert.True(t, w.HasScrollX())
	assert.True(t, w.HasScrollY())
}
