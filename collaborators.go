package nav

// WindowManager owns windows and their focus order. Navigation reads the
// hierarchy through it and asks it to reorder or move windows.
type WindowManager interface {
	// Window returns the window for h, or nil for invalid/stale handles.
	Window(h WindowHandle) *Window
	// FocusOrder lists root and child windows back-to-front: the most
	// recently focused window is last.
	FocusOrder() []WindowHandle
	// IsNavFocusable reports whether Ctrl+Tab may select the window.
	IsNavFocusable(h WindowHandle) bool
	// BringToFocusFront moves a root window to the end of FocusOrder.
	BringToFocusFront(h WindowHandle)
	// SetWindowPos moves a window (used by windowing move-via-keys).
	SetWindowPos(h WindowHandle, pos Vec2)
}

// PopupStack is the open popup/modal stack.
type PopupStack interface {
	// TopMostModal returns the top-most open modal, or the zero handle.
	TopMostModal() WindowHandle
	// TopPopup returns the top-most open popup of any kind.
	TopPopup() (WindowHandle, bool)
	// CloseTopPopup closes the top-most popup and returns the window that
	// should receive focus afterwards (zero handle if none).
	CloseTopPopup() WindowHandle
	// ClosePopupsOverWindow closes every popup that is not ref or an
	// ancestor of ref. A zero ref closes all non-modal popups.
	ClosePopupsOverWindow(ref WindowHandle)
}

// ScrollCoordinator keeps focused items visible.
type ScrollCoordinator interface {
	// ScrollToRect requests the scroll needed to make rect (absolute)
	// visible and returns the scroll delta that will apply next frame.
	ScrollToRect(w *Window, rect Rect, flags ScrollFlags) Vec2
	SetScrollX(w *Window, x float32)
	SetScrollY(w *Window, y float32)
	// NextScroll returns the scroll position the window will use next frame.
	NextScroll(w *Window) Vec2
}
