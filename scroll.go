package nav

// ScrollFlags select how ScrollToRect brings a rect into view.
type ScrollFlags uint16

// ScrollNone lets ScrollToRect pick the edge behavior on both axes.
const ScrollNone ScrollFlags = 0

const (
	ScrollKeepVisibleEdgeX   ScrollFlags = 1 << iota // scroll just enough to show the item on X
	ScrollKeepVisibleEdgeY                           // scroll just enough to show the item on Y
	ScrollKeepVisibleCenterX                         // center the item on X if it is not fully visible
	ScrollKeepVisibleCenterY                         // center the item on Y if it is not fully visible
	ScrollAlwaysCenterX                              // always center on X
	ScrollAlwaysCenterY                              // always center on Y
	ScrollNoScrollParent                             // don't forward the request to parent windows

	scrollMaskX = ScrollKeepVisibleEdgeX | ScrollKeepVisibleCenterX | ScrollAlwaysCenterX
	scrollMaskY = ScrollKeepVisibleEdgeY | ScrollKeepVisibleCenterY | ScrollAlwaysCenterY
)

// WindowScroller is the default ScrollCoordinator. Scroll requests are
// stored as per-window targets and committed when the window next begins.
type WindowScroller struct {
	wm WindowManager
	// Spacing is the margin kept between a scrolled-to item and the edge.
	Spacing Vec2
}

// NewWindowScroller creates a scroller that forwards to parent windows
// through wm.
func NewWindowScroller(wm WindowManager, spacing Vec2) *WindowScroller {
	return &WindowScroller{wm: wm, Spacing: spacing}
}

// ScrollToRect implements ScrollCoordinator.
func (s *WindowScroller) ScrollToRect(w *Window, itemRect Rect, flags ScrollFlags) Vec2 {
	windowRect := Rect{Min: w.InnerRect.Min.Sub(Vec2{X: 1, Y: 1}), Max: w.InnerRect.Max.Add(Vec2{X: 1, Y: 1})}

	if flags&scrollMaskX == 0 {
		flags |= ScrollKeepVisibleEdgeX
	}
	if flags&scrollMaskY == 0 {
		flags |= ScrollKeepVisibleEdgeY
	}

	fullyVisibleX := itemRect.Min.X >= windowRect.Min.X && itemRect.Max.X <= windowRect.Max.X
	fullyVisibleY := itemRect.Min.Y >= windowRect.Min.Y && itemRect.Max.Y <= windowRect.Max.Y
	canFitX := itemRect.W()+s.Spacing.X*2 <= windowRect.W()
	canFitY := itemRect.H()+s.Spacing.Y*2 <= windowRect.H()

	if flags&ScrollKeepVisibleEdgeX != 0 && !fullyVisibleX {
		if itemRect.Min.X < windowRect.Min.X || !canFitX {
			setScrollFromPosX(w, itemRect.Min.X-s.Spacing.X-w.Pos.X, 0)
		} else if itemRect.Max.X >= windowRect.Max.X {
			setScrollFromPosX(w, itemRect.Max.X+s.Spacing.X-w.Pos.X, 1)
		}
	} else if (flags&ScrollKeepVisibleCenterX != 0 && !fullyVisibleX) || flags&ScrollAlwaysCenterX != 0 {
		if canFitX {
			setScrollFromPosX(w, floorf((itemRect.Min.X+itemRect.Max.X)*0.5)-w.Pos.X, 0.5)
		} else {
			setScrollFromPosX(w, itemRect.Min.X-w.Pos.X, 0)
		}
	}

	if flags&ScrollKeepVisibleEdgeY != 0 && !fullyVisibleY {
		if itemRect.Min.Y < windowRect.Min.Y || !canFitY {
			setScrollFromPosY(w, itemRect.Min.Y-s.Spacing.Y-w.Pos.Y, 0)
		} else if itemRect.Max.Y >= windowRect.Max.Y {
			setScrollFromPosY(w, itemRect.Max.Y+s.Spacing.Y-w.Pos.Y, 1)
		}
	} else if (flags&ScrollKeepVisibleCenterY != 0 && !fullyVisibleY) || flags&ScrollAlwaysCenterY != 0 {
		if canFitY {
			setScrollFromPosY(w, floorf((itemRect.Min.Y+itemRect.Max.Y)*0.5)-w.Pos.Y, 0.5)
		} else {
			setScrollFromPosY(w, itemRect.Min.Y-w.Pos.Y, 0)
		}
	}

	next := s.NextScroll(w)
	delta := next.Sub(w.Scroll)

	// Scroll parents so the child itself becomes visible.
	if flags&ScrollNoScrollParent == 0 && w.IsChild() && s.wm != nil {
		if parent := s.wm.Window(w.Parent); parent != nil {
			// When centering on an axis, only center the parent too if the
			// child rect was centered.
			if flags&ScrollAlwaysCenterX != 0 {
				flags = flags&^scrollMaskX | ScrollKeepVisibleCenterX
			}
			if flags&ScrollAlwaysCenterY != 0 {
				flags = flags&^scrollMaskY | ScrollKeepVisibleCenterY
			}
			delta = delta.Add(s.ScrollToRect(parent, itemRect.Translate(Vec2{}.Sub(delta)), flags))
		}
	}
	return delta
}

// SetScrollX implements ScrollCoordinator.
func (s *WindowScroller) SetScrollX(w *Window, x float32) {
	w.scrollTarget.X = x
	w.scrollTargetCenterRatio.X = 0
}

// SetScrollY implements ScrollCoordinator.
func (s *WindowScroller) SetScrollY(w *Window, y float32) {
	w.scrollTarget.Y = y
	w.scrollTargetCenterRatio.Y = 0
}

// NextScroll implements ScrollCoordinator.
func (s *WindowScroller) NextScroll(w *Window) Vec2 {
	scroll := w.Scroll
	inner := w.InnerRect.Size()
	if w.scrollTarget.X < maxDist {
		scroll.X = w.scrollTarget.X - w.scrollTargetCenterRatio.X*inner.X
	}
	if w.scrollTarget.Y < maxDist {
		scroll.Y = w.scrollTarget.Y - w.scrollTargetCenterRatio.Y*inner.Y
	}
	scroll = scroll.Floor()
	return Vec2{
		X: clampf(scroll.X, 0, w.ScrollMax.X),
		Y: clampf(scroll.Y, 0, w.ScrollMax.Y),
	}
}

// setScrollFromPosX targets window-local x at the given ratio of the inner
// width (0 = left edge, 0.5 = center, 1 = right edge).
func setScrollFromPosX(w *Window, localX, ratio float32) {
	w.scrollTarget.X = floorf(localX + w.Scroll.X)
	w.scrollTargetCenterRatio.X = ratio
}

func setScrollFromPosY(w *Window, localY, ratio float32) {
	w.scrollTarget.Y = floorf(localY + w.Scroll.Y)
	w.scrollTargetCenterRatio.Y = ratio
}
