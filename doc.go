/*
Package nav implements keyboard and gamepad focus navigation for an
immediate-mode GUI, designed as idiomatic Go with a dedicated Context type
(not context.Context) owned by the frame loop.

# Overview

The UI is rebuilt every frame. Navigation never sees a widget tree: the
frame loop reports every focusable item with its rect while drawing, and
the Context scores those reports against the live request. A request
created at the start of frame N is scored during frame N and applied at
the start of frame N+1.

# Quick Start

	windows := nav.NewWindowStack()
	ctx := nav.New(nav.WithWindowManager(windows))
	main := windows.CreateWindow("Main", nav.WindowSpec{
	    Pos:  nav.Vec2{X: 0, Y: 0},
	    Size: nav.Vec2{X: 640, Y: 480},
	})

	for running {
	    windows.NewFrame()
	    in.Reset()
	    pollInput(in)           // backend/glfwinput or backend/tcellinput
	    in.UpdateKeyRepeat(dt)

	    ctx.Update(in, dt)
	    ctx.BeginWindow(main)
	    for _, b := range buttons {
	        ctx.ProcessItem(nav.ItemCandidate{ID: b.ID, Rect: b.Rect})
	        if ctx.IsActivated(b.ID) {
	            b.OnClick()
	        }
	    }
	    ctx.EndWindow(main)
	    ctx.EndFrame()

	    if r, ok := ctx.HighlightRect(); ok && ctx.IsHighlightVisible() {
	        drawHighlight(r)
	    }
	}

# Keyboard Reference

	Arrows           Move focus spatially
	Tab / Shift+Tab  Move focus in submission order, wrapping at the ends
	PageUp/PageDown  Move focus (or scroll) by a page
	Home / End       Focus the first / last item
	Space            Activate the focused item
	Enter            Activate the focused item for text input
	Escape           Cancel: active widget, menu layer, child, popup, focus
	Alt (tap)        Toggle between the menu layer and the main layer
	Ctrl+Tab         Window switcher (Ctrl+Shift+Tab goes backward)

# Gamepad Reference

	D-pad            Move focus spatially
	Left stick       Scroll the focused window (L1/R1 slow down/speed up)
	FaceDown (A)     Activate
	FaceUp (Y)       Activate for text input
	FaceRight (B)    Cancel
	FaceLeft (X)     Tap: toggle menu layer. Hold: window switcher (L1/R1 cycle)

# Scoring

Directional requests pick the item with the smallest box distance in the
requested quadrant, then the smallest center distance, then the smallest
axial distance (menu layer only). Items overlapping the reference on the
move axis are compared by their distance along the other axis. Exact ties
keep the earlier item when moving right or down and the later item when
moving left or up.

# Wrapping

When a request finds nothing, window code may call TryWrap while the
request is live. At EndFrame the remembered focus rect is moved to the
opposite edge of the content and the request is forwarded to the next
frame, so every item is known before the wrap is resolved.

# Collaborators

The Context talks to three interfaces: WindowManager (windows, focus
order), PopupStack (open popups and modals) and ScrollCoordinator (keeping
the focused item visible). WindowStack, Popups and WindowScroller are the
default implementations; an application with its own window system can
supply its own.

# Logging

Decisions are logged with log/slog under component=nav. Per-candidate
score traces are only emitted after SetVerbose(true).
*/
package nav
