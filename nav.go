package nav

import "log/slog"

// ItemFlags describe how an item takes part in navigation.
type ItemFlags uint16

const (
	ItemDisabled          ItemFlags = 1 << iota // visible but not selectable
	ItemNoNav                                   // never focused by keyboard/gamepad
	ItemNoNavDefaultFocus                       // only used by init requests as a fallback
	ItemNoTabStop                               // skipped by Tab/Shift+Tab
	ItemInputable                               // text-like input: Tab activates it for input
)

// MoveFlags qualify a move request.
type MoveFlags uint16

const (
	MoveLoopX               MoveFlags = 1 << iota // leaving an edge re-enters the same row from the other side
	MoveLoopY                                     // leaving an edge re-enters the same column
	MoveWrapX                                     // leaving an edge continues on the next/previous row
	MoveWrapY                                     // leaving an edge continues on the next/previous column
	MoveAllowCurrentNavID                         // the focused item may be the result
	MoveAlsoScoreVisibleSet                       // keep a separate result for visible items (PageUp/PageDown)
	MoveScrollToEdgeY                             // jump scroll to 0 / ScrollMax instead of keeping the item visible
	MoveForwarded                                 // re-armed by a wrap, resolved next frame
	MoveDebugNoResult                             // force "no result" to test wrap paths
	MoveTabbing                                   // Tab/Shift+Tab request
	MoveActivate                                  // activate the result when applied
	MoveDontSetNavHighlight                       // don't re-enable the highlight

	MoveWrapMask = MoveLoopX | MoveLoopY | MoveWrapX | MoveWrapY
)

// ActivateFlags qualify an activation request.
type ActivateFlags uint8

const (
	ActivateNone               ActivateFlags = 0
	ActivatePreferInput        ActivateFlags = 1 << 0 // text-capable widgets enter text mode
	ActivatePreferTweak        ActivateFlags = 1 << 1 // sliders/drags enter tweak mode
	ActivateTryToPreserveState ActivateFlags = 1 << 2 // keep existing edit state (e.g. cursor)
)

// InputSource is the device that last drove navigation.
type InputSource uint8

const (
	InputSourceNone InputSource = iota
	InputSourceMouse
	InputSourceKeyboard
	InputSourceGamepad
)

func (s InputSource) String() string {
	switch s {
	case InputSourceMouse:
		return "Mouse"
	case InputSourceKeyboard:
		return "Keyboard"
	case InputSourceGamepad:
		return "Gamepad"
	default:
		return "None"
	}
}

// ItemCandidate is one focusable item reported during the frame.
type ItemCandidate struct {
	ID   ID
	Rect Rect // tight bounding box, absolute
	// NavRect is used for spatial tests. Zero means Rect.
	NavRect    Rect
	Flags      ItemFlags
	Layer      NavLayer
	FocusScope ID
}

func (it *ItemCandidate) navRect() Rect {
	if it.NavRect == (Rect{}) {
		return it.Rect
	}
	return it.NavRect
}

// ScoreResult is the best candidate found so far for a request.
// Distances equal to maxDist mean "no winner yet".
type ScoreResult struct {
	ID         ID
	FocusScope ID
	Window     WindowHandle
	RectRel    Rect
	Flags      ItemFlags
	DistBox    float32
	DistCenter float32
	DistAxial  float32
}

func emptyResult() ScoreResult {
	return ScoreResult{DistBox: maxDist, DistCenter: maxDist, DistAxial: maxDist}
}

// withItem returns r with the item fields taken from it, keeping distances.
func (r ScoreResult) withItem(w *Window, it *ItemCandidate) ScoreResult {
	r.ID = it.ID
	r.FocusScope = it.FocusScope
	r.Window = w.Handle
	r.RectRel = w.RectAbsToRel(it.navRect())
	r.Flags = it.Flags
	return r
}

// moveRequest is the single live directional/tabbing request.
type moveRequest struct {
	submitted          bool
	scoring            bool
	forwardToNextFrame bool
	dir                Dir
	clipDir            Dir
	flags              MoveFlags
	scrollFlags        ScrollFlags
	keyMods            KeyMod
}

// tabbingState drives the order-based Tab traversal.
type tabbingState struct {
	dir     int // -1 backward, 0 first item, +1 forward
	counter int
}

// Context is the navigation state owned by the frame loop. It is not safe
// for concurrent use: every method must be called from the UI goroutine.
type Context struct {
	cfg      Config
	log      *slog.Logger
	wm       WindowManager
	popups   PopupStack
	scroller ScrollCoordinator

	input *InputState
	dt    float32
	frame uint64

	windowStack []WindowHandle // windows between BeginWindow and EndWindow

	activeID     ID
	activeWindow WindowHandle

	navWindow      WindowHandle
	navID          ID
	navFocusScope  ID
	navLayer       NavLayer
	navIDIsAlive   bool
	navInputSource InputSource

	navActivateID        ID
	navActivateDownID    ID
	navActivatePressedID ID
	navActivateInputID   ID
	navActivateFlags     ActivateFlags
	navNextActivateID    ID
	navNextActivateFlags ActivateFlags

	navJustMovedToID         ID
	navJustMovedToFocusScope ID
	navJustMovedToKeyMods    KeyMod

	navDisableHighlight  bool
	navDisableMouseHover bool
	navMousePosDirty     bool
	navAnyRequest        bool
	navActive            bool
	navVisible           bool
	wantSetMousePos      bool
	mousePos             Vec2

	navInitRequest         bool
	navInitRequestFromMove bool
	navInitResultID        ID
	navInitResultRectRel   Rect

	move               moveRequest
	resultLocal        ScoreResult
	resultLocalVisible ScoreResult
	resultOther        ScoreResult
	tabbingFirst       ScoreResult
	tabbing            tabbingState
	scoringRect        Rect
	scoringNoClipRect  Rect

	windowing windowingState
}

// Option configures a Context.
type Option func(*Context)

// WithConfig sets the configuration.
func WithConfig(cfg Config) Option {
	return func(ctx *Context) { ctx.cfg = cfg }
}

// WithLogger sets the logger. The default writes text to stderr and only
// shows Debug records after SetVerbose(true).
func WithLogger(l *slog.Logger) Option {
	return func(ctx *Context) { ctx.log = l }
}

// WithWindowManager sets the window manager collaborator.
func WithWindowManager(wm WindowManager) Option {
	return func(ctx *Context) { ctx.wm = wm }
}

// WithPopups sets the popup stack collaborator.
func WithPopups(p PopupStack) Option {
	return func(ctx *Context) { ctx.popups = p }
}

// WithScroller sets the scroll coordinator collaborator.
func WithScroller(s ScrollCoordinator) Option {
	return func(ctx *Context) { ctx.scroller = s }
}

// New creates a navigation context. Collaborators that are not supplied
// default to a WindowStack, a Popups stack over it and a WindowScroller.
func New(opts ...Option) *Context {
	ctx := &Context{
		cfg:                 DefaultConfig(),
		log:                 defaultLogger,
		navDisableHighlight: true,
		navInputSource:      InputSourceNone,
		windowStack:         make([]WindowHandle, 0, 8),
		resultLocal:         emptyResult(),
		resultLocalVisible:  emptyResult(),
		resultOther:         emptyResult(),
		tabbingFirst:        emptyResult(),
		scoringNoClipRect:   InvertedRect(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.wm == nil {
		ctx.wm = NewWindowStack()
	}
	if ctx.popups == nil {
		ctx.popups = NewPopups(ctx.wm)
	}
	if ctx.scroller == nil {
		ctx.scroller = NewWindowScroller(ctx.wm, ctx.cfg.ItemSpacing)
	}
	ctx.log = ctx.log.With("component", "nav")
	return ctx
}

// Config returns the active configuration.
func (ctx *Context) Config() Config { return ctx.cfg }

// SetDisplaySize updates the display size after a resize. It bounds the
// preferred mouse position and centers the window list.
func (ctx *Context) SetDisplaySize(size Vec2) { ctx.cfg.DisplaySize = size }

// Windows returns the window manager in use.
func (ctx *Context) Windows() WindowManager { return ctx.wm }

func (ctx *Context) window(h WindowHandle) *Window {
	if !h.IsValid() {
		return nil
	}
	return ctx.wm.Window(h)
}

// NavID returns the focused item, or 0.
func (ctx *Context) NavID() ID { return ctx.navID }

// NavWindow returns the window owning focus (zero handle if none).
func (ctx *Context) NavWindow() WindowHandle { return ctx.navWindow }

// NavLayer returns the layer focus is on.
func (ctx *Context) NavLayer() NavLayer { return ctx.navLayer }

// FocusScope returns the focus scope of the focused item.
func (ctx *Context) FocusScope() ID { return ctx.navFocusScope }

// InputSource returns the device that last drove navigation.
func (ctx *Context) InputSource() InputSource { return ctx.navInputSource }

// NavActive reports whether keyboard/gamepad navigation is enabled and has
// a window to act on. Applications use it to route input away from their
// own shortcuts.
func (ctx *Context) NavActive() bool { return ctx.navActive }

// NavVisible reports whether a nav highlight or the windowing overlay is
// shown.
func (ctx *Context) NavVisible() bool { return ctx.navVisible }

// IsHighlightVisible reports whether the focused item should be drawn
// with the nav highlight.
func (ctx *Context) IsHighlightVisible() bool {
	return ctx.navID != 0 && !ctx.navDisableHighlight
}

// HighlightRect returns the focused item rect in screen coordinates.
func (ctx *Context) HighlightRect() (Rect, bool) {
	w := ctx.window(ctx.navWindow)
	if w == nil || ctx.navID == 0 {
		return Rect{}, false
	}
	rel := w.Nav.RectRel[ctx.navLayer]
	if rel.IsInverted() {
		return Rect{}, false
	}
	return w.RectRelToAbs(rel), true
}

// DisableMouseHover reports whether mouse hovering should be ignored
// because the last focus change came from keyboard/gamepad.
func (ctx *Context) DisableMouseHover() bool { return ctx.navDisableMouseHover }

// WantSetMousePos reports whether the application should warp the mouse to
// MousePos this frame.
func (ctx *Context) WantSetMousePos() bool { return ctx.wantSetMousePos }

// MousePos returns the preferred mouse position when WantSetMousePos is set.
func (ctx *Context) MousePos() Vec2 { return ctx.mousePos }

// JustMovedToID returns the item focus moved to this frame, or 0.
func (ctx *Context) JustMovedToID() ID { return ctx.navJustMovedToID }

// JustMovedToKeyMods returns the modifiers held when the move was requested.
func (ctx *Context) JustMovedToKeyMods() KeyMod { return ctx.navJustMovedToKeyMods }

// ActivateID returns the item activated this frame (press), or 0.
func (ctx *Context) ActivateID() ID { return ctx.navActivateID }

// ActivateDownID returns the item whose activate key is held, or 0.
func (ctx *Context) ActivateDownID() ID { return ctx.navActivateDownID }

// ActivatePressedID returns the item whose activate key was pressed, or 0.
func (ctx *Context) ActivatePressedID() ID { return ctx.navActivatePressedID }

// ActivateInputID returns the item asked to enter text input, or 0.
func (ctx *Context) ActivateInputID() ID { return ctx.navActivateInputID }

// ActivateFlags qualifies the current activation.
func (ctx *Context) ActivateFlags() ActivateFlags { return ctx.navActivateFlags }

// IsActivated reports whether id was activated or asked for input this frame.
func (ctx *Context) IsActivated(id ID) bool {
	return id != 0 && (ctx.navActivateID == id || ctx.navActivateInputID == id)
}

// AnyRequest reports whether a move or init request is being scored.
func (ctx *Context) AnyRequest() bool { return ctx.navAnyRequest }

// ActiveID returns the widget currently being interacted with, or 0.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// SetActiveID records the widget being interacted with (a text field in
// edit mode, a slider being dragged). Navigation cancels clear it.
func (ctx *Context) SetActiveID(id ID, h WindowHandle) {
	ctx.activeID = id
	ctx.activeWindow = h
}

// ClearActiveID ends the current interaction.
func (ctx *Context) ClearActiveID() {
	ctx.SetActiveID(0, WindowHandle{})
}

// SetFocus establishes focus on an item of the current nav window. rectRel
// is relative to the window content origin.
func (ctx *Context) SetFocus(id ID, layer NavLayer, focusScope ID, rectRel Rect) {
	w := ctx.window(ctx.navWindow)
	if !ctx.check(w != nil, "SetFocus", "no nav window") {
		return
	}
	if !ctx.check(layer.valid(), "SetFocus", "layer must be Main or Menu") {
		return
	}
	ctx.navID = id
	ctx.navLayer = layer
	ctx.navFocusScope = focusScope
	w.Nav.LastIDs[layer] = id
	w.Nav.RectRel[layer] = rectRel
}

// FocusItem focuses an item of window h and shows the highlight.
func (ctx *Context) FocusItem(h WindowHandle, it ItemCandidate) {
	w := ctx.window(h)
	if !ctx.check(w != nil, "FocusItem", "unknown window") {
		return
	}
	ctx.FocusWindow(h)
	ctx.SetFocus(it.ID, it.Layer, it.FocusScope, w.RectAbsToRel(it.navRect()))
	ctx.restoreHighlightAfterMove()
}

// FocusWindow makes h the nav window and brings its root to the front.
// A zero handle clears focus.
func (ctx *Context) FocusWindow(h WindowHandle) {
	w := ctx.window(h)
	if ctx.navWindow != h {
		ctx.navWindow = h
		if w != nil && ctx.navDisableMouseHover {
			ctx.navMousePosDirty = true
		}
		ctx.navID = 0
		ctx.navFocusScope = 0
		if w != nil {
			ctx.navID = w.Nav.LastIDs[LayerMain]
			ctx.navFocusScope = w.FocusScope
		}
		ctx.navLayer = LayerMain
		ctx.navIDIsAlive = false
		ctx.popups.ClosePopupsOverWindow(h)
		ctx.log.Debug("focus window", "window", windowName(w))
	}

	if ctx.activeID != 0 {
		if aw := ctx.window(ctx.activeWindow); aw == nil || w == nil || aw.Root != w.Root {
			ctx.ClearActiveID()
		}
	}
	if w == nil {
		return
	}
	ctx.wm.BringToFocusFront(w.Root)
}

// InitWindow asks for the first (or default) item of the nav window to be
// focused next frame. Without force, a child window that remembers an item
// keeps it.
func (ctx *Context) InitWindow(h WindowHandle, force bool) {
	w := ctx.window(h)
	if !ctx.check(w != nil && h == ctx.navWindow, "InitWindow", "window is not the nav window") {
		return
	}
	if w.Flags&WindowNoNavInputs != 0 {
		ctx.navID = 0
		ctx.navFocusScope = w.FocusScope
		return
	}
	if w.IsRoot() || w.IsPopup() || w.Nav.LastIDs[LayerMain] == 0 || force {
		ctx.log.Debug("init request", "window", w.Name, "layer", ctx.navLayer)
		ctx.SetFocus(0, ctx.navLayer, w.FocusScope, Rect{})
		ctx.navInitRequest = true
		ctx.navInitRequestFromMove = false
		ctx.navInitResultID = 0
		ctx.navInitResultRectRel = Rect{}
		ctx.updateAnyRequestFlag()
		return
	}
	ctx.navID = w.Nav.LastIDs[LayerMain]
	ctx.navFocusScope = w.FocusScope
}

// restoreLayer switches to layer, returning to the remembered child window
// and item when going back to Main.
func (ctx *Context) restoreLayer(layer NavLayer) {
	if layer == LayerMain {
		ctx.navWindow = ctx.restoreLastChildNavWindow(ctx.navWindow)
	}
	w := ctx.window(ctx.navWindow)
	if w == nil {
		return
	}
	if id := w.Nav.LastIDs[layer]; id != 0 {
		ctx.SetFocus(id, layer, 0, w.Nav.RectRel[layer])
		return
	}
	ctx.navLayer = layer
	ctx.InitWindow(ctx.navWindow, true)
}

func (ctx *Context) restoreLastChildNavWindow(h WindowHandle) WindowHandle {
	w := ctx.window(h)
	if w == nil {
		return h
	}
	if child := ctx.window(w.Nav.LastChild); child != nil && child.WasActive {
		return w.Nav.LastChild
	}
	return h
}

// saveLastChildNavWindowIntoParent records h in its nearest non-child
// ancestor so leaving the Menu layer returns to it.
func (ctx *Context) saveLastChildNavWindowIntoParent(h WindowHandle) {
	parent := ctx.window(h)
	for parent != nil && !parent.IsRoot() && !parent.Role.Any(RolePopup|RoleChildMenu) {
		parent = ctx.window(parent.Parent)
	}
	if parent != nil && parent.Handle != h {
		parent.Nav.LastChild = h
	}
}

func (ctx *Context) restoreHighlightAfterMove() {
	ctx.navDisableHighlight = false
	ctx.navDisableMouseHover = true
	ctx.navMousePosDirty = true
}

func (ctx *Context) updateAnyRequestFlag() {
	ctx.navAnyRequest = ctx.move.scoring || ctx.navInitRequest
}

func (ctx *Context) keyboardActive() bool {
	return ctx.cfg.NavEnableKeyboard
}

func (ctx *Context) gamepadActive() bool {
	return ctx.cfg.NavEnableGamepad && ctx.input != nil && ctx.input.HasGamepad
}

func windowName(w *Window) string {
	if w == nil {
		return "<none>"
	}
	return w.Name
}
