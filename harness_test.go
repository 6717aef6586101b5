package nav

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

const frameDT float32 = 1.0 / 60.0

// harness drives a Context frame by frame over a WindowStack, submitting a
// fixed item list per window. Item rects are content-relative.
type harness struct {
	t       *testing.T
	windows *WindowStack
	popups  *Popups
	ctx     *Context
	in      *InputState

	items map[WindowHandle][]ItemCandidate
	wrap  map[WindowHandle]MoveFlags
	held  map[Key]bool
	// hidden windows are skipped, as if not drawn this frame.
	hidden map[WindowHandle]bool
	// content submits extra items for a window each frame, before its fixed list.
	content map[WindowHandle]func()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DebugChecks = true
	return cfg
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	windows := NewWindowStack()
	popups := NewPopups(windows)
	base := []Option{
		WithConfig(testConfig()),
		WithLogger(quietLogger()),
		WithWindowManager(windows),
		WithPopups(popups),
	}
	return &harness{
		t:       t,
		windows: windows,
		popups:  popups,
		ctx:     New(append(base, opts...)...),
		in:      NewInputState(),
		items:   make(map[WindowHandle][]ItemCandidate),
		wrap:    make(map[WindowHandle]MoveFlags),
		held:    make(map[Key]bool),
		hidden:  make(map[WindowHandle]bool),
		content: make(map[WindowHandle]func()),
	}
}

// window creates a window at the origin with no padding unless the WindowSpec says
// otherwise, so content-relative and absolute coordinates match.
func (h *harness) window(name string, spec WindowSpec) WindowHandle {
	if spec.Size == (Vec2{}) {
		spec.Size = Vec2{X: 300, Y: 200}
	}
	return h.windows.CreateWindow(name, spec)
}

// row adds n items of size w x ht side by side starting at (x, y).
func (h *harness) row(win WindowHandle, prefix string, n int, x, y, w, ht float32) []ID {
	ids := make([]ID, n)
	for i := 0; i < n; i++ {
		ids[i] = HashInt(i, HashID(prefix, h.windows.Window(win).ID))
		h.items[win] = append(h.items[win], ItemCandidate{
			ID:   ids[i],
			Rect: RectXYWH(x+float32(i)*w, y, w, ht),
		})
	}
	return ids
}

func (h *harness) add(win WindowHandle, it ItemCandidate) ID {
	h.items[win] = append(h.items[win], it)
	return it.ID
}

func (h *harness) item(win WindowHandle, id ID) ItemCandidate {
	for _, it := range h.items[win] {
		if it.ID == id {
			return it
		}
	}
	h.t.Fatalf("no item %d in window", id)
	return ItemCandidate{}
}

// abs moves a content-relative item to screen space with the window's
// current scroll.
func (h *harness) abs(win WindowHandle, it ItemCandidate) ItemCandidate {
	origin := h.windows.Window(win).ContentOrigin()
	it.Rect = it.Rect.Translate(origin)
	if it.NavRect != (Rect{}) {
		it.NavRect = it.NavRect.Translate(origin)
	}
	return it
}

// focus puts focus on an item directly and runs a frame so it is alive.
func (h *harness) focus(win WindowHandle, id ID) {
	h.ctx.FocusItem(win, h.abs(win, h.item(win, id)))
	h.frame()
}

func (h *harness) hold(keys ...Key) {
	for _, k := range keys {
		h.held[k] = true
	}
}

func (h *harness) release(keys ...Key) {
	for _, k := range keys {
		h.held[k] = false
	}
}

// frame runs one full frame. taps are pressed this frame and released
// after it; held keys keep their state.
func (h *harness) frame(taps ...Key) {
	h.windows.NewFrame()
	h.in.Reset()
	for k, down := range h.held {
		h.in.SetKey(k, down)
		if !down {
			delete(h.held, k)
		}
	}
	for _, k := range taps {
		h.in.SetKey(k, true)
	}
	h.in.UpdateKeyRepeat(frameDT)

	h.ctx.Update(h.in, frameDT)
	order := append([]WindowHandle(nil), h.windows.FocusOrder()...)
	for _, win := range order {
		if h.hidden[win] {
			continue
		}
		h.ctx.BeginWindow(win)
		if fn := h.content[win]; fn != nil {
			fn()
		}
		for _, it := range h.items[win] {
			h.ctx.ProcessItem(h.abs(win, it))
		}
		if f := h.wrap[win]; f != 0 {
			h.ctx.TryWrap(win, f)
		}
		h.ctx.EndWindow(win)
	}
	h.ctx.EndFrame()

	for _, k := range taps {
		if !h.held[k] {
			h.in.SetKey(k, false)
		}
	}
}

// frames runs n idle frames.
func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.frame()
	}
}

func (h *harness) requireFocus(id ID, msgAndArgs ...interface{}) {
	h.t.Helper()
	require.Equal(h.t, id, h.ctx.NavID(), msgAndArgs...)
}
