package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clippedList submits 50 rows of 300x20 through ClipList and records the
// clipper of every frame.
type clippedList struct {
	ids   []ID
	clips []*ListClipper
}

func newClippedList(h *harness) (WindowHandle, *clippedList) {
	win := h.window("List", WindowSpec{Size: Vec2{X: 300, Y: 100}})
	h.windows.Window(win).ContentSizeExplicit = Vec2{Y: 50 * 20}
	l := &clippedList{ids: make([]ID, 50)}
	for i := range l.ids {
		l.ids[i] = HashInt(i, h.windows.Window(win).ID)
	}
	h.content[win] = func() {
		clip := h.ctx.ClipList(win, len(l.ids), 20, 0)
		l.clips = append(l.clips, clip)
		for _, r := range clip.Ranges {
			for i := r.Start; i < r.End; i++ {
				it := ItemCandidate{ID: l.ids[i], Rect: RectXYWH(0, clip.ItemY(i, 0), 300, 20)}
				h.ctx.ProcessItem(h.abs(win, it))
			}
		}
	}
	return win, l
}

func (l *clippedList) last() *ListClipper { return l.clips[len(l.clips)-1] }

func TestClipList_VisibleRows(t *testing.T) {
	h := newHarness(t)
	_, l := newClippedList(h)
	h.frame()

	clip := l.last()
	assert.Equal(t, []ClipRange{{Start: 0, End: 5}}, clip.Ranges)
	assert.Equal(t, 5, clip.Count())
	assert.Equal(t, float32(1000), clip.ContentHeight())
	assert.True(t, clip.Contains(4))
	assert.False(t, clip.Contains(5))
}

func TestClipList_MoveReachesRowBelowView(t *testing.T) {
	h := newHarness(t)
	win, l := newClippedList(h)
	h.frame()
	h.ctx.FocusItem(win, h.abs(win, ItemCandidate{ID: l.ids[4], Rect: RectXYWH(0, 80, 300, 20)}))
	h.frames(2)

	h.frame(KeyDown)
	assert.True(t, l.last().Contains(5), "one extra row in the move direction")
	h.frame()
	h.requireFocus(l.ids[5])
}

func TestClipList_KeepsFocusedRowWhenScrolledAway(t *testing.T) {
	h := newHarness(t)
	win, l := newClippedList(h)
	h.frame()
	h.ctx.FocusItem(win, h.abs(win, ItemCandidate{ID: l.ids[0], Rect: RectXYWH(0, 0, 300, 20)}))
	h.frame()

	NewWindowScroller(h.windows, Vec2{}).SetScrollY(h.windows.Window(win), 500)
	h.frame()
	require.Equal(t, float32(500), h.windows.Window(win).Scroll.Y)
	assert.Equal(t, []ClipRange{{Start: 0, End: 1}, {Start: 25, End: 30}}, l.last().Ranges)
	h.requireFocus(l.ids[0])
}

func TestClipList_Degenerate(t *testing.T) {
	h := newHarness(t)
	win := h.window("W", WindowSpec{})
	assert.Empty(t, h.ctx.ClipList(win, 0, 20, 0).Ranges)
	assert.Empty(t, h.ctx.ClipList(win, 10, 0, 0).Ranges)
	assert.Empty(t, h.ctx.ClipList(WindowHandle{}, 10, 20, 0).Ranges)
}

func TestMergeRanges(t *testing.T) {
	got := mergeRanges([]ClipRange{{10, 12}, {0, 3}, {2, 5}, {7, 7}, {5, 6}})
	assert.Equal(t, []ClipRange{{0, 6}, {10, 12}}, got)
}
