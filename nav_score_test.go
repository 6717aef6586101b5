package nav

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoringContext returns a context scoring a move in dir from a zero-width
// reference segment at x=10 spanning y 0..20.
func scoringContext(t *testing.T, dir Dir, layer NavLayer) (*Context, *Window) {
	t.Helper()
	windows := NewWindowStack()
	h := windows.CreateWindow("score", WindowSpec{Size: Vec2{X: 400, Y: 400}})
	ctx := New(WithConfig(testConfig()), WithLogger(quietLogger()), WithWindowManager(windows))
	ctx.navWindow = h
	ctx.navLayer = layer
	ctx.move.dir = dir
	ctx.move.clipDir = dir
	ctx.scoringRect = Rect{Min: Vec2{X: 10, Y: 0}, Max: Vec2{X: 10, Y: 20}}
	w := windows.Window(h)
	require.NotNil(t, w)
	return ctx, w
}

func TestDistInterval(t *testing.T) {
	assert.Equal(t, float32(0), distInterval(0, 10, 5, 15), "overlap")
	assert.Equal(t, float32(0), distInterval(0, 10, 10, 20), "touching")
	assert.Equal(t, float32(-5), distInterval(0, 10, 15, 20), "a before b")
	assert.Equal(t, float32(5), distInterval(15, 20, 0, 10), "a after b")
}

func TestScoreItem_NearerWins(t *testing.T) {
	ctx, w := scoringContext(t, DirRight, LayerMain)
	near := ItemCandidate{ID: 1, Rect: RectXYWH(30, 0, 20, 20)}
	far := ItemCandidate{ID: 2, Rect: RectXYWH(80, 0, 20, 20)}

	res, ok := ctx.scoreItem(emptyResult(), w, &far)
	require.True(t, ok)
	assert.Equal(t, float32(70), res.DistBox)

	res, ok = ctx.scoreItem(res, w, &near)
	require.True(t, ok)
	assert.Equal(t, float32(20), res.DistBox)

	// Once the near item is best, the far one can't replace it.
	_, ok = ctx.scoreItem(res, w, &far)
	assert.False(t, ok)
}

func TestScoreItem_RejectsOtherQuadrants(t *testing.T) {
	ctx, w := scoringContext(t, DirRight, LayerMain)
	for _, it := range []ItemCandidate{
		{ID: 1, Rect: RectXYWH(-40, 0, 20, 20)},  // left
		{ID: 2, Rect: RectXYWH(0, 60, 20, 20)},   // below
		{ID: 3, Rect: RectXYWH(0, -60, 20, 20)},  // above
		{ID: 4, Rect: RectXYWH(20, 200, 20, 20)}, // mostly below
	} {
		_, ok := ctx.scoreItem(emptyResult(), w, &it)
		assert.False(t, ok, "item %d", it.ID)
	}
}

func TestScoreItem_VerticalDistanceDominatesDiagonals(t *testing.T) {
	ctx, w := scoringContext(t, DirDown, LayerMain)
	// Same row distance, one straight below and one offset sideways.
	straight := ItemCandidate{ID: 1, Rect: RectXYWH(0, 40, 20, 20)}
	offset := ItemCandidate{ID: 2, Rect: RectXYWH(100, 40, 20, 20)}

	res, ok := ctx.scoreItem(emptyResult(), w, &offset)
	require.True(t, ok)
	offsetBox := res.DistBox

	res, ok = ctx.scoreItem(res, w, &straight)
	require.True(t, ok)
	assert.Less(t, res.DistBox, offsetBox)
	// The sideways offset only adds a bit over one unit.
	assert.InDelta(t, 1.09, offsetBox-res.DistBox, 0.01)
}

func TestScoreItem_IgnoresOtherLayer(t *testing.T) {
	ctx, w := scoringContext(t, DirRight, LayerMain)
	it := ItemCandidate{ID: 1, Rect: RectXYWH(30, 0, 20, 20), Layer: LayerMenu}
	_, ok := ctx.scoreItem(emptyResult(), w, &it)
	assert.False(t, ok)
}

func TestScoreItem_AxialLinksOnlyOnMenuLayer(t *testing.T) {
	diagonal := ItemCandidate{ID: 1, Rect: RectXYWH(50, 100, 10, 20)}

	ctx, w := scoringContext(t, DirRight, LayerMain)
	_, ok := ctx.scoreItem(emptyResult(), w, &diagonal)
	assert.False(t, ok)

	ctx, w = scoringContext(t, DirRight, LayerMenu)
	diagonal.Layer = LayerMenu
	res, ok := ctx.scoreItem(emptyResult(), w, &diagonal)
	require.True(t, ok)
	assert.Equal(t, float32(maxDist), res.DistBox, "axial links don't claim a box distance")
	assert.Less(t, res.DistAxial, float32(maxDist))

	// A real match in the move direction replaces the axial one.
	direct := ItemCandidate{ID: 2, Rect: RectXYWH(200, 0, 10, 20), Layer: LayerMenu}
	res, ok = ctx.scoreItem(res, w, &direct)
	require.True(t, ok)
	assert.Equal(t, float32(190), res.DistBox)
}

func TestScoreItem_SameCenterOrdersByID(t *testing.T) {
	ctx, w := scoringContext(t, DirRight, LayerMain)
	ctx.navID = 5
	ctx.scoringRect = RectXYWH(0, 0, 20, 20)

	higher := ItemCandidate{ID: 6, Rect: RectXYWH(0, 0, 20, 20)}
	_, ok := ctx.scoreItem(emptyResult(), w, &higher)
	assert.True(t, ok)

	ctx.move.dir, ctx.move.clipDir = DirLeft, DirLeft
	lower := ItemCandidate{ID: 4, Rect: RectXYWH(0, 0, 20, 20)}
	_, ok = ctx.scoreItem(emptyResult(), w, &lower)
	assert.True(t, ok)
	_, ok = ctx.scoreItem(emptyResult(), w, &higher)
	assert.False(t, ok)
}

func TestClampRectToVisibleAreaForMoveDir(t *testing.T) {
	clip := RectXYWH(0, 0, 100, 100)
	r := RectXYWH(-50, 80, 300, 50)

	h := clampRectToVisibleAreaForMoveDir(DirRight, r, clip)
	assert.Equal(t, Rect{Min: Vec2{X: -50, Y: 80}, Max: Vec2{X: 250, Y: 100}}, h)

	v := clampRectToVisibleAreaForMoveDir(DirDown, r, clip)
	assert.Equal(t, Rect{Min: Vec2{X: 0, Y: 80}, Max: Vec2{X: 100, Y: 130}}, v)
}

func TestIsVisibleForPage(t *testing.T) {
	clip := RectXYWH(0, 0, 100, 100)
	assert.True(t, isVisibleForPage(RectXYWH(0, 10, 50, 20), clip))
	assert.True(t, isVisibleForPage(RectXYWH(0, 86, 50, 20), clip), "70% inside")
	assert.False(t, isVisibleForPage(RectXYWH(0, 90, 50, 20), clip), "half inside")
	assert.False(t, isVisibleForPage(RectXYWH(0, 200, 50, 20), clip))
}

func TestScoreItem_BestDistancesNeverGrow(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, dir := range []Dir{DirLeft, DirRight, DirUp, DirDown} {
		ctx, w := scoringContext(t, dir, LayerMain)
		res := emptyResult()
		for i := 0; i < 200; i++ {
			it := ItemCandidate{
				ID:   ID(i + 1),
				Rect: RectXYWH(rng.Float32()*380-190, rng.Float32()*380-190, 5+rng.Float32()*30, 5+rng.Float32()*30),
			}
			next, ok := ctx.scoreItem(res, w, &it)
			if !ok {
				continue
			}
			require.LessOrEqual(t, next.DistBox, res.DistBox, "%v item %d", dir, it.ID)
			if next.DistBox == res.DistBox {
				require.LessOrEqual(t, next.DistCenter, res.DistCenter, "%v item %d", dir, it.ID)
			}
			res = next
		}
		assert.NotZero(t, res.ID, "%v found nothing", dir)
	}
}
