package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/vmath"
)

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = primary
}

func (c *fakeCanvas) Size() (int, int) {
	return c.w, c.h
}

func (c *fakeCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		sb.WriteRune(c.cells[[2]int{x, y}])
	}
	return sb.String()
}

// 1000x500 world on a 100x50 grid: ten units per cell
var testWorld = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1000, Y: 500})

func testSnapshot() *engine.Snapshot {
	actor := component.Actor{Size: vmath.V2(100, 100)}
	actor.Position = vmath.V2(500, 250)
	return &engine.Snapshot{
		Actor: actor,
		Round: component.RoundState{Lives: 3, ChainLength: 2},
		World: testWorld,
		Tiles: []component.BackgroundTile{
			{Index: 0, X: 0, Width: 600},
			{Index: 1, X: 600, Width: 600},
		},
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	vp := Viewport{Cols: 100, Rows: 50, World: testWorld}

	x, y, ok := vp.ToCell(vmath.V2(123, 456))
	require.True(t, ok)
	assert.Equal(t, 12, x)
	assert.Equal(t, 45, y)
	assert.Equal(t, vmath.V2(125, 455), vp.ToWorld(x, y))

	_, _, ok = vp.ToCell(vmath.V2(-1, 10))
	assert.False(t, ok)
	_, _, ok = vp.ToCell(vmath.V2(1000, 10))
	assert.False(t, ok)
}

func TestViewport_CellRect(t *testing.T) {
	vp := Viewport{Cols: 100, Rows: 50, World: testWorld}

	x0, y0, x1, y1, ok := vp.CellRect(vmath.BoxAt(vmath.V2(500, 250), vmath.V2(100, 100)))
	require.True(t, ok)
	assert.Equal(t, [4]int{45, 20, 54, 29}, [4]int{x0, y0, x1, y1})

	// Partially off-grid boxes are clipped
	x0, _, x1, _, ok = vp.CellRect(vmath.BoxAt(vmath.V2(0, 250), vmath.V2(100, 100)))
	require.True(t, ok)
	assert.Equal(t, 0, x0)
	assert.Equal(t, 4, x1)

	_, _, _, _, ok = vp.CellRect(r2.EmptyRect())
	assert.False(t, ok)
	_, _, _, _, ok = vp.CellRect(vmath.BoxAt(vmath.V2(2000, 250), vmath.V2(10, 10)))
	assert.False(t, ok)

	// Sub-cell boxes still cover one cell
	x0, y0, x1, y1, ok = vp.CellRect(vmath.BoxAt(vmath.V2(503, 253), vmath.V2(2, 2)))
	require.True(t, ok)
	assert.Equal(t, [4]int{50, 25, 50, 25}, [4]int{x0, y0, x1, y1})
}

func TestRenderBuffer_ClipsAndResizes(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.Set(-1, 0, 'x', tcell.StyleDefault)
	b.Set(4, 1, 'x', tcell.StyleDefault)
	assert.Equal(t, 8, b.Text(2, 1, "abcdef", tcell.StyleDefault))
	assert.Equal(t, 'a', b.Get(2, 1).Rune)
	assert.Equal(t, 'b', b.Get(3, 1).Rune)
	assert.Equal(t, Cell{}, b.Get(9, 9))

	b.Resize(2, 2)
	w, h := b.Bounds()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, ' ', b.Get(1, 1).Rune)
}

func TestTerminalRenderer_DrawsZombieAndStatus(t *testing.T) {
	c := newFakeCanvas(100, 51)
	r := NewTerminalRenderer(c, 15)

	r.RenderFrame(testSnapshot())

	assert.Equal(t, 'Z', c.cells[[2]int{50, 25}])
	assert.Equal(t, 'Z', c.cells[[2]int{45, 20}])
	assert.NotEqual(t, 'Z', c.cells[[2]int{44, 20}])
	assert.Contains(t, c.row(50), "Lives: 3  Cats: 2/15")
}

func TestTerminalRenderer_HiddenZombieIsSkipped(t *testing.T) {
	c := newFakeCanvas(100, 51)
	r := NewTerminalRenderer(c, 15)
	snap := testSnapshot()
	snap.Actor.State = component.StateInvincible
	snap.Actor.Hidden = true

	r.RenderFrame(snap)

	assert.NotEqual(t, 'Z', c.cells[[2]int{50, 25}])
	assert.Contains(t, c.row(50), "[invincible]")
}

func TestTerminalRenderer_DrawsRoamersAndTrain(t *testing.T) {
	c := newFakeCanvas(100, 51)
	r := NewTerminalRenderer(c, 15)
	snap := testSnapshot()
	snap.Roamers = []component.Roamer{
		{Kind: component.KindEnemy, Position: vmath.V2(905, 55), Size: vmath.V2(50, 50), Scale: 1},
		{Kind: component.KindCat, Position: vmath.V2(105, 55), Size: vmath.V2(50, 50), Scale: 1},
		{Kind: component.KindCat, Position: vmath.V2(105, 405), Size: vmath.V2(50, 50), Scale: 0},
	}
	snap.Followers = []component.Follower{
		{Position: vmath.V2(305, 255), Size: vmath.V2(40, 40)},
	}
	snap.Released = []component.Released{
		{Position: vmath.V2(705, 455), Scale: 0.5},
	}

	r.RenderFrame(snap)

	assert.Equal(t, '#', c.cells[[2]int{90, 5}])
	assert.Equal(t, '^', c.cells[[2]int{10, 5}])
	assert.NotEqual(t, '^', c.cells[[2]int{10, 40}])
	assert.NotEqual(t, '.', c.cells[[2]int{10, 40}])
	assert.Equal(t, 'c', c.cells[[2]int{30, 25}])
	assert.Equal(t, '|', c.cells[[2]int{70, 45}])
}

func TestTerminalRenderer_TileSeam(t *testing.T) {
	c := newFakeCanvas(100, 51)
	r := NewTerminalRenderer(c, 15)

	r.RenderFrame(testSnapshot())

	assert.Equal(t, '┊', c.cells[[2]int{60, 0}])
	alt := r.Buffer().Get(70, 1).Style
	_, bg, _ := alt.Decompose()
	assert.Equal(t, RgbBackgroundAlt, bg)
}

func TestTerminalRenderer_Banners(t *testing.T) {
	c := newFakeCanvas(60, 11)
	r := NewTerminalRenderer(c, 15)

	r.RenderMenu("Best chain 4")
	var all strings.Builder
	for y := 0; y < 11; y++ {
		all.WriteString(c.row(y))
	}
	assert.Contains(t, all.String(), "Z O M B I E")
	assert.Contains(t, all.String(), "Best chain 4")

	r.RenderGameOver(true, "Won 1")
	all.Reset()
	for y := 0; y < 11; y++ {
		all.WriteString(c.row(y))
	}
	assert.Contains(t, all.String(), "YOU WIN!")
	assert.Contains(t, all.String(), "Won 1")
}

func TestStatusLine_Outcome(t *testing.T) {
	snap := testSnapshot()
	snap.Round.Outcome = component.OutcomeLost
	snap.Round.Lives = 0
	assert.Equal(t, " Lives: 0  Cats: 2/15  YOU LOSE", StatusLine(snap, 15))
}

func TestSpinGlyph(t *testing.T) {
	assert.Equal(t, '|', spinGlyph(0))
	assert.Equal(t, '/', spinGlyph(0.8))
	assert.Equal(t, '\\', spinGlyph(-0.1))
}
