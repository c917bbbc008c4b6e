package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/engine"
	"github.com/lixenwraith/zombie-conga/vmath"
)

const statusRows = 1

// TerminalRenderer draws snapshots as terminal cells
// The bottom row is the status bar; the rest shows the visible world
type TerminalRenderer struct {
	canvas    Canvas
	buf       *RenderBuffer
	winLength int
}

func NewTerminalRenderer(canvas Canvas, winLength int) *TerminalRenderer {
	w, h := canvas.Size()
	return &TerminalRenderer{
		canvas:    canvas,
		buf:       NewRenderBuffer(w, h),
		winLength: winLength,
	}
}

// Buffer exposes the last composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// Viewport returns the cell mapping for world at the current canvas size
func (r *TerminalRenderer) Viewport(world r2.Rect) Viewport {
	w, h := r.canvas.Size()
	return Viewport{Cols: w, Rows: max(h-statusRows, 0), World: world}
}

func (r *TerminalRenderer) begin() (int, int) {
	w, h := r.canvas.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}
	return w, h
}

// RenderFrame composes and flushes one gameplay frame
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	_, h := r.begin()
	vp := r.Viewport(snap.World)

	r.drawTiles(vp, snap.Tiles)
	for i := range snap.Roamers {
		r.drawRoamer(vp, &snap.Roamers[i])
	}
	for i := range snap.Released {
		rel := &snap.Released[i]
		if rel.Scale <= 0 {
			continue
		}
		if x, y, ok := vp.ToCell(rel.Position); ok {
			r.buf.Set(x, y, spinGlyph(rel.Rotation), style(RgbReleased, RgbBackground))
		}
	}
	for i := range snap.Followers {
		f := &snap.Followers[i]
		r.fillBox(vp, vmath.BoxAt(f.Position, f.Size), 'c', style(RgbFollower, RgbBackground))
	}
	r.drawZombie(vp, &snap.Actor)
	r.drawStatus(h-1, snap)

	r.buf.Flush(r.canvas)
}

func (r *TerminalRenderer) drawTiles(vp Viewport, tiles []component.BackgroundTile) {
	for x := 0; x < vp.Cols; x++ {
		wx := vp.ToWorld(x, 0).X
		for _, t := range tiles {
			if wx < t.X || wx >= t.TrailingEdge() {
				continue
			}
			bg := RgbBackground
			if t.Index%2 == 1 {
				bg = RgbBackgroundAlt
			}
			sx, _, ok := vp.ToCell(vmath.V2(t.X, vp.World.Y.Lo))
			seam := ok && sx == x
			for y := 0; y < vp.Rows; y++ {
				r.buf.SetBg(x, y, bg)
				if seam && y%2 == 0 {
					r.buf.Set(x, y, '┊', style(RgbTileEdge, bg))
				}
			}
			break
		}
	}
}

func (r *TerminalRenderer) drawRoamer(vp Viewport, ro *component.Roamer) {
	switch ro.Kind {
	case component.KindEnemy:
		r.fillBox(vp, ro.Bounds(), '#', style(RgbEnemy, RgbBackground))
	default:
		glyph := '^'
		if ro.Scale < 1 {
			glyph = '.'
		}
		r.fillBox(vp, ro.Bounds(), glyph, style(RgbCat, RgbBackground))
	}
}

func (r *TerminalRenderer) drawZombie(vp Viewport, a *component.Actor) {
	if a.Hidden {
		return
	}
	fg := RgbZombie
	if a.Invincible() {
		fg = RgbZombieHurt
	}
	r.fillBox(vp, a.Bounds(), 'Z', style(fg, RgbBackground).Bold(true))
}

func (r *TerminalRenderer) fillBox(vp Viewport, box r2.Rect, glyph rune, st tcell.Style) {
	x0, y0, x1, y1, ok := vp.CellRect(box)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.buf.Set(x, y, glyph, st)
		}
	}
}

// StatusLine formats the status bar text for snap
func StatusLine(snap *engine.Snapshot, winLength int) string {
	s := fmt.Sprintf(" Lives: %d  Cats: %d/%d", snap.Round.Lives, snap.Round.ChainLength, winLength)
	if snap.Actor.Invincible() {
		s += "  [invincible]"
	}
	switch snap.Round.Outcome {
	case component.OutcomeWon:
		s += "  YOU WIN"
	case component.OutcomeLost:
		s += "  YOU LOSE"
	}
	return s
}

func (r *TerminalRenderer) drawStatus(row int, snap *engine.Snapshot) {
	w, _ := r.buf.Bounds()
	bar := style(RgbStatusBar, RgbStatusBg)
	for x := 0; x < w; x++ {
		r.buf.Set(x, row, ' ', bar)
	}
	if snap.Round.Lives <= 1 {
		bar = style(RgbLivesLow, RgbStatusBg)
	}
	r.buf.Text(0, row, StatusLine(snap, r.winLength), bar)
}

// RenderBanner draws centered lines over a blank screen (menu, game over)
func (r *TerminalRenderer) RenderBanner(fg tcell.Color, lines ...string) {
	w, h := r.begin()
	top := (h - len(lines)) / 2
	for i, line := range lines {
		n := len([]rune(line))
		r.buf.Text((w-n)/2, top+i, line, style(fg, RgbBackground))
	}
	r.buf.Flush(r.canvas)
}

// RenderMenu draws the title screen with an optional scoreboard line
func (r *TerminalRenderer) RenderMenu(footer string) {
	r.RenderBanner(RgbZombie,
		"Z O M B I E   C O N G A",
		"",
		fmt.Sprintf("Click to steer. Catch %d cats, dodge the red.", r.winLength),
		"",
		"click or press any key to start    esc to quit",
		"",
		footer)
}

// RenderGameOver draws the end-of-round banner
func (r *TerminalRenderer) RenderGameOver(won bool, footer string) {
	if won {
		r.RenderBanner(RgbBannerWin, "YOU WIN!", "", "The conga line is complete.", "", footer)
		return
	}
	r.RenderBanner(RgbBannerLose, "YOU LOSE!", "", "The zombie ran out of lives.", "", footer)
}

var spinGlyphs = [...]rune{'|', '/', '-', '\\'}

// spinGlyph picks a rotating stick for a released follower's angle
func spinGlyph(rotation float64) rune {
	i := int(math.Floor(rotation/(math.Pi/4))) % len(spinGlyphs)
	if i < 0 {
		i += len(spinGlyphs)
	}
	return spinGlyphs[i]
}
