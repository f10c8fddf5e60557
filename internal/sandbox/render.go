package sandbox

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// DefaultGlyph is drawn for entities without a known texture.
const DefaultGlyph = '█'

// Textures maps level texture ids to glyphs.
var Textures = map[int]rune{
	0: '█',
	1: '●',
	2: '▓',
	3: '☻',
	4: '◆',
	5: '▒',
	6: '░',
}

// Render draws the visible entities scaled from world pixels to cells,
// then the pause banner and the debug overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "Level "+g.level.ID+" failed to load")
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}

	b := g.world.Boundary()
	sx := float64(dst.Width()) / (b.Right() - b.Left())
	sy := float64(dst.Height()) / (b.Bottom() - b.Top())

	for _, item := range g.world.Drawables() {
		r := item.Bounds
		x0 := int(math.Floor((r.Left() - b.Left()) * sx))
		y0 := int(math.Floor((r.Top() - b.Top()) * sy))
		x1 := int(math.Ceil((r.Right() - b.Left()) * sx))
		y1 := int(math.Ceil((r.Bottom() - b.Top()) * sy))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		dst.FillRect(x0, y0, x1, y1, cellFor(item.Drawable))
	}

	if g.state.Paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
	if g.state.ShowDebug {
		g.renderDebug(dst)
	}
}

// cellFor picks the glyph and color of a drawable. Tinted textures and
// untextured entities take the entity color.
func cellFor(d world.Drawable) core.Cell {
	c := core.Cell{Rune: DefaultGlyph, Color: core.ColorWhite}
	if d.TextureID != nil {
		if r, ok := Textures[*d.TextureID]; ok {
			c.Rune = r
		}
	}
	if d.Color != nil && (d.Tint || d.TextureID == nil) {
		rgb := *d.Color
		c.RGB = &rgb
	}
	return c
}

// DebugLines returns the overlay text.
func (g *Game) DebugLines() []string {
	fps := 0.0
	if g.lastDelta > 0 {
		fps = 1 / g.lastDelta
	}
	limit := "off"
	if g.state.FpsLimit {
		limit = fmt.Sprintf("%d", g.config.TickRate)
	}
	entities := 0
	if g.world != nil {
		entities = g.world.Len()
	}
	return []string{
		g.level.Name,
		fmt.Sprintf("delta_t: %.6f", g.lastDelta),
		fmt.Sprintf("frame_count: %d", g.state.Frames),
		fmt.Sprintf("frame_time: %.2fms", g.lastDelta*1000),
		fmt.Sprintf("fps_limit: %s", limit),
		fmt.Sprintf("fps: %.1f", fps),
		fmt.Sprintf("entities: %d", entities),
	}
}

func (g *Game) renderDebug(dst *core.Screen) {
	lines := g.DebugLines()
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	dst.FillRect(0, 0, width+4, len(lines)+2, core.Cell{Rune: ' '})
	dst.DrawBox(0, 0, width+4, len(lines)+2)
	for i, l := range lines {
		dst.DrawText(2, i+1, l)
	}
}
