package crossing

import (
	"math"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Terrain rows, top to bottom
const (
	waterRows = 1
	stoneRows = 3
	grassRows = 2
	boardRows = waterRows + stoneRows + grassRows
)

// Visual characters for terrain
const (
	WaterChar = '≈'
	StoneChar = '·'
	GrassChar = '"'
)

// glyph is the terminal look of a sprite.
type glyph struct {
	text  string
	color core.Color
}

var glyphs = map[Sprite]glyph{
	SpriteBug:          {"<ж>", core.ColorBrightRed},
	SpriteGemGreen:     {"◆", core.ColorBrightGreen},
	SpriteGemBlue:      {"◆", core.ColorBrightBlue},
	SpriteGemGold:      {"◆", core.ColorBrightYellow},
	SpriteGoal:         {"[ ]", core.ColorMagenta},
	SpriteBoy:          {"☺", core.ColorWhite},
	SpriteCatGirl:      {"☺", core.ColorOrange},
	SpriteHornGirl:     {"☺", core.ColorCyan},
	SpritePinkGirl:     {"☺", core.ColorBrightMagenta},
	SpritePrincessGirl: {"♛", core.ColorYellow},
}

// glyphFor returns the glyph of a sprite, or a placeholder for unknown ones.
func glyphFor(s Sprite) glyph {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return glyph{"?", core.ColorDefault}
}

// boardLayout maps canvas pixels onto a rectangle of screen cells.
// Columns scale continuously; rows snap to the tile row an entity stands in.
type boardLayout struct {
	left, top    int
	width        int
	rowHeight    int
	tileW, tileH float64
	canvasW      float64
}

func newBoardLayout(dst *core.Screen, canvas config.CanvasConfig, top, bottomReserved int) boardLayout {
	height := dst.Height() - top - bottomReserved
	rowHeight := core.Max(height/boardRows, 1)

	return boardLayout{
		left:      0,
		top:       top,
		width:     dst.Width(),
		rowHeight: rowHeight,
		tileW:     canvas.TileWidth,
		tileH:     canvas.TileHeight,
		canvasW:   canvas.Width,
	}
}

// height returns the number of screen rows the board occupies.
func (l boardLayout) height() int {
	return l.rowHeight * boardRows
}

// cell returns the screen cell at the visual center of a sprite drawn at (x, y).
func (l boardLayout) cell(x, y float64) (int, int) {
	cx := (x + l.tileW/2) / l.canvasW * float64(l.width)
	row := int(math.Floor((y + l.tileH/2) / l.tileH))
	return l.left + int(math.Floor(cx)), l.top + row*l.rowHeight + l.rowHeight/2
}

// drawTerrain paints water, stone lanes and grass behind the entities.
func (l boardLayout) drawTerrain(dst *core.Screen) {
	for row := 0; row < boardRows; row++ {
		ch, color := GrassChar, core.ColorGreen
		switch {
		case row < waterRows:
			ch, color = WaterChar, core.ColorBlue
		case row < waterRows+stoneRows:
			ch, color = StoneChar, core.ColorGray
		}
		dst.DrawRect(core.NewRect(l.left, l.top+row*l.rowHeight, l.width, l.rowHeight), ch, color)
	}
}

// screenRenderer draws sprites as glyphs onto a Screen.
type screenRenderer struct {
	dst    *core.Screen
	layout boardLayout
}

// Draw implements Renderer.
func (r screenRenderer) Draw(sprite Sprite, x, y float64) {
	g := glyphFor(sprite)
	cx, cy := r.layout.cell(x, y)
	width := len([]rune(g.text))

	// Rows outside the board would overwrite the HUD
	if cy < r.layout.top || cy >= r.layout.top+r.layout.height() {
		return
	}
	r.dst.DrawTextColored(cx-width/2, cy, g.text, g.color)
}
