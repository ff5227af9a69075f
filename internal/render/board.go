//go:build ebiten

package render

import (
	"image/color"

	"rnalattice/internal/core"
	"rnalattice/internal/lattice"

	"github.com/hajimehoshi/ebiten/v2"
)

// basePalette maps a cell code to a display color. Codes 1-4 are unpaired
// a/c/g/u; codes 5-8 are the same bases while paired, rendered brighter.
var basePalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 0},         // 0: empty
	{R: 90, G: 140, B: 210, A: 255},  // 1: a
	{R: 210, G: 150, B: 60, A: 255},  // 2: c
	{R: 90, G: 180, B: 110, A: 255},  // 3: g
	{R: 200, G: 90, B: 120, A: 255},  // 4: u
	{R: 140, G: 190, B: 255, A: 255}, // 5: a, paired
	{R: 255, G: 200, B: 120, A: 255}, // 6: c, paired
	{R: 150, G: 235, B: 170, A: 255}, // 7: g, paired
	{R: 255, G: 150, B: 180, A: 255}, // 8: u, paired
}

// BoardPainter rasterizes a single z-slice of a lattice.Board into an
// ebiten.Image, using the forward slot's occupant per cell.
type BoardPainter struct {
	w, h int
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewBoardPainter allocates a painter for an x by y slice.
func NewBoardPainter(w, h int) *BoardPainter {
	bp := &BoardPainter{w: w, h: h, grid: core.NewByteGrid(w, h), buf: make([]byte, 4*w*h)}
	bp.img = ebiten.NewImage(w, h)
	return bp
}

// Blit samples z of b's forward slots into the grid and draws it scaled.
func (bp *BoardPainter) Blit(dst *ebiten.Image, b *lattice.Board, z, scale int) {
	bp.grid.Clear()
	cells := bp.grid.Cells()
	for x := 0; x < bp.w && x < b.XSize; x++ {
		for y := 0; y < bp.h && y < b.YSize; y++ {
			idx := b.Cell(core.Vec{X: x, Y: y, Z: z}, false)
			if idx < 0 {
				continue
			}
			u := b.Unit(idx)
			code := uint8(u.Base + 1)
			if b.IsPaired(u) {
				code += 4
			}
			cells[bp.grid.Index(x, y)] = code
		}
	}
	fillPaletteRGBA(bp.buf, cells, basePalette)
	bp.img.ReplacePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(bp.img, op)
}

// Size returns the painter's slice dimensions.
func (bp *BoardPainter) Size() (int, int) { return bp.w, bp.h }
