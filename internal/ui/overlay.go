//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"rnalattice/internal/lattice"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the rendered board
// slice: base-pair bonds and backbone (chain) links.
type Overlay struct {
	board      *lattice.Board
	z          int
	scale      int
	showBonds  bool
	showChain  bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance for the given z-slice.
func NewOverlay(b *lattice.Board, z, scale int) *Overlay {
	o := &Overlay{board: b, z: z, scale: scale, showBonds: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay visibility in response to number-key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBonds = !o.showBonds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showChain = !o.showChain
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.pixel == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showBonds {
		for _, p := range o.board.IndexPairs() {
			u, v := o.board.Unit(p.I), o.board.Unit(p.J)
			if u.Pos.Z != o.z {
				continue
			}
			o.drawLink(screen, u, v, scale, color.RGBA{R: 255, G: 230, B: 120, A: 200})
		}
	}
	if o.showChain {
		for _, u := range o.board.Units() {
			if u.Pos.Z != o.z || u.Next < 0 {
				continue
			}
			v := o.board.Unit(u.Next)
			if v.Pos.Z != o.z {
				continue
			}
			o.drawLink(screen, u, v, scale, color.RGBA{R: 120, G: 200, B: 255, A: 160})
		}
	}
}

// drawLink draws a line segment between the pixel centers of two units,
// shortened to the periodic image nearest u so wraparound links don't
// stretch across the whole slice.
func (o *Overlay) drawLink(screen *ebiten.Image, u, v *lattice.Unit, scale int, col color.RGBA) {
	cx := (float64(u.Pos.X) + 0.5) * float64(scale)
	cy := (float64(u.Pos.Y) + 0.5) * float64(scale)
	ddx, ddy := v.Pos.X-u.Pos.X, v.Pos.Y-u.Pos.Y
	if w := o.board.XSize; 2*ddx > w {
		ddx -= w
	} else if 2*ddx < -w {
		ddx += w
	}
	if h := o.board.YSize; 2*ddy > h {
		ddy -= h
	} else if 2*ddy < -h {
		ddy += h
	}
	dx := float64(ddx) * float64(scale)
	dy := float64(ddy) * float64(scale)
	o.drawLine(screen, cx, cy, cx+dx, cy+dy, math.Max(1, float64(scale)*0.2), col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
