package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"rnalattice/internal/core"
	"rnalattice/internal/lattice"
)

// slicePalette mirrors basePalette's semantics but as stdlib image/color,
// used by the headless bitmap export path (no ebiten dependency).
var slicePalette = []color.RGBA{
	{R: 245, G: 245, B: 245, A: 255}, // 0: empty
	{R: 90, G: 140, B: 210, A: 255},  // 1: a
	{R: 210, G: 150, B: 60, A: 255},  // 2: c
	{R: 90, G: 180, B: 110, A: 255},  // 3: g
	{R: 200, G: 90, B: 120, A: 255},  // 4: u
	{R: 30, G: 70, B: 150, A: 255},   // 5: a, paired
	{R: 150, G: 100, B: 10, A: 255},  // 6: c, paired
	{R: 30, G: 110, B: 60, A: 255},   // 7: g, paired
	{R: 140, G: 20, B: 60, A: 255},   // 8: u, paired
}

// WriteSlicePNG writes a base-colored bitmap of board's z-slice to w, one
// pixel per cell, using the forward slot's occupant.
func WriteSlicePNG(w io.Writer, b *lattice.Board, z int) error {
	img := image.NewRGBA(image.Rect(0, 0, b.XSize, b.YSize))
	for x := 0; x < b.XSize; x++ {
		for y := 0; y < b.YSize; y++ {
			idx := b.Cell(core.Vec{X: x, Y: y, Z: z}, false)
			code := 0
			if idx >= 0 {
				u := b.Unit(idx)
				code = u.Base + 1
				if b.IsPaired(u) {
					code += 4
				}
			}
			img.SetRGBA(x, y, slicePalette[code])
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode slice PNG: %w", err)
	}
	return nil
}

// WritePairHeatmapPNG writes a square heatmap of pair-frequency matrix
// counts[i][j] (i,j are arena indices, see csv.go) as a
// grayscale-to-warm gradient PNG, one pixel per cell.
func WritePairHeatmapPNG(w io.Writer, counts [][]int) error {
	n := len(counts)
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	maxCount := 0
	for _, row := range counts {
		for _, v := range row {
			if v > maxCount {
				maxCount = v
			}
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t := float64(counts[i][j]) / float64(maxCount)
			img.SetRGBA(j, i, heatColor(t))
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode heatmap PNG: %w", err)
	}
	return nil
}

func heatColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := uint8(30 + 200*t)
	g := uint8(30 + 90*t)
	b := uint8(60 - 40*t)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
