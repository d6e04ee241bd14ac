// Package assets draws the placeholder art: flat shapes, the crosshair glyphs
// and sprite sheets with one row per clip.
package assets

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

type Shape string

const (
	ShapeRect   Shape = "rect"
	ShapeCircle Shape = "circle"
)

// NewShape returns a w by h image filled with a rectangle or an inscribed
// circle.
func NewShape(shape Shape, w, h int, c color.Color) *ebiten.Image {
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = w
	}
	if c == nil {
		c = colornames.Magenta
	}
	img := ebiten.NewImage(w, h)
	switch shape {
	case ShapeCircle:
		r := float32(min(w, h)) / 2
		vector.FillCircle(img, float32(w)/2, float32(h)/2, r, c, true)
	default:
		img.Fill(c)
	}
	return img
}

// CrosshairDot is a filled dot centered in a size by size image.
func CrosshairDot(size int, c color.Color) *ebiten.Image {
	if size <= 0 {
		size = 12
	}
	img := ebiten.NewImage(size, size)
	r := float32(size) / 6
	if r < 1.5 {
		r = 1.5
	}
	vector.FillCircle(img, float32(size)/2, float32(size)/2, r, c, true)
	return img
}

// CrosshairSquare is a square outline filling a size by size image.
func CrosshairSquare(size int, c color.Color) *ebiten.Image {
	if size <= 0 {
		size = 12
	}
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.StrokeRect(img, 1, 1, s-2, s-2, 2, c, true)
	return img
}

// SheetClip is one row of a generated sheet.
type SheetClip struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
}

// NewSheet draws a sheet where every frame is a rounded body whose size
// pulses with the frame index, so clips are distinguishable on screen.
func NewSheet(frameW, frameH int, c color.Color, clips []SheetClip) *ebiten.Image {
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	cols, rows := 1, 1
	for _, clip := range clips {
		cols = max(cols, clip.ColStart+clip.FrameCount)
		rows = max(rows, clip.Row+1)
	}
	sorted := append([]SheetClip(nil), clips...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Row < sorted[j].Row })

	sheet := ebiten.NewImage(cols*frameW, rows*frameH)
	for _, clip := range sorted {
		for f := 0; f < clip.FrameCount; f++ {
			x := float32((clip.ColStart + f) * frameW)
			y := float32(clip.Row * frameH)
			drawFrame(sheet, x, y, float32(frameW), float32(frameH), clip.Row, f, c)
		}
	}
	return sheet
}

func drawFrame(dst *ebiten.Image, x, y, w, h float32, row, frame int, c color.Color) {
	pulse := float32(frame%4) / 16
	r := min(w, h) * (0.36 + pulse)
	cx := x + w/2
	cy := y + h/2
	vector.FillCircle(dst, cx, cy, r, c, true)

	// facing marker; the row shifts it so each clip reads differently
	mx := cx + r*0.6
	my := cy - r*0.2 + float32(row%3-1)*r*0.3
	vector.FillCircle(dst, mx, my, r*0.22, colornames.Black, true)
}
