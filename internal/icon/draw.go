package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Palette. Every colour is fully opaque.
var (
	BackgroundColor = color.RGBA{52, 152, 219, 255}
	FurColor        = color.RGBA{74, 144, 226, 255}
	EyeColor        = color.RGBA{255, 255, 255, 255}
	PupilColor      = color.RGBA{44, 62, 80, 255}
	NoseColor       = color.RGBA{231, 76, 60, 255}
)

// grow widens every outline slightly so pixels whose centre sits exactly on
// an edge land above the coverage cut.
const grow = 0.25

// Draw renders the cat face for a square canvas of the given size.
func Draw(size int) *image.RGBA {
	return DrawGeometry(Layout(size))
}

// DrawGeometry paints g onto a transparent canvas. Shapes are painted in
// order so later shapes cover earlier ones.
//
// Integer coordinates address pixel centres, and a pixel is painted when at
// least half of it is covered by the shape. Edges are hard: the canvas only
// ever holds transparent or palette pixels.
func DrawGeometry(g Geometry) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	side := float64(g.Size)

	fill(im, BackgroundColor, func(dc *gg.Context) {
		// The tile spans pixels 0..size inclusive with corner arcs centred
		// on pixel r, so the last row and column reach past the canvas.
		r := float64(g.CornerRadius)
		if r > 0 {
			dc.DrawRoundedRectangle(0.5-grow, 0.5-grow, side+2*grow, side+2*grow, r+grow)
		} else {
			dc.DrawRectangle(0.5-grow, 0.5-grow, side+2*grow, side+2*grow)
		}
	})

	ellipse(im, FurColor, g.CenterX, g.BodyCenterY, g.BodyRadiusX, g.BodyRadiusY)
	ellipse(im, FurColor, g.CenterX, g.CenterY, g.HeadRadius, g.HeadRadius)

	for _, eye := range []image.Point{g.LeftEye, g.RightEye} {
		ellipse(im, EyeColor, eye.X, eye.Y, g.EyeRadius, g.EyeRadius)
		ellipse(im, PupilColor, eye.X, eye.Y, g.PupilRadius, g.PupilRadius)
	}

	fill(im, NoseColor, func(dc *gg.Context) {
		dc.NewSubPath()
		for i, p := range g.Nose {
			if i == 0 {
				dc.MoveTo(center(p.X), center(p.Y))
			} else {
				dc.LineTo(center(p.X), center(p.Y))
			}
		}
		dc.ClosePath()
	})
	return im
}

// ellipse paints an axis-aligned ellipse centred on pixel (x, y). Degenerate
// radii paint nothing.
func ellipse(im *image.RGBA, c color.RGBA, x, y, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	fill(im, c, func(dc *gg.Context) {
		dc.DrawEllipse(center(x), center(y), float64(rx)+grow, float64(ry)+grow)
	})
}

// fill rasterises the path built by path into a coverage mask, cuts the
// mask at 50%, and paints c through it.
func fill(im *image.RGBA, c color.RGBA, path func(dc *gg.Context)) {
	b := im.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	path(dc)
	dc.SetColor(color.White)
	dc.Fill()

	mask := dc.AsMask()
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	draw.DrawMask(im, b, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// center maps a pixel index to the coordinate of that pixel's centre.
func center(v int) float64 {
	return float64(v) + 0.5
}
