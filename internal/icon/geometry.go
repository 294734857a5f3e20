// Package icon draws the Flow Max launcher icon: a rounded blue tile with a
// simplified cat face, rendered procedurally at any pixel size.
package icon

import "image"

// baseSize is the canvas size the hand-picked coordinates were tuned for.
const baseSize = 1024

// Geometry holds every derived coordinate for one icon size. All values are
// whole pixels, truncated toward zero, so very small sizes collapse shapes to
// zero radius rather than failing.
type Geometry struct {
	Size         int
	CornerRadius int

	// Face centre and head radius.
	CenterX    int
	CenterY    int
	HeadRadius int

	// Body ellipse, centred one head radius below the face centre.
	BodyCenterY int
	BodyRadiusX int
	BodyRadiusY int

	EyeRadius   int
	PupilRadius int
	LeftEye     image.Point
	RightEye    image.Point

	// Nose triangle: tip, left corner, right corner.
	Nose [3]image.Point
}

// Layout computes the icon geometry for a size×size canvas.
func Layout(size int) Geometry {
	s := float64(size)
	scale := s / baseSize
	px := func(v float64) int { return int(v * scale) }

	offset := int(s * 0.2)
	g := Geometry{
		Size:         size,
		CornerRadius: int(s * 0.2),
		CenterX:      px(312) + offset,
		CenterY:      px(280) + offset,
		HeadRadius:   px(120),
		EyeRadius:    px(25),
		PupilRadius:  px(15),
	}

	g.BodyCenterY = g.CenterY + g.HeadRadius
	g.BodyRadiusX = px(180) / 2
	g.BodyRadiusY = px(200) / 2

	eyeDX, eyeY := px(32), g.CenterY-px(20)
	g.LeftEye = image.Pt(g.CenterX-eyeDX, eyeY)
	g.RightEye = image.Pt(g.CenterX+eyeDX, eyeY)

	noseHalf := px(12)
	g.Nose = [3]image.Point{
		image.Pt(g.CenterX, g.CenterY+px(10)),
		image.Pt(g.CenterX-noseHalf, g.CenterY+px(20)),
		image.Pt(g.CenterX+noseHalf, g.CenterY+px(20)),
	}
	return g
}
