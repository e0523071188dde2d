package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments is the polygon resolution used for ellipses.
const ellipseSegments = 32

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws the scene onto an ebiten image. It reuses its vertex
// buffers between calls, so one Canvas must not be shared across goroutines.
type Canvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// Target points the canvas at the image for the current frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(bg color.Color) {
	c.dst.Fill(bg)
}

func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col, true)
}

// FillEllipse approximates the rotated ellipse with a polygon and fills it.
func (c *Canvas) FillEllipse(x, y, rx, ry, rotation float64, col color.Color) {
	if rx <= 0 || ry <= 0 || !finite(x, y, rx, ry, rotation) {
		return
	}

	var path vector.Path
	sin, cos := math.Sincos(rotation)
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		px := float32(x + ex*cos - ey*sin)
		py := float32(y + ex*sin + ey*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	r, g, b, a := col.RGBA()
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}

	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
