package sim

import "image/color"

// Canvas is the drawing surface the scene renders onto.
type Canvas interface {
	Clear(bg color.Color)
	FillCircle(x, y, r float64, c color.Color)
	// FillEllipse draws an ellipse with semi-axes rx and ry, rotated by
	// rotation radians around its centre.
	FillEllipse(x, y, rx, ry, rotation float64, c color.Color)
}

// NopCanvas discards every draw call. Used by the headless runner.
type NopCanvas struct{}

func (NopCanvas) Clear(color.Color)                                                    {}
func (NopCanvas) FillCircle(float64, float64, float64, color.Color)                    {}
func (NopCanvas) FillEllipse(float64, float64, float64, float64, float64, color.Color) {}
