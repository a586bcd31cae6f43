// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/kmolyuan/pyslvs-go/ele"
)

// SliderCrank is a planar slider-crank: O2 is the crank's fixed pivot,
// Crank and Rod are the two link lengths, and Offset is the slider's
// line's perpendicular offset from O2's horizontal.
type SliderCrank struct {
	O2     ele.Coord
	Crank  float64
	Rod    float64
	Offset float64
}

// Calc returns the crank-pin (pin) and slider (slider) positions for a
// crank angle thetaDeg measured from the positive x-axis at O2.
func (o SliderCrank) Calc(thetaDeg float64) (pin, slider ele.Coord) {
	theta := thetaDeg * math.Pi / 180
	pin = ele.Coord{X: o.O2.X + o.Crank*math.Cos(theta), Y: o.O2.Y + o.Crank*math.Sin(theta)}
	lineY := o.O2.Y + o.Offset
	dy := pin.Y - lineY
	dx := math.Sqrt(o.Rod*o.Rod - dy*dy)
	slider = ele.Coord{X: pin.X + dx, Y: lineY}
	return
}
