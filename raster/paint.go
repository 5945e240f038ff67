// seehuhn.de/go/annotate - render annotations onto images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"image/color"
)

// Paint returns an EmitFunc which composites the colour c onto dst using
// the source-over operator, with the coverage acting as additional alpha.
// Pixels outside dst.Rect are ignored.
func Paint(dst *image.RGBA, c color.NRGBA) EmitFunc {
	sr, sg, sb := float32(c.R), float32(c.G), float32(c.B)
	sa := float32(c.A) / 255
	return func(y, xMin int, coverage []float32) {
		if y < dst.Rect.Min.Y || y >= dst.Rect.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < dst.Rect.Min.X || x >= dst.Rect.Max.X {
				continue
			}
			a := cov * sa
			if a <= 0 {
				continue
			}
			k := dst.PixOffset(x, y)
			px := dst.Pix[k : k+4 : k+4]
			px[0] = blend(px[0], sr, a)
			px[1] = blend(px[1], sg, a)
			px[2] = blend(px[2], sb, a)
			px[3] = blend(px[3], 255, a)
		}
	}
}

// blend computes s·a + d·(1-a) for one premultiplied channel.
func blend(d uint8, s, a float32) uint8 {
	v := s*a + float32(d)*(1-a) + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
