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

package annotate

import (
	"image"
	"image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// writePDF writes a single page document with the base image filling the
// page and the layout items painted on top, in order.
func writePDF(w io.Writer, base image.Image, l *pageLayout) error {
	paper := &pdf.Rectangle{
		URx: l.Width * l.Scale,
		URy: l.Height * l.Scale,
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if l.Scale != 1 {
		page.Transform(matrix.Matrix{l.Scale, 0, 0, l.Scale, 0, 0})
	}

	// Images are drawn into the unit square.
	xObj, err := pdfimage.PNG(base, nil)
	if err != nil {
		return err
	}
	page.PushGraphicsState()
	page.Transform(matrix.Matrix{l.Width, 0, 0, l.Height, 0, 0})
	page.DrawXObject(xObj)
	page.PopGraphicsState()

	page.SetLineWidth(strokeWidth)
	page.SetLineJoin(graphics.LineJoinMiter)

	F := standard.Helvetica.New()
	for _, item := range l.Items {
		switch it := item.(type) {
		case rectItem:
			page.SetStrokeColor(deviceRGB(it.Color))
			page.Rectangle(it.X, it.Y, it.W, it.H)
			page.Stroke()
		case polyItem:
			page.SetStrokeColor(deviceRGB(it.Color))
			appendPath(page, polygonPath(it.Points))
			page.Stroke()
		case discItem:
			page.SetFillColor(deviceRGB(it.Color))
			appendPath(page, discPath(it.Center, it.Radius))
			page.Fill()
		case textItem:
			x := it.At.X
			if it.Centred {
				x -= helveticaWidth(it.Text, it.Size) / 2
			}
			page.SetFillColor(deviceRGB(it.Color))
			page.TextBegin()
			page.TextSetFont(F, it.Size)
			page.TextFirstLine(x, it.At.Y)
			page.TextShow(it.Text)
			page.TextEnd()
		}
	}

	return page.Close()
}

// appendPath adds the path to the current PDF path.
// Only straight lines and cubic curves occur in annotation paths.
func appendPath(page *document.Page, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdCubeTo:
			a, b, c := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func deviceRGB(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
