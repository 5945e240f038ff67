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
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"math"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotate/annotation"
	"seehuhn.de/go/annotate/raster"
)

// labelFace is used for annotation labels and the metadata panel.
var labelFace font.Face = basicfont.Face7x13

// RenderRaster decodes the image file data, draws the annotations and the
// metadata panel selected by opts on top, and returns the result as PNG.
//
// The decoded image must have the size recorded in img.
// Options are expected to be valid, see [Options.Validate].
// Failures are reported as [*IOError].
func RenderRaster(img annotation.Image, data []byte, anns []annotation.Annotation, opts Options) ([]byte, error) {
	canvas, err := decodeBase(img, data)
	if err != nil {
		return nil, err
	}
	s := newScene(img, anns, &opts)
	drawScene(canvas, s)

	out := scaleImage(canvas, opts.scale())

	enc := &png.Encoder{CompressionLevel: opts.compressionLevel()}
	buf := &bytes.Buffer{}
	if err := enc.Encode(buf, out); err != nil {
		return nil, &IOError{Op: "encode", Path: img.Path, Err: err}
	}
	return buf.Bytes(), nil
}

// decodeBase decodes the image file and copies it into a new RGBA canvas
// with its origin at (0, 0).
func decodeBase(img annotation.Image, data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &IOError{Op: "decode", Path: img.Path, Err: err}
	}
	b := src.Bounds()
	if b.Dx() != img.Width || b.Dy() != img.Height {
		err := fmt.Errorf("decoded size %dx%d does not match recorded size %dx%d",
			b.Dx(), b.Dy(), img.Width, img.Height)
		return nil, &IOError{Op: "decode", Path: img.Path, Err: err}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)
	return canvas, nil
}

func drawScene(dst *image.RGBA, s *scene) {
	clip := rect.Rect{URx: float64(s.width), URy: float64(s.height)}
	r := raster.NewRasteriser(clip)

	for _, m := range s.marks {
		r.Reset(clip)
		paint := raster.Paint(dst, m.color)
		switch g := m.shape.(type) {
		case annotation.Box:
			r.Width = strokeWidth
			r.Stroke(boxPath(g), paint)
		case annotation.Outline:
			r.Width = strokeWidth
			r.Stroke(outlinePath(g), paint)
		case annotation.Marker:
			r.Fill(discPath(vec.Vec2{X: g.At.X, Y: g.At.Y}, markerRadius), paint)
		}
		drawLabel(dst, m.label, m.labelAt, m.centred, m.color)
	}

	if s.meta != nil {
		panel := image.Rect(panelX, panelY, panelX+panelWidth, panelY+panelHeight)
		draw.Draw(dst, panel, image.NewUniform(panelColor), image.Point{}, draw.Over)
		for i, line := range s.meta {
			at := annotation.Vertex{X: metaX, Y: metaBaseline(i)}
			drawLabel(dst, line, at, false, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
}

// drawLabel draws text with its baseline at at.Y. If centred is set, the
// text is centred horizontally on at.X, otherwise it starts there.
func drawLabel(dst *image.RGBA, text string, at annotation.Vertex, centred bool, c color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: labelFace,
	}
	x := fixed.Int26_6(math.Round(at.X * 64))
	if centred {
		x -= d.MeasureString(text) / 2
	}
	d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(math.Round(at.Y * 64))}
	d.DrawString(text)
}

// scaleImage resizes src by the given factor. The result has at least one
// pixel in each direction.
func scaleImage(src *image.RGBA, scale float64) *image.RGBA {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
