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

// Package annotate draws annotations (bounding boxes, polygons and points)
// on top of a stored image and exports the result, either as a PNG image
// or as a single-page PDF document.
//
// The entry point is [Exporter.Export], which validates the [Options],
// looks up the image and its annotations, reads the pixel data and calls
// [RenderRaster] or [RenderVector]. Both renderers draw the same scene:
// annotations in the given order, later ones on top, each in the colour
// chosen by [annotation.ColorFor] and captioned by
// [annotation.Annotation.LabelText]. Annotations whose point list does not
// fit their kind are left out of the drawing but are still counted in the
// metadata panel.
//
// Annotation coordinates use image pixel space with y pointing down. The
// PDF renderer maps them to page space, where y points up, using
// pageHeight - y.
package annotate
