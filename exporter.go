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
	"context"
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/annotate/annotation"
)

// Records looks up an image and the annotations attached to it.
// Annotations must be returned in creation order. Unknown IDs are
// reported with an error wrapping [ErrNotFound].
type Records interface {
	Image(ctx context.Context, id string) (annotation.Image, []annotation.Annotation, error)
}

// Pixels reads the encoded image file stored under the given path.
type Pixels interface {
	ReadPixels(ctx context.Context, path string) ([]byte, error)
}

// Artifact is the result of an export. The caller owns Data.
type Artifact struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter renders stored images together with their annotations.
// It keeps no per-call state and is safe for concurrent use.
type Exporter struct {
	records Records
	pixels  Pixels
	log     *zap.Logger
}

// NewExporter returns an Exporter using the given collaborators.
// If log is nil, nothing is logged.
func NewExporter(records Records, pixels Pixels, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{records: records, pixels: pixels, log: log}
}

// Export renders the image with the given ID.
//
// Invalid options are reported as [*OptionError] before the image is
// looked up. An unknown ID gives an error wrapping [ErrNotFound].
// Failures to read, decode or encode the image are reported as [*IOError].
// Annotations with an unsuitable number of points are left out of the
// drawing; this is not an error.
func (e *Exporter) Export(ctx context.Context, imageID string, opts Options) (*Artifact, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	img, anns, err := e.records.Image(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", imageID, err)
	}

	data, err := e.pixels.ReadPixels(ctx, img.Path)
	if err != nil {
		e.log.Error("Failed to read image",
			zap.String("imageId", imageID),
			zap.String("path", img.Path),
			zap.Error(err))
		return nil, &IOError{Op: "read", Path: img.Path, Err: err}
	}

	if opts.IncludeAnnotations {
		e.logSkipped(imageID, anns)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []byte
	switch opts.Format {
	case FormatRaster:
		out, err = RenderRaster(img, data, anns, opts)
	case FormatVector:
		out, err = RenderVector(img, data, anns, opts)
	}
	if err != nil {
		e.log.Error("Failed to render image",
			zap.String("imageId", imageID),
			zap.String("path", img.Path),
			zap.Stringer("format", opts.Format),
			zap.Error(err))
		return nil, err
	}

	res := &Artifact{
		Data:        out,
		ContentType: opts.Format.ContentType(),
		Filename:    "export-" + imageID + "." + opts.Format.Ext(),
	}
	e.log.Info("Image exported",
		zap.String("imageId", imageID),
		zap.Stringer("format", opts.Format),
		zap.Int("annotations", len(anns)),
		zap.Int("size", len(out)))
	return res, nil
}

func (e *Exporter) logSkipped(imageID string, anns []annotation.Annotation) {
	if !e.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for i := range anns {
		a := &anns[i]
		if _, ok := annotation.Validate(a); ok {
			continue
		}
		e.log.Debug("Skipping annotation",
			zap.String("imageId", imageID),
			zap.String("annotationId", a.ID),
			zap.Stringer("type", a.Kind),
			zap.Int("points", len(a.Points)),
			zap.Stringer("tier", annotation.Tier(a.Confidence)))
	}
}
