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

// Package annotation describes images, the annotations attached to them,
// and the rules which decide how an annotation is drawn.
//
// Coordinates are given in image pixel space: the origin is the top-left
// corner of the image and y increases downward.
package annotation

import (
	"fmt"
	"time"
)

// Image is a stored image as seen by the export engine.
type Image struct {
	ID           string    `json:"id" yaml:"id"`
	Path         string    `json:"path" yaml:"path"`                 // handle for the pixel source
	Width        int       `json:"width" yaml:"width"`               // in pixels, > 0
	Height       int       `json:"height" yaml:"height"`             // in pixels, > 0
	OriginalName string    `json:"originalName" yaml:"originalName"` // file name at upload time
	UploadedAt   time.Time `json:"uploadedAt" yaml:"uploadedAt"`
	MimeType     string    `json:"mimeType,omitempty" yaml:"mimeType"` // informational only

	// AnnotationCount is the number of annotations attached to the image,
	// including ones which cannot be drawn.
	AnnotationCount int `json:"annotationCount" yaml:"annotationCount"`
}

// Kind is the structural category of an annotation.
type Kind string

// These are the supported annotation kinds.
// The string values are used on the wire and in stored records.
const (
	BoundingBox Kind = "boundingBox"
	Polygon     Kind = "polygon"
	Point       Kind = "point"
)

// ParseKind converts a wire name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case BoundingBox, Polygon, Point:
		return k, nil
	}
	return "", fmt.Errorf("annotation: unknown kind %q", s)
}

func (k Kind) String() string {
	return string(k)
}

// Vertex is a point in image pixel space.
type Vertex struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Annotation is a labelled geometric region attached to an image.
type Annotation struct {
	ID         string   `json:"id" yaml:"id"`
	Kind       Kind     `json:"type" yaml:"type"`
	Label      string   `json:"label" yaml:"label"`
	Confidence float64  `json:"confidence" yaml:"confidence"` // nominally in [0, 1]
	Points     []Vertex `json:"coordinates" yaml:"coordinates"`

	// Metadata is carried along unchanged and never rendered.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	IsReviewed  bool   `json:"isReviewed,omitempty" yaml:"isReviewed,omitempty"`
	ReviewedBy  string `json:"reviewedBy,omitempty" yaml:"reviewedBy,omitempty"`
	ReviewNotes string `json:"reviewNotes,omitempty" yaml:"reviewNotes,omitempty"`
}

// LabelText returns the caption drawn next to the annotation,
// for example "car (87.5%)".
func (a *Annotation) LabelText() string {
	return fmt.Sprintf("%s (%.1f%%)", a.Label, a.Confidence*100)
}
