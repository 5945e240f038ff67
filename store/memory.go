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

package store

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/annotate/annotation"
)

// Memory is an in-process store for image records and pixel data.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	images map[string]record
	pixels map[string][]byte
}

type record struct {
	Image       annotation.Image
	Annotations []annotation.Annotation
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		images: make(map[string]record),
		pixels: make(map[string][]byte),
	}
}

// Add stores an image record together with its annotations, replacing any
// previous record with the same ID. If img.AnnotationCount is zero, it is
// set to the number of annotations.
func (m *Memory) Add(img annotation.Image, anns ...annotation.Annotation) {
	if img.AnnotationCount == 0 {
		img.AnnotationCount = len(anns)
	}
	m.mu.Lock()
	m.images[img.ID] = record{Image: img, Annotations: slices.Clone(anns)}
	m.mu.Unlock()
}

// SetPixels stores the encoded image file for the given path.
func (m *Memory) SetPixels(path string, data []byte) {
	m.mu.Lock()
	m.pixels[path] = slices.Clone(data)
	m.mu.Unlock()
}

// Image returns the record for id and its annotations in creation order.
func (m *Memory) Image(ctx context.Context, id string) (annotation.Image, []annotation.Annotation, error) {
	m.mu.RLock()
	rec, ok := m.images[id]
	m.mu.RUnlock()
	if !ok {
		return annotation.Image{}, nil, fmt.Errorf("image %q: %w", id, ErrNotFound)
	}
	return rec.Image, slices.Clone(rec.Annotations), nil
}

// ReadPixels returns a copy of the bytes stored for path.
func (m *Memory) ReadPixels(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data, ok := m.pixels[path]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("pixels %q: %w", path, ErrNotFound)
	}
	return slices.Clone(data), nil
}

// Fixtures is the YAML manifest read by [Memory.LoadFixtures].
type Fixtures struct {
	Images []FixtureImage `yaml:"images"`
}

// FixtureImage is one image entry of a fixture manifest.
type FixtureImage struct {
	annotation.Image `yaml:",inline"`
	Annotations      []annotation.Annotation `yaml:"annotations"`
}

// LoadFixtures reads a YAML manifest and adds every image in it.
// It returns the number of images added.
func (m *Memory) LoadFixtures(r io.Reader) (int, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return 0, fmt.Errorf("fixtures: %w", err)
	}
	for i, img := range f.Images {
		if img.ID == "" {
			return i, fmt.Errorf("fixtures: image %d has no id", i)
		}
		m.Add(img.Image, img.Annotations...)
	}
	return len(f.Images), nil
}
