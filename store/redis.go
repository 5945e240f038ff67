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
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"seehuhn.de/go/annotate/annotation"
)

// Redis keeps image records in a Redis database.
//
// Each image is stored under two keys: "image:{id}" holds the JSON
// encoded [annotation.Image] and "image:{id}:annotations" holds a JSON
// array with the annotations in creation order.
type Redis struct {
	client *redis.Client
}

// NewRedis returns a record store backed by client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func imageKey(id string) string       { return "image:" + id }
func annotationsKey(id string) string { return "image:" + id + ":annotations" }

// Put stores an image record and its annotations. If img.AnnotationCount
// is zero, it is set to the number of annotations.
func (r *Redis) Put(ctx context.Context, img annotation.Image, anns []annotation.Annotation) error {
	if img.AnnotationCount == 0 {
		img.AnnotationCount = len(anns)
	}
	if anns == nil {
		anns = []annotation.Annotation{}
	}

	imgJSON, err := json.Marshal(img)
	if err != nil {
		return fmt.Errorf("marshal image: %w", err)
	}
	annsJSON, err := json.Marshal(anns)
	if err != nil {
		return fmt.Errorf("marshal annotations: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, imageKey(img.ID), imgJSON, 0)
		pipe.Set(ctx, annotationsKey(img.ID), annsJSON, 0)
		return nil
	})
	return err
}

// Image returns the record for id together with its annotations.
func (r *Redis) Image(ctx context.Context, id string) (annotation.Image, []annotation.Annotation, error) {
	vals, err := r.client.MGet(ctx, imageKey(id), annotationsKey(id)).Result()
	if err != nil {
		return annotation.Image{}, nil, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return annotation.Image{}, nil, fmt.Errorf("image %q: %w", id, ErrNotFound)
	}
	var img annotation.Image
	if err := json.Unmarshal([]byte(raw), &img); err != nil {
		return annotation.Image{}, nil, fmt.Errorf("image %q: %w", id, err)
	}

	var anns []annotation.Annotation
	if raw, ok := vals[1].(string); ok {
		if err := json.Unmarshal([]byte(raw), &anns); err != nil {
			return annotation.Image{}, nil, fmt.Errorf("image %q annotations: %w", id, err)
		}
	}
	return img, anns, nil
}

// Delete removes an image record. Deleting an unknown ID is not an error.
func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, imageKey(id), annotationsKey(id)).Err()
}
