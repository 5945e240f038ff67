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
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"seehuhn.de/go/annotate/annotation"
)

// Postgres reads image records from the "images" and "annotations"
// tables of a PostgreSQL database.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a record store using db, which must have been
// opened with the "postgres" driver.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const imageQuery = `
SELECT i.id, i.path, i.width, i.height, i."originalName", i."uploadedAt", i."mimeType",
	(SELECT count(*) FROM annotations a WHERE a."imageId" = i.id)
FROM images i
WHERE i.id = $1`

const annotationsQuery = `
SELECT id, type, label, confidence, coordinates, metadata,
	"isReviewed", "reviewedBy", "reviewNotes"
FROM annotations
WHERE "imageId" = $1
ORDER BY "createdAt" ASC`

// Image returns the record for id together with its annotations, in
// creation order.
func (p *Postgres) Image(ctx context.Context, id string) (annotation.Image, []annotation.Annotation, error) {
	var img annotation.Image
	err := p.db.QueryRowContext(ctx, imageQuery, id).Scan(
		&img.ID, &img.Path, &img.Width, &img.Height,
		&img.OriginalName, &img.UploadedAt, &img.MimeType,
		&img.AnnotationCount)
	if isMissing(err) {
		return annotation.Image{}, nil, fmt.Errorf("image %q: %w", id, ErrNotFound)
	} else if err != nil {
		return annotation.Image{}, nil, fmt.Errorf("image %q: %w", id, err)
	}

	rows, err := p.db.QueryContext(ctx, annotationsQuery, id)
	if err != nil {
		return annotation.Image{}, nil, fmt.Errorf("image %q annotations: %w", id, err)
	}
	defer rows.Close()

	var anns []annotation.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return annotation.Image{}, nil, fmt.Errorf("image %q annotations: %w", id, err)
		}
		anns = append(anns, a)
	}
	if err := rows.Err(); err != nil {
		return annotation.Image{}, nil, fmt.Errorf("image %q annotations: %w", id, err)
	}
	return img, anns, nil
}

func scanAnnotation(rows *sql.Rows) (annotation.Annotation, error) {
	var (
		a                       annotation.Annotation
		kind                    string
		coords, meta            []byte
		reviewedBy, reviewNotes sql.NullString
	)
	err := rows.Scan(&a.ID, &kind, &a.Label, &a.Confidence, &coords, &meta,
		&a.IsReviewed, &reviewedBy, &reviewNotes)
	if err != nil {
		return a, err
	}
	a.Kind = annotation.Kind(kind)
	a.ReviewedBy = reviewedBy.String
	a.ReviewNotes = reviewNotes.String

	if err := json.Unmarshal(coords, &a.Points); err != nil {
		return a, fmt.Errorf("annotation %s coordinates: %w", a.ID, err)
	}
	if meta != nil {
		if err := json.Unmarshal(meta, &a.Metadata); err != nil {
			return a, fmt.Errorf("annotation %s metadata: %w", a.ID, err)
		}
	}
	return a, nil
}

// isMissing reports whether err means that no image has the requested ID.
// Image IDs are UUIDs, so a malformed ID cannot name an image.
func isMissing(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "invalid_text_representation"
}
