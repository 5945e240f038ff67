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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
		db.Close()
	})
	return NewPostgres(db), mock
}

func TestPostgres(t *testing.T) {
	p, mock := newMockPostgres(t)

	mock.ExpectQuery(`FROM images i`).
		WithArgs("img-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "path", "width", "height", "originalName", "uploadedAt", "mimeType", "count",
		}).AddRow("img-1", "2024/cat.png", 640, 480, "cat.png", testImage.UploadedAt, "", int64(2)))
	mock.ExpectQuery(`FROM annotations\s+WHERE "imageId" = \$1\s+ORDER BY "createdAt" ASC`).
		WithArgs("img-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "type", "label", "confidence", "coordinates", "metadata",
			"isReviewed", "reviewedBy", "reviewNotes",
		}).
			AddRow("a1", "boundingBox", "cat", []byte("0.9100"),
				[]byte(`[{"x":10,"y":20},{"x":110,"y":220}]`), []byte(`{"source":"model-v2"}`),
				false, nil, nil).
			AddRow("a2", "point", "eye", []byte("0.5500"),
				[]byte(`[{"x":50,"y":60}]`), nil,
				false, nil, nil))

	img, anns, err := p.Image(context.Background(), "img-1")
	if err != nil {
		t.Fatal(err)
	}
	wantImg := testImage
	wantImg.AnnotationCount = 2
	if d := cmp.Diff(wantImg, img); d != "" {
		t.Errorf("image mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(testAnnotations, anns); d != "" {
		t.Errorf("annotations mismatch (-want +got):\n%s", d)
	}
}

func TestPostgresNotFound(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		missing bool
	}{
		{"no row", func(m sqlmock.Sqlmock) {
			m.ExpectQuery(`FROM images`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		}, true},
		{"malformed id", func(m sqlmock.Sqlmock) {
			m.ExpectQuery(`FROM images`).WillReturnError(&pq.Error{Code: "22P02"})
		}, true},
		{"connection lost", func(m sqlmock.Sqlmock) {
			m.ExpectQuery(`FROM images`).WillReturnError(errors.New("connection reset"))
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, mock := newMockPostgres(t)
			tc.setup(mock)

			_, _, err := p.Image(context.Background(), "not-a-uuid")
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrNotFound); got != tc.missing {
				t.Errorf("errors.Is(err, ErrNotFound) = %t, err = %v", got, err)
			}
		})
	}
}

func TestPostgresBadCoordinates(t *testing.T) {
	p, mock := newMockPostgres(t)
	mock.ExpectQuery(`FROM images`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "path", "width", "height", "originalName", "uploadedAt", "mimeType", "count",
		}).AddRow("img-1", "a.png", 10, 10, "a.png", testImage.UploadedAt, "image/png", int64(1)))
	mock.ExpectQuery(`FROM annotations`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "type", "label", "confidence", "coordinates", "metadata",
			"isReviewed", "reviewedBy", "reviewNotes",
		}).AddRow("a1", "point", "x", []byte("0.5"), []byte(`"oops"`), nil, true, "kim", nil))

	if _, _, err := p.Image(context.Background(), "img-1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("unexpected error %v", err)
	}
}
