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

// Export writes every example scene as PNG and PDF file into a directory.
//
// Usage:
//
//	go run ./testcases/export [-o dir] [-metadata]
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/annotate"
	"seehuhn.de/go/annotate/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/scenes", "output directory")
	metadata := flag.Bool("metadata", false, "include the metadata panel")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := export(*outDir, name, &sc, *metadata); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func export(dir, name string, sc *testcases.Scene, metadata bool) error {
	img := sc.Image()
	data := sc.PNG()

	for _, format := range []annotate.Format{annotate.FormatRaster, annotate.FormatVector} {
		opts := annotate.Options{
			Format:             format,
			IncludeAnnotations: true,
			IncludeMetadata:    metadata,
		}
		var out []byte
		var err error
		if format == annotate.FormatRaster {
			out, err = annotate.RenderRaster(img, data, sc.Annotations, opts)
		} else {
			out, err = annotate.RenderVector(img, data, sc.Annotations, opts)
		}
		if err != nil {
			return err
		}
		fname := filepath.Join(dir, name+"."+format.Ext())
		if err := os.WriteFile(fname, out, 0o644); err != nil {
			return err
		}
	}
	return nil
}
