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

package annotation

import (
	"image/color"
	"math"
	"testing"
)

func TestColorThresholds(t *testing.T) {
	cases := []struct {
		conf float64
		want color.NRGBA
	}{
		{1.0, Green},
		{0.80, Green},
		{0.79999, Yellow},
		{0.60, Yellow},
		{0.59999, Red},
		{0.0, Red},

		// out of range values are not clamped
		{1.7, Green},
		{-0.2, Red},
		{math.NaN(), Red},
	}
	for _, tc := range cases {
		if got := ColorFor(tc.conf); got != tc.want {
			t.Errorf("ColorFor(%g) = %v, want %v", tc.conf, got, tc.want)
		}
	}
}

func TestTierString(t *testing.T) {
	if s := Tier(0.9).String(); s != "high" {
		t.Errorf("Tier(0.9) = %s", s)
	}
	if s := Tier(0.7).String(); s != "medium" {
		t.Errorf("Tier(0.7) = %s", s)
	}
	if s := Tier(0.1).String(); s != "low" {
		t.Errorf("Tier(0.1) = %s", s)
	}
}
