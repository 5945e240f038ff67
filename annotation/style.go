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

import "image/color"

// Confidence thresholds. Both bounds are inclusive.
const (
	HighConfidence   = 0.80
	MediumConfidence = 0.60
)

// ConfidenceTier classifies a confidence value.
type ConfidenceTier int

const (
	TierLow ConfidenceTier = iota
	TierMedium
	TierHigh
)

func (t ConfidenceTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// Tier maps a confidence value to its tier.
//
// Values outside [0, 1] are not clamped: anything at or above 0.8 is
// high and anything below 0.6 is low. NaN is low.
func Tier(confidence float64) ConfidenceTier {
	switch {
	case confidence >= HighConfidence:
		return TierHigh
	case confidence >= MediumConfidence:
		return TierMedium
	default:
		return TierLow
	}
}

// Tier colours.
var (
	Green  = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Yellow = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Red    = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// ColorFor returns the display colour for a confidence value:
// green for high, yellow for medium and red for low confidence.
// See [Tier] for the treatment of out-of-range values.
func ColorFor(confidence float64) color.NRGBA {
	switch Tier(confidence) {
	case TierHigh:
		return Green
	case TierMedium:
		return Yellow
	default:
		return Red
	}
}
