package weather

import (
	"strings"

	"ambient-weather/internal/core"
)

// Kind selects how particles are created and drawn.
type Kind int

const (
	// KindAmbient is the fallback for any category other than snow or rain.
	KindAmbient Kind = iota
	// KindSnow drifts discs slowly downward.
	KindSnow
	// KindRain draws fast vertical streaks.
	KindRain
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSnow:
		return "snow"
	case KindRain:
		return "rain"
	default:
		return "ambient"
	}
}

// ParseKind maps a weather category to a Kind. Matching is case-insensitive
// and anything unrecognized, including the empty string, is ambient.
func ParseKind(category string) Kind {
	switch strings.ToLower(category) {
	case "snow":
		return KindSnow
	case "rain":
		return KindRain
	default:
		return KindAmbient
	}
}

// Style is the shape a particle is rendered as.
type Style int

const (
	// StyleDisc is a filled circle of radius Size.
	StyleDisc Style = iota
	// StyleStreak is a short vertical stroke of length StreakLength.
	StyleStreak
)

// StreakLength is the pixel length of a streak particle.
const StreakLength = 10

// Range is a closed-open interval sampled uniformly. Min == Max is a constant.
type Range struct {
	Min, Max float64
}

// Sample draws a value from the range using src.
func (r Range) Sample(src core.Source) float64 {
	if r.Max == r.Min {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Profile holds the population and distributions for one kind.
type Profile struct {
	Count int
	Size  Range
	VX    Range
	VY    Range
	Style Style
}

// Opacity is shared by every kind.
var Opacity = Range{Min: 0.5, Max: 1.0}

var profiles = map[Kind]Profile{
	KindSnow: {
		Count: 50,
		Size:  Range{2, 5},
		VX:    Range{-1, 1},
		VY:    Range{1, 2},
		Style: StyleDisc,
	},
	KindRain: {
		Count: 100,
		Size:  Range{1, 1},
		VX:    Range{-0.5, 0.5},
		VY:    Range{7, 12},
		Style: StyleStreak,
	},
	KindAmbient: {
		Count: 20,
		Size:  Range{1, 3},
		VX:    Range{-0.25, 0.25},
		VY:    Range{-0.1, 0.1},
		Style: StyleDisc,
	},
}

// ProfileFor returns the profile for k, falling back to ambient.
func ProfileFor(k Kind) Profile {
	if p, ok := profiles[k]; ok {
		return p
	}
	return profiles[KindAmbient]
}
