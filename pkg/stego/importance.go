package stego

import (
	"image"
	"image/color"
	"math"

	"github.com/andresmejia3/veil/pkg/edges"
)

// ImportanceMap scores every pixel of a carrier by local edge strength.
// Busier pixels take payload bits first because LSB flips are least
// visible there. Scores span the full 0..255 range after normalization.
type ImportanceMap struct {
	Width  int
	Height int
	scores []uint8
}

// At returns the score at (x, y).
func (m *ImportanceMap) At(x, y int) uint8 {
	return m.scores[y*m.Width+x]
}

// Stats returns the minimum, maximum and mean score.
func (m *ImportanceMap) Stats() (min, max uint8, mean float64) {
	if len(m.scores) == 0 {
		return 0, 0, 0
	}
	min, max = m.scores[0], m.scores[0]
	var sum int
	for _, s := range m.scores {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
		sum += int(s)
	}
	return min, max, float64(sum) / float64(len(m.scores))
}

// Gray renders the map as a grayscale image, one pixel per score.
func (m *ImportanceMap) Gray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out.SetGray(x, y, color.Gray{Y: m.At(x, y)})
		}
	}
	return out
}

// buildImportanceMap derives the score grid from an NRGBA carrier.
//
// The reveal side must pass the channel subset it is about to read:
// clearing those LSBs before the grayscale conversion recomputes the map
// the conceal side saw, even after payload bits have overwritten them.
// Without the mask the two sides can disagree on which pixels clear the
// threshold and the candidate sequences silently diverge. The conceal
// side passes nil and scores the carrier as-is.
func buildImportanceMap(img *image.NRGBA, mask []Channel) *ImportanceMap {
	gray := grayscale(img, mask)
	mags := edges.Magnitudes(gray)
	return normalizeMagnitudes(mags)
}

// normalizeMagnitudes min-max scales the magnitude grid to 0..255.
// A flat grid (max == min, e.g. a solid-color carrier) maps to the
// midpoint 128 everywhere so every pixel stays eligible at the default
// threshold.
func normalizeMagnitudes(mags [][]float64) *ImportanceMap {
	height := len(mags)
	width := 0
	if height > 0 {
		width = len(mags[0])
	}
	m := &ImportanceMap{Width: width, Height: height, scores: make([]uint8, width*height)}
	if width == 0 || height == 0 {
		return m
	}

	lo, hi := mags[0][0], mags[0][0]
	for y := range mags {
		for x := range mags[y] {
			v := mags[y][x]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if hi == lo {
		for i := range m.scores {
			m.scores[i] = 128
		}
		return m
	}

	scale := 255.0 / (hi - lo)
	for y := range mags {
		for x := range mags[y] {
			m.scores[y*width+x] = uint8(math.Round((mags[y][x] - lo) * scale))
		}
	}
	return m
}
