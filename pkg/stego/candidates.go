package stego

import "sort"

// Candidate is a pixel whose importance cleared the threshold.
type Candidate struct {
	X          int
	Y          int
	Importance uint8
}

// Candidates selects every pixel scoring at least threshold and returns
// them fully ordered: importance descending, then y ascending, then x
// ascending. Conceal and Reveal both go through here; the ordering defines
// which bit lands in which pixel, so any divergence between the two sides
// corrupts the payload without a detectable error.
func (m *ImportanceMap) Candidates(threshold int) []Candidate {
	var out []Candidate
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if imp := m.At(x, y); int(imp) >= threshold {
				out = append(out, Candidate{X: x, Y: y, Importance: imp})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Importance != b.Importance {
			return a.Importance > b.Importance
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
