package stego

import "testing"

func TestThresholdCapacity(t *testing.T) {
	tests := []struct {
		name       string
		candidates int
		channels   int
		want       int
	}{
		{
			name:       "10x10 all candidates single channel",
			candidates: 100,
			channels:   1,
			want:       4, // (100 - 64) / 8
		},
		{
			name:       "terminator exactly fits",
			candidates: 64,
			channels:   1,
			want:       0,
		},
		{
			name:       "terminator does not fit",
			candidates: 63,
			channels:   1,
			want:       -1,
		},
		{
			name:       "zero candidates",
			candidates: 0,
			channels:   1,
			want:       -1,
		},
		{
			name:       "three channels",
			candidates: 100,
			channels:   3,
			want:       29, // (300 - 64) / 8
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThresholdCapacity(tt.candidates, tt.channels)
			if got != tt.want {
				t.Errorf("ThresholdCapacity(%d, %d) = %d, want %d", tt.candidates, tt.channels, got, tt.want)
			}
		})
	}
}

func TestUniformCapacity(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		channels int
		want     int
	}{
		{
			name:     "10x10 single channel",
			width:    10,
			height:   10,
			channels: 1,
			want:     11, // (100 - 8) / 8
		},
		{
			name:     "three channels",
			width:    10,
			height:   10,
			channels: 3,
			want:     36, // (300 - 8) / 8
		},
		{
			name:     "terminator exactly fits",
			width:    4,
			height:   2,
			channels: 1,
			want:     0,
		},
		{
			name:     "terminator does not fit",
			width:    1,
			height:   1,
			channels: 1,
			want:     -1,
		},
		{
			name:     "large carrier",
			width:    1920,
			height:   1080,
			channels: 1,
			want:     259199,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniformCapacity(tt.width, tt.height, tt.channels)
			if got != tt.want {
				t.Errorf("UniformCapacity(%d, %d, %d) = %d, want %d", tt.width, tt.height, tt.channels, got, tt.want)
			}
		})
	}
}

// Raising the threshold never increases the candidate count.
func TestCapacityMonotonicInThreshold(t *testing.T) {
	m := &ImportanceMap{Width: 16, Height: 16, scores: make([]uint8, 256)}
	for i := range m.scores {
		m.scores[i] = uint8(i)
	}

	prev := len(m.Candidates(0))
	for threshold := 1; threshold <= 255; threshold++ {
		count := len(m.Candidates(threshold))
		if count > prev {
			t.Fatalf("candidate count grew from %d to %d at threshold %d", prev, count, threshold)
		}
		prev = count
	}
}
