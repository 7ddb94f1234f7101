package edges

import "testing"

func makeGrid(width, height int, fill uint8) [][]uint8 {
	grid := make([][]uint8, height)
	for y := range grid {
		grid[y] = make([]uint8, width)
		for x := range grid[y] {
			grid[y][x] = fill
		}
	}
	return grid
}

func TestMagnitudesFlatGrid(t *testing.T) {
	grid := makeGrid(8, 6, 137)

	mags := Magnitudes(grid)

	if len(mags) != 6 || len(mags[0]) != 8 {
		t.Fatalf("unexpected output dimensions %dx%d", len(mags[0]), len(mags))
	}
	for y := range mags {
		for x := range mags[y] {
			if mags[y][x] != 0 {
				t.Errorf("flat grid magnitude at (%d,%d) = %f; want 0", x, y, mags[y][x])
			}
		}
	}
}

func TestMagnitudesVerticalEdge(t *testing.T) {
	// Left half dark, right half bright. The boundary columns must light
	// up while columns far from the step stay at zero.
	grid := makeGrid(10, 10, 0)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			grid[y][x] = 200
		}
	}

	mags := Magnitudes(grid)

	if mags[5][4] == 0 || mags[5][5] == 0 {
		t.Errorf("expected nonzero magnitude at the step, got %f and %f", mags[5][4], mags[5][5])
	}
	if mags[5][1] != 0 || mags[5][8] != 0 {
		t.Errorf("expected zero magnitude away from the step, got %f and %f", mags[5][1], mags[5][8])
	}
}

func TestMagnitudesDeterministic(t *testing.T) {
	grid := makeGrid(12, 12, 0)
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = uint8((x*31 + y*17) % 256)
		}
	}

	a := Magnitudes(grid)
	b := Magnitudes(grid)
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("magnitude at (%d,%d) differs between runs", x, y)
			}
		}
	}
}

func TestMagnitudesEmpty(t *testing.T) {
	if got := Magnitudes(nil); got != nil {
		t.Errorf("Magnitudes(nil) = %v; want nil", got)
	}
}
