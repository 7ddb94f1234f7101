// Package edges computes gradient-magnitude maps from grayscale grids.
package edges

import "math"

// Sobel kernels:
//   X: [-1 0 +1; -2 0 +2; -1 0 +1]
//   Y: [-1 -2 -1; 0 0 0; +1 +2 +1]
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Magnitudes applies the Sobel operator to a grayscale grid indexed as
// gray[y][x] and returns the gradient magnitude at every position.
// Sampling outside the grid clamps to the nearest edge pixel, so the
// output has the same dimensions as the input.
func Magnitudes(gray [][]uint8) [][]float64 {
	height := len(gray)
	if height == 0 {
		return nil
	}
	width := len(gray[0])

	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := int(sample(gray, x+kx, y+ky, width, height))
					gx += sobelX[ky+1][kx+1] * v
					gy += sobelY[ky+1][kx+1] * v
				}
			}
			out[y][x] = math.Sqrt(float64(gx*gx + gy*gy))
		}
	}
	return out
}

func sample(gray [][]uint8, x, y, width, height int) uint8 {
	if x < 0 {
		x = 0
	} else if x >= width {
		x = width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= height {
		y = height - 1
	}
	return gray[y][x]
}
