package stego

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// AnalyzeArgs parameterizes an Analyze call.
type AnalyzeArgs struct {
	OriginalPath string
	StegoPath    string
	HeatmapPath  string // optional; no heatmap is written when empty
	Progress     bool
}

// AnalysisResult holds distortion metrics between a carrier and its stego
// counterpart.
type AnalysisResult struct {
	MSE            float64 // mean squared error per channel per pixel
	PSNR           float64 // peak signal-to-noise ratio (dB)
	ModifiedPixels int
}

// Analyze compares the original carrier with the stego image, returning
// distortion metrics and optionally writing a difference heatmap: black
// for untouched pixels, green to red as the change grows.
func Analyze(args AnalyzeArgs) (*AnalysisResult, error) {
	originalRaw, err := loadImage(args.OriginalPath)
	if err != nil {
		return nil, err
	}
	stegoRaw, err := loadImage(args.StegoPath)
	if err != nil {
		return nil, err
	}

	original := copyImage(originalRaw)
	stego := copyImage(stegoRaw)

	bounds := original.Bounds()
	if bounds != stego.Bounds() {
		return nil, fmt.Errorf("image dimensions do not match: %v vs %v", bounds, stego.Bounds())
	}
	width, height := bounds.Max.X, bounds.Max.Y

	var bar *progressbar.ProgressBar
	if args.Progress {
		bar = progressbar.NewOptions(
			width*height,
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(15),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
		)
	}

	var sumSquaredError float64
	modified := 0
	heatmap := image.NewNRGBA(bounds)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if bar != nil {
				bar.Add(1)
			}
			p1 := getPixel(original, x, y)
			p2 := getPixel(stego, x, y)

			var diffSum float64
			changed := false
			for i := 0; i < 3; i++ {
				diff := float64(p1[i]) - float64(p2[i])
				sumSquaredError += diff * diff
				diffSum += math.Abs(diff)
				if p1[i] != p2[i] {
					changed = true
				}
			}

			if changed {
				modified++
				// A difference of 1 already renders clearly visible.
				intensity := uint8(math.Min(255, diffSum*50))
				heatmap.Set(x, y, color.NRGBA{R: intensity, G: 255 - intensity, B: 0, A: 255})
			} else {
				heatmap.Set(x, y, color.NRGBA{A: 255})
			}
		}
	}

	totalPixels := float64(width * height)
	mse := sumSquaredError / (totalPixels * 3.0)
	psnr := math.Inf(1)
	if mse > 0 {
		psnr = 10 * math.Log10((255*255)/mse)
	}

	if args.HeatmapPath != "" {
		if err := WritePNG(heatmap, args.HeatmapPath); err != nil {
			return nil, fmt.Errorf("write heatmap: %w", err)
		}
	}

	return &AnalysisResult{MSE: mse, PSNR: psnr, ModifiedPixels: modified}, nil
}
