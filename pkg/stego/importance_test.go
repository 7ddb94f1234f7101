package stego

import (
	"image"
	"image/color"
	"testing"
)

func solidNRGBA(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestImportanceMapSolidColor(t *testing.T) {
	// A flat carrier has no edges anywhere; normalization maps the flat
	// magnitude grid to the midpoint so every pixel stays eligible at
	// the default threshold.
	img := solidNRGBA(10, 10, color.NRGBA{R: 120, G: 130, B: 140, A: 255})

	m := buildImportanceMap(img, nil)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := m.At(x, y); got != 128 {
				t.Fatalf("score at (%d,%d) = %d; want 128", x, y, got)
			}
		}
	}
}

func TestImportanceMapNormalizationRange(t *testing.T) {
	img := solidNRGBA(12, 12, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	// A bright block in the middle creates strong edges along its rim.
	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 220, G: 220, B: 220, A: 255})
		}
	}

	m := buildImportanceMap(img, nil)
	min, max, _ := m.Stats()
	if min != 0 || max != 255 {
		t.Errorf("normalized range = [%d, %d]; want [0, 255]", min, max)
	}
}

// The reveal side clears the LSBs of the channels it reads before
// scoring, so a stego image whose payload lives in those LSBs must
// produce the map the conceal side saw.
func TestImportanceMapMaskMatchesOriginal(t *testing.T) {
	tests := []struct {
		name string
		mask []Channel
	}{
		{"red only", []Channel{ChannelRed}},
		{"all channels", []Channel{ChannelRed, ChannelGreen, ChannelBlue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := image.NewNRGBA(image.Rect(0, 0, 16, 16))
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					// Even channel values: the conceal-side map sees the
					// same luma the masked reveal-side map reconstructs.
					original.SetNRGBA(x, y, color.NRGBA{
						R: uint8((x * 14) % 128 * 2),
						G: uint8((y * 31) % 128 * 2),
						B: uint8((x*y + 3) % 128 * 2),
						A: 255,
					})
				}
			}

			encoded := copyImage(original)
			for i := 0; i < len(encoded.Pix); i += 4 {
				for _, ch := range tt.mask {
					if (i/4)%2 == 0 {
						encoded.Pix[i+int(ch)] |= 1 // flip LSBs, as an encoder would
					}
				}
			}

			want := buildImportanceMap(original, nil)
			got := buildImportanceMap(encoded, tt.mask)

			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					if want.At(x, y) != got.At(x, y) {
						t.Fatalf("score at (%d,%d): reveal-side %d != conceal-side %d",
							x, y, got.At(x, y), want.At(x, y))
					}
				}
			}
		})
	}
}

func TestImportanceMapStats(t *testing.T) {
	m := mapFromScores(2, 2, []uint8{0, 100, 200, 100})
	min, max, mean := m.Stats()
	if min != 0 || max != 200 || mean != 100 {
		t.Errorf("Stats() = (%d, %d, %f); want (0, 200, 100)", min, max, mean)
	}
}

func TestImportanceMapGray(t *testing.T) {
	m := mapFromScores(2, 1, []uint8{0, 255})
	img := m.Gray()
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(1, 0).Y != 255 {
		t.Errorf("Gray() = %d, %d; want 0, 255", img.GrayAt(0, 0).Y, img.GrayAt(1, 0).Y)
	}
}
