package stego

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

// validateImagePath checks that the path exists and carries a supported
// extension. Both checks run before any pixel is read.
func validateImagePath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	defer file.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		img, err = bmp.Decode(file)
	} else {
		img, _, err = image.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}

func copyImage(img image.Image) *image.NRGBA {
	output := image.NewNRGBA(img.Bounds())
	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			output.Set(x, y, img.At(x, y))
		}
	}
	return output
}

func getPixel(img *image.NRGBA, x, y int) []uint8 {
	index := img.PixOffset(x, y)
	return img.Pix[index : index+4]
}

// grayscale flattens the image to a luma grid indexed as grid[y][x].
// Channels listed in mask get their LSB cleared before conversion, which
// re-derives the pre-embedding luma from a stego image for whatever
// channel subset carried payload bits.
func grayscale(img *image.NRGBA, mask []Channel) [][]uint8 {
	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	keep := [3]uint8{0xFF, 0xFF, 0xFF}
	for _, ch := range mask {
		keep[ch] = 0xFE
	}

	grid := make([][]uint8, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]uint8, width)
		for x := 0; x < width; x++ {
			pixel := getPixel(img, x, y)
			r := pixel[0] & keep[0]
			g := pixel[1] & keep[1]
			b := pixel[2] & keep[2]
			luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			grid[y][x] = uint8(math.Round(luma))
		}
	}
	return grid
}

// forcePNGPath swaps whatever extension the caller asked for with .png.
// Lossy output would destroy the LSB payload.
func forcePNGPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

// WritePNG encodes img as PNG at path.
func WritePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

// createBackup copies the carrier byte-for-byte to dst. Best effort: the
// caller records failures as events, never errors.
func createBackup(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// smartBackupPath derives <base>_backup<ext> next to the carrier.
func smartBackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_backup" + ext
}

// uniformBackupPath derives <path>.backup.
func uniformBackupPath(path string) string {
	return path + ".backup"
}
