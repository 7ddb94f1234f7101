package stego

import (
	"path/filepath"
	"strings"
)

// ConvertToPNG re-encodes any supported carrier as PNG, the only output
// format the encoders emit. With an empty output the result lands next to
// the input with a .png extension. Returns the written path.
func ConvertToPNG(imagePath, output string) (string, error) {
	if err := validateImagePath(imagePath); err != nil {
		return "", err
	}
	img, err := loadImage(imagePath)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".png"
	}
	output = forcePNGPath(output)

	if err := WritePNG(img, output); err != nil {
		return "", err
	}
	return output, nil
}
