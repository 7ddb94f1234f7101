package stego

// ImageInfo summarizes a carrier's steganographic potential at a given
// threshold. The format is headerless, so everything here is derived from
// the pixels alone.
type ImageInfo struct {
	Width  int
	Height int

	Candidates        int // pixels at or above the threshold
	ThresholdCapacity int // characters, single channel; -1 if the terminator does not fit
	UniformCapacity   int // characters, raster single channel; same -1 convention
	UniformCapacity3  int // characters, raster over r, g and b; same -1 convention

	MinImportance  uint8
	MaxImportance  uint8
	MeanImportance float64
}

// Inspect loads the carrier and reports its dimensions, importance map
// statistics and capacities at the given threshold.
func Inspect(imagePath string, threshold int) (*ImageInfo, error) {
	if err := validateImagePath(imagePath); err != nil {
		return nil, err
	}
	raw, err := loadImage(imagePath)
	if err != nil {
		return nil, err
	}
	img := copyImage(raw)

	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	m := buildImportanceMap(img, nil)
	seq := m.Candidates(threshold)
	min, max, mean := m.Stats()

	return &ImageInfo{
		Width:             width,
		Height:            height,
		Candidates:        len(seq),
		ThresholdCapacity: ThresholdCapacity(len(seq), 1),
		UniformCapacity:   UniformCapacity(width, height, 1),
		UniformCapacity3:  UniformCapacity(width, height, 3),
		MinImportance:     min,
		MaxImportance:     max,
		MeanImportance:    mean,
	}, nil
}

// BuildImportanceMap exposes the conceal-side importance map for callers
// that want to render or study it.
func BuildImportanceMap(imagePath string) (*ImportanceMap, error) {
	if err := validateImagePath(imagePath); err != nil {
		return nil, err
	}
	raw, err := loadImage(imagePath)
	if err != nil {
		return nil, err
	}
	return buildImportanceMap(copyImage(raw), nil), nil
}
