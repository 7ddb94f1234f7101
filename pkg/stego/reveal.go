package stego

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/schollz/progressbar/v3"
)

// RevealArgs parameterizes a Reveal call. Threshold and Channels drive
// the importance-guided strategy only; the raster fallbacks always use
// their fixed conventions.
type RevealArgs struct {
	ImagePath string
	Threshold int
	Channels  []Channel
	FEC       bool
	Progress  bool
}

// RevealResult carries the recovered message and the strategy that
// produced it. Strategy is StrategyNone when the whole chain failed, in
// which case Message is empty.
type RevealResult struct {
	Message  string
	Strategy Strategy
	Events   []Event
}

// errEmptyPayload advances the chain when a terminator was found but
// nothing preceded it.
var errEmptyPayload = errors.New("empty payload before terminator")

// revealStrategy is one stage of the fallback chain: it either yields a
// message or a reason to advance.
type revealStrategy struct {
	name Strategy
	run  func(img *image.NRGBA) (string, error)
}

// Reveal extracts a hidden message from the image at args.ImagePath.
//
// The chain is a strict state machine: importance-guided decode first,
// then uniform single-channel raster, then uniform multi-channel raster.
// A strategy failure of any kind advances to the next stage; only path
// validation and image loading can fail the call itself. When every
// stage is exhausted the result carries an empty message rather than an
// error, because the caller has no out-of-band way to know which encoder
// produced the image.
func Reveal(args RevealArgs) (*RevealResult, error) {
	if err := validateImagePath(args.ImagePath); err != nil {
		return nil, err
	}
	raw, err := loadImage(args.ImagePath)
	if err != nil {
		return nil, err
	}
	img := copyImage(raw)

	var log eventLog
	for _, s := range revealChain(args) {
		message, err := s.run(img)
		if err != nil {
			log.add(LevelDebug, EventStrategyFailed, "%s: %v", s.name, err)
			continue
		}
		log.add(LevelInfo, EventStrategySucceeded, "%s recovered %d characters", s.name, len(message))
		return &RevealResult{Message: message, Strategy: s.name, Events: log.events}, nil
	}

	return &RevealResult{Strategy: StrategyNone, Events: log.events}, nil
}

// DetectFormat names the first embedding convention whose decode yields a
// plausible message, or StrategyNone.
func DetectFormat(imagePath string, threshold int) (Strategy, error) {
	result, err := Reveal(RevealArgs{ImagePath: imagePath, Threshold: threshold})
	if err != nil {
		return StrategyNone, err
	}
	return result.Strategy, nil
}

func revealChain(args RevealArgs) []revealStrategy {
	channels := args.Channels
	if len(channels) == 0 {
		channels = []Channel{ChannelRed}
	}

	return []revealStrategy{
		{
			name: StrategySmart,
			run: func(img *image.NRGBA) (string, error) {
				return revealSmart(img, args.Threshold, channels, args.FEC, args.Progress)
			},
		},
		{
			name: StrategyUniform,
			run: func(img *image.NRGBA) (string, error) {
				return revealUniform(img, []Channel{ChannelRed}, args.FEC, args.Progress)
			},
		},
		{
			name: StrategyUniformMulti,
			run: func(img *image.NRGBA) (string, error) {
				return revealUniform(img, []Channel{ChannelRed, ChannelGreen, ChannelBlue}, args.FEC, args.Progress)
			},
		},
	}
}

func revealSmart(img *image.NRGBA, threshold int, channels []Channel, fec, progress bool) (string, error) {
	// The map is rebuilt from the stego image with the LSB of every
	// channel in the read subset cleared, so the candidate sequence
	// matches the one used at conceal time.
	m := buildImportanceMap(img, channels)
	seq := m.Candidates(threshold)
	if len(seq) == 0 {
		return "", fmt.Errorf("no candidates at threshold %d", threshold)
	}

	bits := readCandidateBits(img, seq, channels, revealTick(progress, len(seq)))
	payload, err := unframeSmart(bits)
	if err != nil {
		return "", err
	}
	return finishPayload(payload, fec)
}

func revealUniform(img *image.NRGBA, channels []Channel, fec, progress bool) (string, error) {
	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	bits := readRasterBits(img, channels, revealTick(progress, width*height))
	payload, err := unframeUniform(bits)
	if err != nil {
		return "", err
	}
	return finishPayload(payload, fec)
}

func finishPayload(payload []byte, fec bool) (string, error) {
	if len(payload) == 0 {
		return "", errEmptyPayload
	}
	if fec {
		recovered, err := unarmorPayload(payload)
		if err != nil {
			return "", err
		}
		payload = recovered
	}
	return decodeText(payload), nil
}

func revealTick(enabled bool, totalPixels int) func() {
	if !enabled {
		return nil
	}
	bar := progressbar.NewOptions64(
		int64(totalPixels),
		progressbar.OptionSetDescription("revealing"),
		progressbar.OptionSetWriter(os.Stderr),
	)
	return func() { bar.Add(1) }
}
