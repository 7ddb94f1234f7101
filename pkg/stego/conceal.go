package stego

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Strategy names an embedding convention. Each carries its own pixel
// ordering and terminator, and the reveal chain probes them in a fixed
// order.
type Strategy string

const (
	// StrategySmart is the importance-guided codec: thresholded pixels
	// sorted by edge strength, 64-bit all-ones terminator.
	StrategySmart Strategy = "smart"

	// StrategyUniform is the raster-scan reference variant on a single
	// channel, zero-byte terminator.
	StrategyUniform Strategy = "uniform"

	// StrategyUniformMulti is the raster-scan variant distributing bits
	// round-robin across several channels per pixel.
	StrategyUniformMulti Strategy = "uniform-multi"

	// StrategyNone marks an exhausted reveal chain.
	StrategyNone Strategy = "none"
)

// ConcealArgs parameterizes a Conceal call.
type ConcealArgs struct {
	ImagePath string
	Message   string
	Output    string // normalized to .png; derived from ImagePath when empty
	Threshold int    // importance threshold, smart strategy only
	Channels  []Channel
	Strategy  Strategy
	FEC       bool // Reed-Solomon payload armor
	Progress  bool // render a progress bar on stderr
}

// ConcealResult reports what a successful Conceal did.
type ConcealResult struct {
	Output      string
	Backup      string // empty if the backup attempt failed
	Candidates  int    // smart strategy only
	Capacity    int    // characters, for the chosen strategy
	BitsWritten int
	Events      []Event
}

// Conceal hides args.Message in the carrier at args.ImagePath and writes
// the stego image as PNG. Validation and capacity errors abort before any
// pixel or file is touched; a failed backup is recorded as an event and
// never aborts.
func Conceal(args ConcealArgs) (*ConcealResult, error) {
	if err := validateImagePath(args.ImagePath); err != nil {
		return nil, err
	}

	channels := args.Channels
	if len(channels) == 0 {
		channels = []Channel{ChannelRed}
	}
	strategy := args.Strategy
	if strategy == "" {
		strategy = StrategySmart
	}

	output := args.Output
	if output == "" {
		output = strings.TrimSuffix(args.ImagePath, filepath.Ext(args.ImagePath)) + "_veiled.png"
	}
	output = forcePNGPath(output)

	payload := []byte(args.Message)
	if args.FEC {
		armored, err := armorPayload(payload)
		if err != nil {
			return nil, fmt.Errorf("apply payload armor: %w", err)
		}
		payload = armored
	}

	raw, err := loadImage(args.ImagePath)
	if err != nil {
		return nil, err
	}
	img := copyImage(raw)

	switch strategy {
	case StrategySmart:
		return concealSmart(args, img, payload, channels, output)
	case StrategyUniform, StrategyUniformMulti:
		return concealUniform(args, img, payload, channels, output)
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

func concealSmart(args ConcealArgs, img *image.NRGBA, payload []byte, channels []Channel, output string) (*ConcealResult, error) {
	var log eventLog

	m := buildImportanceMap(img, nil)
	log.add(LevelDebug, EventMapGenerated, "importance map %dx%d", m.Width, m.Height)

	seq := m.Candidates(args.Threshold)
	log.add(LevelDebug, EventCandidatesSelected, "%d pixels at or above threshold %d", len(seq), args.Threshold)

	capacity := ThresholdCapacity(len(seq), len(channels))
	if len(seq) == 0 || capacity < 0 {
		return nil, fmt.Errorf("%w: %d candidates at threshold %d cannot hold the terminator",
			ErrInsufficientCapacity, len(seq), args.Threshold)
	}
	if len(payload) > capacity {
		return nil, fmt.Errorf("%w: maximum %d characters, got %d", ErrMessageTooLarge, capacity, len(payload))
	}

	backup := smartBackupPath(args.ImagePath)
	if err := createBackup(args.ImagePath, backup); err != nil {
		log.add(LevelWarn, EventBackupFailed, "backup to %s failed: %v", backup, err)
		backup = ""
	} else {
		log.add(LevelInfo, EventBackupCreated, "backup written to %s", backup)
	}

	bits := frameSmart(payload)
	writeCandidateBits(img, seq, channels, bits, concealTick(args.Progress, len(bits)/8))

	if err := WritePNG(img, output); err != nil {
		return nil, fmt.Errorf("write output image: %w", err)
	}
	log.add(LevelInfo, EventImageWritten, "stego image written to %s", output)

	return &ConcealResult{
		Output:      output,
		Backup:      backup,
		Candidates:  len(seq),
		Capacity:    capacity,
		BitsWritten: len(bits),
		Events:      log.events,
	}, nil
}

func concealUniform(args ConcealArgs, img *image.NRGBA, payload []byte, channels []Channel, output string) (*ConcealResult, error) {
	var log eventLog

	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	capacity := UniformCapacity(width, height, len(channels))
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %dx%d carrier cannot hold the terminator",
			ErrInsufficientCapacity, width, height)
	}
	if len(payload) > capacity {
		return nil, fmt.Errorf("%w: maximum %d characters, got %d", ErrMessageTooLarge, capacity, len(payload))
	}

	backup := uniformBackupPath(args.ImagePath)
	if err := createBackup(args.ImagePath, backup); err != nil {
		log.add(LevelWarn, EventBackupFailed, "backup to %s failed: %v", backup, err)
		backup = ""
	} else {
		log.add(LevelInfo, EventBackupCreated, "backup written to %s", backup)
	}

	bits := frameUniform(payload)
	writeRasterBits(img, channels, bits, concealTick(args.Progress, len(bits)/8))

	if err := WritePNG(img, output); err != nil {
		return nil, fmt.Errorf("write output image: %w", err)
	}
	log.add(LevelInfo, EventImageWritten, "stego image written to %s", output)

	return &ConcealResult{
		Output:      output,
		Backup:      backup,
		Capacity:    capacity,
		BitsWritten: len(bits),
		Events:      log.events,
	}, nil
}

// concealTick returns a per-byte progress callback, or nil when progress
// rendering is off.
func concealTick(enabled bool, totalBytes int) func() {
	if !enabled {
		return nil
	}
	bar := progressbar.NewOptions64(
		int64(totalBytes),
		progressbar.OptionSetDescription("concealing"),
		progressbar.OptionSetWriter(os.Stderr),
	)
	return func() { bar.Add(1) }
}
