package stego

import (
	"fmt"
	"image"
	"strings"
)

// Channel identifies a pixel channel inside an NRGBA buffer.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "r"
	case ChannelGreen:
		return "g"
	case ChannelBlue:
		return "b"
	}
	return "?"
}

// ParseChannels turns a spec like "rgb" into a channel subset. Order and
// duplicates are preserved as given; an empty spec means red only.
func ParseChannels(spec string) ([]Channel, error) {
	if spec == "" {
		return []Channel{ChannelRed}, nil
	}
	out := make([]Channel, 0, len(spec))
	for _, r := range strings.ToLower(spec) {
		switch r {
		case 'r':
			out = append(out, ChannelRed)
		case 'g':
			out = append(out, ChannelGreen)
		case 'b':
			out = append(out, ChannelBlue)
		default:
			return nil, fmt.Errorf("unknown channel %q (expected r, g or b)", r)
		}
	}
	return out, nil
}

func channelString(channels []Channel) string {
	var sb strings.Builder
	for _, c := range channels {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// writeCandidateBits embeds each bit into the LSB of a candidate pixel's
// channel. Bits round-robin across the channel subset within a pixel
// before moving to the next candidate. The caller has already verified
// the bits fit; the buffer is mutated in place.
func writeCandidateBits(img *image.NRGBA, seq []Candidate, channels []Channel, bits []uint8, tick func()) {
	n := len(channels)
	for i, bit := range bits {
		c := seq[i/n]
		pixel := getPixel(img, c.X, c.Y)
		ch := channels[i%n]
		pixel[ch] = pixel[ch]&0xFE | bit
		if tick != nil && i%8 == 7 {
			tick()
		}
	}
}

// readCandidateBits mirrors writeCandidateBits: for every candidate, in
// the same order, it extracts the LSB of each channel in the subset.
func readCandidateBits(img *image.NRGBA, seq []Candidate, channels []Channel, tick func()) []uint8 {
	bits := make([]uint8, 0, len(seq)*len(channels))
	for _, c := range seq {
		pixel := getPixel(img, c.X, c.Y)
		for _, ch := range channels {
			bits = append(bits, pixel[ch]&1)
		}
		if tick != nil {
			tick()
		}
	}
	return bits
}

// writeRasterBits embeds bits in row-major scan order, round-robin across
// the channel subset within each pixel.
func writeRasterBits(img *image.NRGBA, channels []Channel, bits []uint8, tick func()) {
	width := img.Bounds().Max.X
	n := len(channels)
	for i, bit := range bits {
		p := i / n
		pixel := getPixel(img, p%width, p/width)
		ch := channels[i%n]
		pixel[ch] = pixel[ch]&0xFE | bit
		if tick != nil && i%8 == 7 {
			tick()
		}
	}
}

// readRasterBits extracts every LSB of the channel subset in row-major
// scan order.
func readRasterBits(img *image.NRGBA, channels []Channel, tick func()) []uint8 {
	width := img.Bounds().Max.X
	height := img.Bounds().Max.Y

	bits := make([]uint8, 0, width*height*len(channels))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := getPixel(img, x, y)
			for _, ch := range channels {
				bits = append(bits, pixel[ch]&1)
			}
			if tick != nil {
				tick()
			}
		}
	}
	return bits
}
