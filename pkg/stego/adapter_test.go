package stego

import (
	"image/color"
	"reflect"
	"testing"
)

func TestParseChannels(t *testing.T) {
	cases := []struct {
		spec    string
		want    []Channel
		wantErr bool
	}{
		{"", []Channel{ChannelRed}, false},
		{"r", []Channel{ChannelRed}, false},
		{"rgb", []Channel{ChannelRed, ChannelGreen, ChannelBlue}, false},
		{"RGB", []Channel{ChannelRed, ChannelGreen, ChannelBlue}, false},
		{"bg", []Channel{ChannelBlue, ChannelGreen}, false},
		{"rr", []Channel{ChannelRed, ChannelRed}, false},
		{"x", nil, true},
		{"rgx", nil, true},
	}

	for _, tc := range cases {
		got, err := ParseChannels(tc.spec)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseChannels(%q): expected error", tc.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChannels(%q): %v", tc.spec, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseChannels(%q) = %v; want %v", tc.spec, got, tc.want)
		}
	}
}

func TestChannelString(t *testing.T) {
	if got := channelString([]Channel{ChannelRed, ChannelGreen, ChannelBlue}); got != "rgb" {
		t.Errorf("channelString = %q; want %q", got, "rgb")
	}
}

func TestCandidateBitsMirror(t *testing.T) {
	img := solidNRGBA(4, 4, color.NRGBA{R: 120, G: 130, B: 140, A: 255})
	seq := []Candidate{{X: 2, Y: 1}, {X: 0, Y: 0}, {X: 3, Y: 3}, {X: 1, Y: 2}}
	channels := []Channel{ChannelRed, ChannelBlue}
	bits := []uint8{1, 0, 1, 1, 0, 1, 0, 0}

	writeCandidateBits(img, seq, channels, bits, nil)
	got := readCandidateBits(img, seq, channels, nil)

	if !reflect.DeepEqual(got, bits) {
		t.Errorf("read bits %v; want %v", got, bits)
	}

	// Only the LSBs of the touched channels may change.
	pixel := getPixel(img, 2, 1)
	if pixel[1] != 130 || pixel[3] != 255 {
		t.Errorf("untouched channels changed: %v", pixel)
	}
	if pixel[0] != 121 || pixel[2] != 140 {
		t.Errorf("pixel (2,1) = %v; want red LSB set, blue LSB clear", pixel)
	}
}

func TestRasterBitsMirror(t *testing.T) {
	img := solidNRGBA(3, 3, color.NRGBA{R: 120, G: 130, B: 140, A: 255})
	channels := []Channel{ChannelRed, ChannelGreen, ChannelBlue}
	bits := []uint8{1, 1, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1}

	writeRasterBits(img, channels, bits, nil)
	got := readRasterBits(img, channels, nil)

	if !reflect.DeepEqual(got[:len(bits)], bits) {
		t.Errorf("read bits %v; want prefix %v", got[:len(bits)], bits)
	}
	if len(got) != 27 {
		t.Errorf("read %d bits; want 27", len(got))
	}

	// First pixel received bits {1,1,0} across r, g, b.
	pixel := getPixel(img, 0, 0)
	if pixel[0] != 121 || pixel[1] != 131 || pixel[2] != 140 {
		t.Errorf("pixel (0,0) = %v", pixel)
	}
}

func TestRasterBitsRowMajorOrder(t *testing.T) {
	img := solidNRGBA(3, 2, color.NRGBA{R: 120, G: 130, B: 140, A: 255})
	bits := []uint8{1, 0, 1, 0, 1, 0}

	writeRasterBits(img, []Channel{ChannelRed}, bits, nil)

	// Bit i lands at (i%width, i/width).
	wantRed := map[[2]int]uint8{
		{0, 0}: 121, {1, 0}: 120, {2, 0}: 121,
		{0, 1}: 120, {1, 1}: 121, {2, 1}: 120,
	}
	for pos, want := range wantRed {
		if got := getPixel(img, pos[0], pos[1])[0]; got != want {
			t.Errorf("red at (%d,%d) = %d; want %d", pos[0], pos[1], got, want)
		}
	}
}
