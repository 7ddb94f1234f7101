package stego

import (
	"fmt"
	"unicode/utf8"
)

// Two framing conventions coexist and must stay distinct: the
// importance-guided path terminates the payload with 64 one-bits, the
// uniform raster paths with a single zero byte. The fallback chain relies
// on probing each convention with its own terminator.
const (
	smartTerminatorBytes = 8 // 8 x 0xFF
	smartTerminatorBits  = smartTerminatorBytes * 8

	uniformTerminatorBits = 8 // one 0x00 byte
)

// bytesToBits expands payload bytes MSB-first into one bit per element.
func bytesToBits(data []byte) []uint8 {
	bits := make([]uint8, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits MSB-first. Trailing bits short of a byte are
// dropped.
func bitsToBytes(bits []uint8) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i+j]
		}
		out = append(out, b)
	}
	return out
}

// frameSmart appends the 64-bit all-ones terminator to the payload bits.
func frameSmart(payload []byte) []uint8 {
	bits := bytesToBits(payload)
	for i := 0; i < smartTerminatorBits; i++ {
		bits = append(bits, 1)
	}
	return bits
}

// frameUniform appends the 8-bit all-zero terminator to the payload bits.
func frameUniform(payload []byte) []uint8 {
	bits := bytesToBits(payload)
	for i := 0; i < uniformTerminatorBits; i++ {
		bits = append(bits, 0)
	}
	return bits
}

// unframeSmart scans the assembled byte stream for the first run of eight
// 0xFF bytes and returns everything before it. The payload is always a
// whole number of bytes, so the terminator can only start on a byte
// boundary; scanning at byte granularity is what lets a payload ending in
// one-bits survive unframing intact.
func unframeSmart(bits []uint8) ([]byte, error) {
	stream := bitsToBytes(bits)
	for i := 0; i+smartTerminatorBytes <= len(stream); i++ {
		run := true
		for j := 0; j < smartTerminatorBytes; j++ {
			if stream[i+j] != 0xFF {
				run = false
				break
			}
		}
		if run {
			return stream[:i], nil
		}
	}
	return nil, fmt.Errorf("%w: no 64-bit terminator in %d bits", ErrTerminatorNotFound, len(bits))
}

// unframeUniform scans the assembled byte stream for the first zero byte
// and returns everything before it.
func unframeUniform(bits []uint8) ([]byte, error) {
	stream := bitsToBytes(bits)
	for i, b := range stream {
		if b == 0x00 {
			return stream[:i], nil
		}
	}
	return nil, fmt.Errorf("%w: no zero terminator in %d bits", ErrTerminatorNotFound, len(bits))
}

// decodeText tries strict UTF-8 first and falls back to Latin-1, which
// maps every byte value. Mojibake beats throwing away a decode attempt
// when a pixel-order mismatch has garbled a few bytes.
func decodeText(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	runes := make([]rune, len(payload))
	for i, b := range payload {
		runes[i] = rune(b)
	}
	return string(runes)
}

// ThresholdCapacity is the importance-guided capacity in characters for a
// given candidate count and channel count. Negative values mean even the
// terminator does not fit.
func ThresholdCapacity(candidates, channels int) int {
	bits := candidates*channels - smartTerminatorBits
	if bits < 0 {
		return -1
	}
	return bits / 8
}

// UniformCapacity is the raster-scan capacity in characters for a carrier
// of the given dimensions and channel count. Negative values mean even
// the terminator does not fit, same convention as ThresholdCapacity.
func UniformCapacity(width, height, channels int) int {
	bits := width*height*channels - uniformTerminatorBits
	if bits < 0 {
		return -1
	}
	return bits / 8
}
