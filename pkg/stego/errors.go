package stego

import "errors"

// Sentinel errors returned by the package. Callers should match them with
// errors.Is since most are wrapped with extra context before returning.
var (
	// ErrFileNotFound indicates the carrier path does not exist.
	ErrFileNotFound = errors.New("stego: image file not found")

	// ErrUnsupportedFormat indicates the carrier extension is not one of
	// .png, .jpg, .jpeg or .bmp.
	ErrUnsupportedFormat = errors.New("stego: unsupported image format")

	// ErrImageLoad indicates the file exists but could not be decoded.
	ErrImageLoad = errors.New("stego: failed to decode image")

	// ErrMessageTooLarge indicates the framed message does not fit in the
	// carrier's capacity. Raised before any pixel is touched.
	ErrMessageTooLarge = errors.New("stego: message too large for carrier")

	// ErrInsufficientCapacity indicates too few pixels cleared the
	// importance threshold to hold even the terminator.
	ErrInsufficientCapacity = errors.New("stego: not enough qualifying pixels")

	// ErrTerminatorNotFound indicates extraction exhausted all candidate
	// pixels without finding a terminator pattern.
	ErrTerminatorNotFound = errors.New("stego: terminator not found")
)
