// Package frame converts decoded images into the 1-bit mirror frames the
// D4100 frame buffer holds: one bit per mirror, rows packed MSB-first.
package frame

import (
	"image"
)

// DefaultThreshold is the RGB-to-binary cutoff applied when none is
// configured: luminance at or above it flips the mirror on.
const DefaultThreshold uint8 = 128

// Stride returns the packed row width in bytes for a mirror row of w pixels.
func Stride(w int) int {
	return (w + 7) / 8
}

// Size returns the packed frame size in bytes for the given bounds.
func Size(bounds image.Rectangle) int {
	return Stride(bounds.Dx()) * bounds.Dy()
}

// Luma returns the BT.601 luminance of the pixel at (x, y) as an 8-bit value.
func Luma(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	// 16-bit channels scaled back to 8 bits after weighting.
	return uint8((299*r + 587*g + 114*b) / 1000 >> 8)
}

// Pack converts img into a packed 1-bit frame using the given threshold.
// Pixels with luminance >= threshold are set. The leftmost pixel of each row
// lands in the high bit of the row's first byte; rows shorter than a byte
// multiple are zero-padded on the right.
func Pack(img image.Image, threshold uint8) []byte {
	b := img.Bounds()
	stride := Stride(b.Dx())
	out := make([]byte, stride*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := (y - b.Min.Y) * stride
		for x := b.Min.X; x < b.Max.X; x++ {
			if Luma(img, x, y) >= threshold {
				col := x - b.Min.X
				out[row+col/8] |= 0x80 >> uint(col%8)
			}
		}
	}

	return out
}
