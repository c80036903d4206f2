package managed

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"github.com/dmd-tools/d4100ctl/internal/frame"
)

// Converter turns image files into standalone packed binary frames with a
// configurable RGB-to-binary threshold. Conversion is stateless with respect
// to the device and needs no session.
type Converter struct {
	fs        afero.Fs
	threshold uint8
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithConverterFs substitutes the filesystem used for reads and writes.
func WithConverterFs(fs afero.Fs) ConverterOption {
	return func(c *Converter) {
		c.fs = fs
	}
}

// NewConverter creates a converter with the default threshold.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		fs:        afero.NewOsFs(),
		threshold: frame.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetThreshold sets the luminance cutoff for subsequent conversions.
func (c *Converter) SetThreshold(threshold uint8) {
	c.threshold = threshold
}

// ConvertImage reads the source image, optionally mirrors it horizontally,
// packs it at the source's own resolution and writes the result to dstPath.
func (c *Converter) ConvertImage(srcPath, dstPath string, mirrored bool) error {
	f, err := c.fs.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", srcPath, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %q: %w", srcPath, err)
	}

	if mirrored {
		img = imaging.FlipH(img)
	}

	packed := frame.Pack(img, c.threshold)
	if err := afero.WriteFile(c.fs, dstPath, packed, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", dstPath, err)
	}
	return nil
}
