package managed

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/frame"
)

// LoadImageToBuffer reads an image file, optionally mirrors it horizontally,
// and stages it in the on-board frame buffer. BMP, JPEG and GIF sources are
// decoded and packed for the connected chip; a .bin file is taken as a
// pre-converted frame and transferred as is.
//
// The frame is fully rendered in memory before any device write, so a
// failure never leaves a partially mutated buffer behind. Re-reading the
// same path yields the same frame; it is the device transfer that is not
// idempotent.
func (b *Binding) LoadImageToBuffer(path string, mirrored bool) error {
	payload, err := b.renderFrame(path, mirrored)
	if err != nil {
		return &dmd.BufferUploadError{Path: path, Cause: err}
	}

	code, err := b.ctl.MemToFrameBuffer(payload)
	if err != nil || !b.convention.OK(code) {
		return &dmd.BufferUploadError{Path: path, Cause: err}
	}

	log.Debug().Str("path", path).Int("bytes", len(payload)).Bool("mirrored", mirrored).Msg("image staged in frame buffer")
	return nil
}

func (b *Binding) renderFrame(path string, mirrored bool) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return afero.ReadFile(b.fs, path)
	}

	f, err := b.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if mirrored {
		img = imaging.FlipH(img)
	}

	bounds, err := b.chipBounds()
	if err != nil {
		return nil, err
	}
	if img.Bounds().Size() != bounds.Size() {
		img = imaging.Fill(img, bounds.Dx(), bounds.Dy(), imaging.Center, imaging.Lanczos)
	}

	return frame.Pack(img, b.threshold), nil
}

// chipBounds queries the connected chip's resolution. Queried per render
// rather than cached, for the same hot-swap reason the native binding
// re-reads the chip type per load.
func (b *Binding) chipBounds() (image.Rectangle, error) {
	chip, err := b.ChipType()
	if err != nil {
		return image.Rectangle{}, err
	}
	if chip == dmd.Unrecognized {
		return image.Rectangle{}, fmt.Errorf("unrecognized DMD chip, cannot size frame")
	}
	return chip.Bounds(), nil
}
