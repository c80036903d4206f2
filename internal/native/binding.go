package native

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
)

// Binding adapts the vendor register surface to the dmd.Controller contract.
// Return codes are interpreted through an explicit convention; the library's
// default build treats 1 as success, but some deployments invert this, so it
// is configuration, never an assumption.
type Binding struct {
	lib            Library
	closer         func() error
	convention     dmd.Convention
	index          int16
	ensureOverride bool
}

var (
	_ dmd.Controller = (*Binding)(nil)
	_ dmd.BulkLoader = (*Binding)(nil)
)

// Option is a functional option for configuring a Binding.
type Option func(*Binding)

// WithLibrary substitutes the vendor library surface, used in tests.
func WithLibrary(lib Library) Option {
	return func(b *Binding) {
		b.lib = lib
	}
}

// WithConvention sets the success-code convention for this deployment.
func WithConvention(c dmd.Convention) Option {
	return func(b *Binding) {
		b.convention = c
	}
}

// WithDeviceIndex selects the board by enumeration index.
func WithDeviceIndex(index int16) Option {
	return func(b *Binding) {
		b.index = index
	}
}

// WithEnsureOverride makes SetMode enable the software override first when
// the register reports it off. Off by default: the layer otherwise adds no
// guard the protocol does not have.
func WithEnsureOverride(on bool) Option {
	return func(b *Binding) {
		b.ensureOverride = on
	}
}

// New creates a native binding. Unless WithLibrary is given, it opens the
// board at the configured index.
func New(opts ...Option) (*Binding, error) {
	b := &Binding{convention: dmd.SuccessIsOne}
	for _, opt := range opts {
		opt(b)
	}

	if b.lib == nil {
		lib, err := OpenLibrary(b.index)
		if err != nil {
			return nil, &dmd.ConnectionError{Index: b.index, Cause: err}
		}
		b.lib = lib
		b.closer = lib.Close
	}

	return b, nil
}

// EnableOverride turns software control of the update mode on.
func (b *Binding) EnableOverride() error {
	return b.setEnable(1)
}

// DisableOverride hands update-mode control back to the DIP switches.
func (b *Binding) DisableOverride() error {
	return b.setEnable(0)
}

func (b *Binding) setEnable(value int16) error {
	code := b.lib.SetSWOverrideEnable(value)
	if !b.convention.OK(code) {
		return &dmd.OverrideEnableError{Value: value}
	}
	log.Debug().Int16("value", value).Msg("software override enable written")
	return nil
}

// SetMode writes the mode's register value through the override-value call.
func (b *Binding) SetMode(mode dmd.UpdateMode) error {
	if b.ensureOverride && b.lib.GetSWOverrideEnable(b.index) != 1 {
		if err := b.EnableOverride(); err != nil {
			return err
		}
	}

	value := mode.Register()
	code := b.lib.SetSWOverrideValue(value, b.index)
	if !b.convention.OK(code) {
		return &dmd.OverrideValueError{Value: value}
	}
	log.Debug().Str("mode", mode.String()).Int16("value", value).Msg("update mode written")
	return nil
}

// OverrideValue reads back the update-mode register.
func (b *Binding) OverrideValue() int16 {
	return b.lib.GetSWOverrideValue()
}

// LoadData transfers a pre-formatted frame to the device. The chip type is
// re-queried on every call rather than cached: the hardware is hot-swappable
// underneath this layer and the transfer call needs the current code.
func (b *Binding) LoadData(data []byte) error {
	chip := b.lib.GetDMDTYPE(b.index)
	code := b.lib.LoadData(data, chip, b.index)
	if !b.convention.OK(code) {
		return &dmd.BufferUploadError{}
	}
	log.Debug().Int("bytes", len(data)).Int16("chip", chip).Msg("bulk frame loaded")
	return nil
}

// Close disables the software override and releases the library handle. The
// disable is attempted on every teardown path; its failure is logged and
// returned but callers holding a primary error should not let it displace
// that error.
func (b *Binding) Close() error {
	derr := b.DisableOverride()
	if derr != nil {
		log.Warn().Err(derr).Msg("failed to disable software override during teardown")
	}

	var cerr error
	if b.closer != nil {
		cerr = b.closer()
	}
	return errors.Join(derr, cerr)
}
