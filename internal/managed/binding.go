package managed

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/frame"
)

// Mirror clocking needs settle time between pulses; the board misbehaves
// when resets arrive back to back.
const resetInterval = 50 * time.Millisecond

// Binding adapts the managed control surface to dmd.Controller plus the
// connect and image-pipeline capabilities. The control's stock firmware
// reports 0 on success, the opposite of the native library; the convention
// is normalized here and never leaks to the caller.
type Binding struct {
	ctl            Control
	fs             afero.Fs
	limiter        *rate.Limiter
	convention     dmd.Convention
	threshold      uint8
	ensureOverride bool
	connected      bool
	overrideOn     bool
}

var (
	_ dmd.Controller  = (*Binding)(nil)
	_ dmd.Connector   = (*Binding)(nil)
	_ dmd.ImageLoader = (*Binding)(nil)
)

// Option is a functional option for configuring a Binding.
type Option func(*Binding)

// WithControl substitutes the control surface, used in tests.
func WithControl(ctl Control) Option {
	return func(b *Binding) {
		b.ctl = ctl
	}
}

// WithConvention sets the success-code convention for this deployment.
func WithConvention(c dmd.Convention) Option {
	return func(b *Binding) {
		b.convention = c
	}
}

// WithImageFs substitutes the filesystem used to read source images.
func WithImageFs(fs afero.Fs) Option {
	return func(b *Binding) {
		b.fs = fs
	}
}

// WithThreshold sets the RGB-to-binary conversion threshold.
func WithThreshold(threshold uint8) Option {
	return func(b *Binding) {
		b.threshold = threshold
	}
}

// WithEnsureOverride makes SetMode enable the software override first when
// the register reads back disabled. Off by default, see dmd.Controller.
func WithEnsureOverride(on bool) Option {
	return func(b *Binding) {
		b.ensureOverride = on
	}
}

// New creates a managed binding. Unless WithControl is given it drives the
// HID-backed board control; no device is opened until Connect.
func New(opts ...Option) *Binding {
	b := &Binding{
		convention: dmd.SuccessIsZero,
		fs:         afero.NewOsFs(),
		threshold:  frame.DefaultThreshold,
		limiter:    rate.NewLimiter(rate.Every(resetInterval), 1),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.ctl == nil {
		b.ctl = NewBoardControl(WithFs(b.fs))
	}
	return b
}

// Devices reports how many boards are attached to the host.
func (b *Binding) Devices() (int16, error) {
	n, err := b.ctl.GetNumDevices()
	if err != nil {
		return 0, &dmd.ConnectionError{Index: -1, Cause: err}
	}
	return n, nil
}

// Connect establishes the session with board id, configuring its FPGA from
// the given bitstream file.
func (b *Binding) Connect(id int16, fpgaBinPath string) error {
	code, err := b.ctl.ConnectDevice(id, fpgaBinPath)
	if err != nil || !b.convention.OK(code) {
		return &dmd.ConnectionError{Index: id, Cause: err}
	}
	b.connected = true
	log.Info().Int16("id", id).Str("fpga", fpgaBinPath).Msg("DMD device connected")
	return nil
}

// Attached reports whether a device session is established.
func (b *Binding) Attached() bool {
	return b.connected && b.ctl.IsDeviceAttached()
}

// SpeedOK reports whether the USB link negotiated the high-speed class.
func (b *Binding) SpeedOK() (bool, error) {
	mode, err := b.ctl.GetSpeedMode()
	if err != nil {
		return false, &dmd.ConnectionError{Index: -1, Cause: err}
	}
	return mode == 1, nil
}

// ChipType queries the mirror chip mounted on the connected board.
func (b *Binding) ChipType() (dmd.DMDType, error) {
	code, err := b.ctl.GetDMDTYPE()
	if err != nil {
		return dmd.Unrecognized, &dmd.ConnectionError{Index: -1, Cause: err}
	}
	switch t := dmd.DMDType(code); t {
	case dmd.DLP9500, dmd.DLP7000, dmd.DLP650NIR:
		return t, nil
	}
	return dmd.Unrecognized, nil
}

// Float parks all mirrors flat.
func (b *Binding) Float() error {
	code, err := b.ctl.FloatMirrors()
	if err != nil || !b.convention.OK(code) {
		return &dmd.BufferUploadError{Cause: err}
	}
	return nil
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
	code, err := b.ctl.SetSWOverrideEnable(value)
	if err != nil || !b.convention.OK(code) {
		return &dmd.OverrideEnableError{Value: value, Cause: err}
	}
	b.overrideOn = value == 1
	log.Debug().Int16("value", value).Msg("software override enable written")
	return nil
}

// OverrideActive reports the last override-enable state this binding wrote.
func (b *Binding) OverrideActive() bool {
	return b.overrideOn
}

// SetMode writes the mode's register value through the override-value call.
func (b *Binding) SetMode(mode dmd.UpdateMode) error {
	if b.ensureOverride && !b.overrideOn {
		if err := b.EnableOverride(); err != nil {
			return err
		}
	}

	value := mode.Register()
	code, err := b.ctl.SetSWOverrideValue(value)
	if err != nil || !b.convention.OK(code) {
		return &dmd.OverrideValueError{Value: value, Cause: err}
	}
	log.Debug().Str("mode", mode.String()).Int16("value", value).Msg("update mode written")
	return nil
}

// OverrideValue reads back the update-mode register.
func (b *Binding) OverrideValue() (int16, error) {
	return b.ctl.GetSWOverrideValue()
}

// LoadBufferToDMD transfers the staged frame to one block, or to the whole
// array for selectors above 16. Each call is independently applied to
// hardware state; repeated transfers each reach the mirrors.
func (b *Binding) LoadBufferToDMD(block dmd.Block, reset, load4 bool) error {
	if block == 0 {
		block = dmd.AllBlocks
	}
	if reset {
		b.pace()
	}
	code, err := b.ctl.LoadToDMD(int16(block), reset, load4)
	if err != nil || !b.convention.OK(code) {
		return &dmd.BufferUploadError{Cause: err}
	}
	log.Debug().Int16("block", int16(block)).Bool("reset", reset).Bool("load4", load4).Msg("frame loaded to DMD")
	return nil
}

// Reset issues a mirror-clocking pulse for the block.
func (b *Binding) Reset(block dmd.Block) error {
	if block == 0 {
		block = dmd.AllBlocks
	}
	b.pace()
	code, err := b.ctl.Reset(int16(block))
	if err != nil || !b.convention.OK(code) {
		return &dmd.BufferUploadError{Cause: err}
	}
	return nil
}

// Clear empties buffer and mirror content for the block.
func (b *Binding) Clear(block dmd.Block, reset bool) error {
	if block == 0 {
		block = dmd.AllBlocks
	}
	if reset {
		b.pace()
	}
	code, err := b.ctl.Clear(int16(block), reset)
	if err != nil || !b.convention.OK(code) {
		return &dmd.BufferUploadError{Cause: err}
	}
	return nil
}

// pace spaces mirror-clocking pulses out to the settle interval.
func (b *Binding) pace() {
	r := b.limiter.ReserveN(time.Now(), 1)
	if d := r.Delay(); d > 0 {
		time.Sleep(d)
	}
}

// Close attempts to disable the software override and releases the session.
// A teardown failure is logged and returned, but callers already holding a
// primary error should only log it.
func (b *Binding) Close() error {
	var derr error
	if b.connected || b.overrideOn {
		derr = b.DisableOverride()
		if derr != nil {
			log.Warn().Err(derr).Msg("failed to disable software override during teardown")
		}
	}

	cerr := b.ctl.Close()
	b.connected = false
	return errors.Join(derr, cerr)
}
