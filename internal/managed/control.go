// Package managed binds the full-lifecycle control surface of the D4100
// board: connect, frame buffering, block loads, mirror resets and clears.
// It also hosts the image upload pipeline built on top of that surface.
package managed

//go:generate mockgen -source=control.go -destination=mocks/control_mock.go -package=mocks

// Control is the managed control surface, call for call. Result codes carry
// the control's own convention (0 on success in the stock firmware); the
// binding normalizes them, so callers never see a raw code. An error return
// means the transfer itself failed before a code could be latched.
type Control interface {
	// GetNumDevices reports how many boards are attached to the host.
	GetNumDevices() (int16, error)

	// ConnectDevice establishes the session with board id, configuring its
	// FPGA from the bitstream file. All other calls require a connected
	// session; called while disconnected they fail with the control's own
	// error, which the binding surfaces untouched.
	ConnectDevice(id int16, fpgaBinPath string) (int16, error)

	// IsDeviceAttached reports whether the session is established.
	IsDeviceAttached() bool

	// GetSpeedMode reports the negotiated USB link class (1 = high speed).
	GetSpeedMode() (int16, error)

	// GetDMDTYPE reports the mirror chip code of the connected board.
	GetDMDTYPE() (int16, error)

	// FloatMirrors parks every mirror flat.
	FloatMirrors() (int16, error)

	// MemToFrameBuffer stages a packed 1-bit frame in the on-board buffer.
	MemToFrameBuffer(frame []byte) (int16, error)

	// LoadToDMD transfers the staged frame to the mirror block (or all
	// blocks for selectors above 16), optionally pulsing a reset and
	// optionally loading four rows at a time.
	LoadToDMD(block int16, reset, load4 bool) (int16, error)

	// Reset issues a mirror-clocking pulse for the block.
	Reset(block int16) (int16, error)

	// Clear empties buffer and mirror content for the block.
	Clear(block int16, reset bool) (int16, error)

	// SetSWOverrideValue writes the update-mode register.
	SetSWOverrideValue(value int16) (int16, error)

	// SetSWOverrideEnable writes the override-enable register.
	SetSWOverrideEnable(value int16) (int16, error)

	// GetSWOverrideValue reads back the update-mode register.
	GetSWOverrideValue() (int16, error)

	// Close releases the session and the device handle.
	Close() error
}
