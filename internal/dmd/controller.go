package dmd

// Controller is the contract shared by both board bindings. The hardware
// protocol is serial: one override register, one frame buffer. Calls block
// until the backend answers and the caller is expected to be the sole owner
// of the underlying device handle.
//
// SetMode does not verify that override is enabled first. Some protocol
// variants guard on it and some do not, so by default the layer adds no
// synthetic check of its own: calling SetMode with override disabled yields
// whatever failure the backend naturally produces. Bindings expose an
// opt-in ensure-override option for deployments that want the guard.
type Controller interface {
	// EnableOverride writes 1 to the override-enable register, turning
	// software control of the update mode on.
	EnableOverride() error

	// DisableOverride writes 0 to the override-enable register, handing
	// update-mode control back to the physical DIP switches.
	DisableOverride() error

	// SetMode writes the mode's register value through the override-value
	// register. Re-selecting the current mode is a legal no-op at the
	// protocol level; the call is transmitted regardless.
	SetMode(UpdateMode) error

	// Close attempts DisableOverride and releases the device handle. It is
	// safe to call after an earlier operation failed; a teardown failure is
	// returned for logging but should not displace the primary error.
	Close() error
}

// Connector is the device lifecycle capability of the managed binding.
// Callers must capability-check ("supports connect") rather than assume it:
//
//	if conn, ok := ctrl.(dmd.Connector); ok { ... }
type Connector interface {
	// Connect establishes the session with device id, configuring the board
	// FPGA from the given bitstream file.
	Connect(id int16, fpgaBinPath string) error

	// Attached reports whether a device session is currently established.
	Attached() bool

	// SpeedOK reports whether the USB link came up in the high-speed class.
	SpeedOK() (bool, error)

	// ChipType queries the mirror chip mounted on the connected board.
	ChipType() (DMDType, error)

	// Float parks all mirrors in their flat state.
	Float() error
}

// ImageLoader is the frame-buffer pipeline capability of the managed
// binding.
type ImageLoader interface {
	// LoadImageToBuffer reads an image file, optionally mirrors it
	// horizontally, and stages it in the on-board frame buffer.
	LoadImageToBuffer(path string, mirrored bool) error

	// LoadBufferToDMD transfers the staged frame to one block, or to the
	// whole array when block is above 16. reset requests an automatic
	// mirror-clocking pulse after the transfer; load4 loads four rows
	// simultaneously.
	LoadBufferToDMD(block Block, reset, load4 bool) error

	// Reset issues a mirror-clocking pulse for the block.
	Reset(block Block) error

	// Clear empties the buffer and mirror content for the block.
	Clear(block Block, reset bool) error
}

// BulkLoader is the raw data-load capability of the native binding.
type BulkLoader interface {
	// LoadData transfers pre-formatted frame data straight to the device.
	LoadData(data []byte) error
}
