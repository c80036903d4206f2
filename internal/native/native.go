// Package native binds the register surface of the D4100 USB library: short
// in, short out calls against the software-override registers plus a bulk
// frame load. It is the lean of the two backends; the richer session
// lifecycle lives in package managed.
package native

//go:generate mockgen -source=native.go -destination=mocks/library_mock.go -package=mocks

// Library is the vendor library surface, symbol for symbol. Every call uses
// the fixed-width integer convention of the original API: arguments and
// return codes are shorts, and a return code's meaning depends on the
// deployment's success convention (see dmd.Convention).
type Library interface {
	// SetSWOverrideValue writes the update-mode register and returns the
	// library's result code.
	SetSWOverrideValue(value, deviceIndex int16) int16

	// SetSWOverrideEnable writes the override-enable register (1 enables,
	// 0 disables) and returns the library's result code.
	SetSWOverrideEnable(value int16) int16

	// GetSWOverrideValue reads back the update-mode register.
	GetSWOverrideValue() int16

	// GetSWOverrideEnable reads the override-enable flag (1 or 0). This is
	// the register content, not a result code.
	GetSWOverrideEnable(deviceIndex int16) int16

	// GetDMDTYPE reports the mirror chip code of the device.
	GetDMDTYPE(deviceIndex int16) int16

	// LoadData transfers a pre-formatted frame to the device. dmdType must
	// be the chip code the frame was formatted for.
	LoadData(data []byte, dmdType, deviceIndex int16) int16
}
