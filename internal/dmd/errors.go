package dmd

import "fmt"

// The four error kinds below are the only failures this layer raises.
// Backend-specific failures are translated into one of them before they
// cross the controller boundary; the original cause stays reachable
// through Unwrap.

// OverrideValueError reports a rejected update-mode register write. Value is
// the register value that was attempted, not the mode name, since the
// protocol-level diagnostics are expressed in register terms.
type OverrideValueError struct {
	Value int16
	Cause error
}

func (e *OverrideValueError) Error() string {
	return fmt.Sprintf("failed to set SW override value %#02x", uint16(e.Value))
}

func (e *OverrideValueError) Unwrap() error { return e.Cause }

// OverrideEnableError reports a rejected override enable (value 1) or
// disable (value 0) write.
type OverrideEnableError struct {
	Value int16
	Cause error
}

func (e *OverrideEnableError) Error() string {
	if e.Value == 1 {
		return "failed to enable software override"
	}
	return "failed to disable software override"
}

func (e *OverrideEnableError) Unwrap() error { return e.Cause }

// ConnectionError reports that the device connection could not be
// established or has been lost.
type ConnectionError struct {
	Index int16
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect DMD device %d", e.Index)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// BufferUploadError reports a failed transfer of image data into the
// on-board frame buffer or from the buffer to the mirror array. Path is the
// offending source file, or empty for in-memory transfers.
type BufferUploadError struct {
	Path  string
	Cause error
}

func (e *BufferUploadError) Error() string {
	if e.Path == "" {
		return "failed to transfer frame buffer data"
	}
	return fmt.Sprintf("failed to load %q into frame buffer", e.Path)
}

func (e *BufferUploadError) Unwrap() error { return e.Cause }
