// Package dmd defines the controller contract shared by the native and
// managed DMD board bindings, along with the types and errors that cross it.
package dmd

import "image"

// UpdateMode selects the row-grouping scheme used when the mirror array is
// refreshed. The numeric value of each mode is the exact control-register
// value transmitted to the board.
type UpdateMode byte

const (
	// Single updates one mirror row at a time.
	Single UpdateMode = 0x00

	// Dual updates two rows simultaneously.
	Dual UpdateMode = 0x10

	// Quad updates four rows simultaneously.
	Quad UpdateMode = 0x30

	// Global updates the whole array at once.
	Global UpdateMode = 0x20
)

// Register returns the control-register value for the mode.
func (m UpdateMode) Register() int16 {
	return int16(m)
}

func (m UpdateMode) String() string {
	switch m {
	case Single:
		return "single"
	case Dual:
		return "dual"
	case Quad:
		return "quad"
	case Global:
		return "global"
	}
	return "unknown"
}

// ParseUpdateMode converts a mode name as accepted on the command line.
func ParseUpdateMode(s string) (UpdateMode, bool) {
	switch s {
	case "single":
		return Single, true
	case "dual":
		return Dual, true
	case "quad":
		return Quad, true
	case "global":
		return Global, true
	}
	return Single, false
}

// DMDType identifies the mirror chip mounted on the connected board.
// Values match the codes reported by the vendor interface.
type DMDType int16

const (
	DLP9500      DMDType = 0
	DLP7000      DMDType = 1
	DLP650NIR    DMDType = 7
	Unrecognized DMDType = 15
)

func (t DMDType) String() string {
	switch t {
	case DLP9500:
		return "DLP9500"
	case DLP7000:
		return "DLP7000"
	case DLP650NIR:
		return "DLP650NIR"
	}
	return "unrecognized"
}

// Bounds returns the native mirror-array resolution of the chip, used when
// sizing a frame for the on-board buffer. Unrecognized chips report a zero
// rectangle.
func (t DMDType) Bounds() image.Rectangle {
	switch t {
	case DLP9500:
		return image.Rect(0, 0, 1920, 1080)
	case DLP7000:
		return image.Rect(0, 0, 1024, 768)
	case DLP650NIR:
		return image.Rect(0, 0, 1280, 800)
	}
	return image.Rectangle{}
}

// Block addresses one of the 16 physical mirror blocks. Any value above 16
// means "apply to the whole array"; AllBlocks is the canonical sentinel.
type Block int16

// AllBlocks is the block selector meaning "every block".
const AllBlocks Block = 17

// Valid reports whether the selector addresses a single physical block.
func (b Block) Valid() bool {
	return b >= 1 && b <= 16
}

// Convention captures which return code a backend treats as success. The
// native library and the managed control disagree on this, and some
// deployments of the native library invert it again, so it is an explicit
// configuration value rather than an assumption.
type Convention int

const (
	// SuccessIsOne treats a return code of 1 as success.
	SuccessIsOne Convention = iota

	// SuccessIsZero treats a return code of 0 as success.
	SuccessIsZero
)

// OK reports whether code signals success under the convention.
func (c Convention) OK(code int16) bool {
	if c == SuccessIsZero {
		return code == 0
	}
	return code == 1
}

func (c Convention) String() string {
	if c == SuccessIsZero {
		return "zero"
	}
	return "one"
}

// ParseConvention converts a configuration string ("one" or "zero").
func ParseConvention(s string) (Convention, bool) {
	switch s {
	case "one":
		return SuccessIsOne, true
	case "zero":
		return SuccessIsZero, true
	}
	return SuccessIsOne, false
}
