package native

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dmd-tools/d4100ctl/internal/hid"
)

const (
	// Feature report IDs for the override and chip-type registers.
	reportOverrideValue  byte = 0x02
	reportOverrideEnable byte = 0x03
	reportDMDType        byte = 0x04

	// reportLoadHeader announces a bulk frame transfer: chip code and
	// payload length, followed by interrupt OUT packets.
	reportLoadHeader byte = 0x05

	// registerReportSize is the register report layout: report ID, status
	// byte, value in little-endian order.
	registerReportSize = 4

	// loadPacketSize is the interrupt OUT packet size of the FX2 endpoint.
	loadPacketSize = 64

	// statusTransport is returned when the USB transfer itself fails. It is
	// not a success code under either return convention.
	statusTransport int16 = -1
)

// hidLibrary implements Library over the board's HID control interface. The
// deviceIndex arguments of the vendor surface are accepted for fidelity but
// the handle is already bound to one board; opening is what selects it.
type hidLibrary struct {
	device hid.Device
}

var _ Library = (*hidLibrary)(nil)

// OpenLibrary opens the board at the given enumeration index and returns the
// register surface bound to it.
func OpenLibrary(index int16) (*hidLibrary, error) {
	device, err := hid.OpenBoard(index)
	if err != nil {
		return nil, fmt.Errorf("failed to open native library handle: %w", err)
	}
	return &hidLibrary{device: device}, nil
}

// NewHIDLibrary wraps an already open device, used by tests and by callers
// that manage the handle themselves.
func NewHIDLibrary(device hid.Device) *hidLibrary {
	return &hidLibrary{device: device}
}

func (l *hidLibrary) SetSWOverrideValue(value, deviceIndex int16) int16 {
	return l.writeRegister(reportOverrideValue, value)
}

func (l *hidLibrary) SetSWOverrideEnable(value int16) int16 {
	return l.writeRegister(reportOverrideEnable, value)
}

func (l *hidLibrary) GetSWOverrideValue() int16 {
	return l.readRegister(reportOverrideValue)
}

func (l *hidLibrary) GetSWOverrideEnable(deviceIndex int16) int16 {
	return l.readRegister(reportOverrideEnable)
}

func (l *hidLibrary) GetDMDTYPE(deviceIndex int16) int16 {
	return l.readRegister(reportDMDType)
}

func (l *hidLibrary) LoadData(data []byte, dmdType, deviceIndex int16) int16 {
	header := make([]byte, 8)
	header[0] = reportLoadHeader
	binary.LittleEndian.PutUint16(header[2:4], uint16(dmdType))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(data)))
	if _, err := l.device.SendFeatureReport(header); err != nil {
		log.Debug().Err(err).Msg("load header report failed")
		return statusTransport
	}

	for off := 0; off < len(data); off += loadPacketSize {
		end := off + loadPacketSize
		if end > len(data) {
			end = len(data)
		}
		if _, err := l.device.Write(data[off:end]); err != nil {
			log.Debug().Err(err).Int("offset", off).Msg("frame packet write failed")
			return statusTransport
		}
	}

	// The board latches the outcome of the transfer in the header report's
	// status byte.
	return l.status(reportLoadHeader)
}

// Close releases the underlying device handle.
func (l *hidLibrary) Close() error {
	return l.device.Close()
}

// writeRegister sends a register value and reads back the board's result
// code for the write.
func (l *hidLibrary) writeRegister(report byte, value int16) int16 {
	data := make([]byte, registerReportSize)
	data[0] = report
	binary.LittleEndian.PutUint16(data[2:4], uint16(value))
	if _, err := l.device.SendFeatureReport(data); err != nil {
		log.Debug().Err(err).Uint8("report", report).Msg("register write failed")
		return statusTransport
	}
	return l.status(report)
}

// readRegister reads the current register content, not a status code.
func (l *hidLibrary) readRegister(report byte) int16 {
	data := make([]byte, registerReportSize)
	data[0] = report
	if _, err := l.device.GetFeatureReport(data); err != nil {
		log.Debug().Err(err).Uint8("report", report).Msg("register read failed")
		return statusTransport
	}
	return int16(binary.LittleEndian.Uint16(data[2:4]))
}

// status reads the result code the board latched for the last operation on
// the given report.
func (l *hidLibrary) status(report byte) int16 {
	data := make([]byte, registerReportSize)
	data[0] = report
	if _, err := l.device.GetFeatureReport(data); err != nil {
		log.Debug().Err(err).Uint8("report", report).Msg("status read failed")
		return statusTransport
	}
	return int16(int8(data[1]))
}
