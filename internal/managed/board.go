package managed

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/dmd-tools/d4100ctl/internal/hid"
)

const (
	// Feature report IDs of the managed control interface.
	reportConnect byte = 0x10
	reportStatus  byte = 0x11
	reportMirrors byte = 0x12
	reportFrame   byte = 0x13
	reportLoad    byte = 0x14
	reportReset   byte = 0x15
	reportClear   byte = 0x16
	reportValue   byte = 0x17
	reportEnable  byte = 0x18

	// controlReportSize is the short report layout: report ID, status byte,
	// up to four little-endian payload bytes.
	controlReportSize = 6

	// statusAttached is set in the status report while the session is up.
	statusAttached byte = 0x01

	// framePacketSize is the interrupt OUT packet size of the FX2 endpoint.
	framePacketSize = 64

	// statusTransport is returned when the USB transfer itself fails; the
	// stock firmware never latches it as a success code.
	statusTransport int16 = -1
)

// BoardControl implements Control over the board's HID interface. It holds
// no device handle until ConnectDevice succeeds, matching the managed
// control's lifecycle. It provides no internal locking: the hardware
// protocol is serial and the binding that owns it is the sole caller.
type BoardControl struct {
	fs     afero.Fs
	opener func(index int16) (hid.Device, error)
	device hid.Device
}

var _ Control = (*BoardControl)(nil)

// ControlOption is a functional option for configuring a BoardControl.
type ControlOption func(*BoardControl)

// WithFs substitutes the filesystem used to read FPGA bitstreams.
func WithFs(fs afero.Fs) ControlOption {
	return func(c *BoardControl) {
		c.fs = fs
	}
}

// WithOpener sets a custom device opener for testing.
func WithOpener(fn func(index int16) (hid.Device, error)) ControlOption {
	return func(c *BoardControl) {
		c.opener = fn
	}
}

// NewBoardControl creates the HID-backed managed control surface.
func NewBoardControl(opts ...ControlOption) *BoardControl {
	c := &BoardControl{
		fs:     afero.NewOsFs(),
		opener: defaultOpener,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultOpener wraps OpenBoard to match the expected signature.
func defaultOpener(index int16) (hid.Device, error) {
	return hid.OpenBoard(index)
}

// GetNumDevices reports how many boards the host enumerates.
func (c *BoardControl) GetNumDevices() (int16, error) {
	boards, err := hid.EnumerateBoards()
	if err != nil {
		return statusTransport, err
	}
	return int16(len(boards)), nil
}

// ConnectDevice opens board id and streams the FPGA bitstream into it.
func (c *BoardControl) ConnectDevice(id int16, fpgaBinPath string) (int16, error) {
	bin, err := afero.ReadFile(c.fs, fpgaBinPath)
	if err != nil {
		return statusTransport, fmt.Errorf("failed to read FPGA bitstream: %w", err)
	}

	if c.device == nil {
		device, err := c.opener(id)
		if err != nil {
			return statusTransport, err
		}
		c.device = device
	}

	header := make([]byte, 10)
	header[0] = reportConnect
	binary.LittleEndian.PutUint16(header[2:4], uint16(id))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(bin)))
	if _, err := c.device.SendFeatureReport(header); err != nil {
		return statusTransport, err
	}

	if err := c.stream(bin); err != nil {
		return statusTransport, err
	}

	code := c.status(reportConnect)
	log.Debug().Int16("id", id).Str("fpga", fpgaBinPath).Int16("code", code).Msg("connect handshake finished")
	return code, nil
}

// IsDeviceAttached reports whether the session is established.
func (c *BoardControl) IsDeviceAttached() bool {
	if c.device == nil {
		return false
	}
	data := make([]byte, controlReportSize)
	data[0] = reportStatus
	if _, err := c.device.GetFeatureReport(data); err != nil {
		return false
	}
	return data[1]&statusAttached != 0
}

// GetSpeedMode reports the negotiated USB link class.
func (c *BoardControl) GetSpeedMode() (int16, error) {
	data, err := c.statusReport()
	if err != nil {
		return statusTransport, err
	}
	return int16(data[2]), nil
}

// GetDMDTYPE reports the mirror chip code.
func (c *BoardControl) GetDMDTYPE() (int16, error) {
	data, err := c.statusReport()
	if err != nil {
		return statusTransport, err
	}
	return int16(binary.LittleEndian.Uint16(data[3:5])), nil
}

// FloatMirrors parks every mirror flat.
func (c *BoardControl) FloatMirrors() (int16, error) {
	return c.command(reportMirrors, 0, 0)
}

// MemToFrameBuffer stages a packed frame in the on-board buffer.
func (c *BoardControl) MemToFrameBuffer(frame []byte) (int16, error) {
	if c.device == nil {
		return statusTransport, fmt.Errorf("no device session")
	}

	header := make([]byte, 8)
	header[0] = reportFrame
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(frame)))
	if _, err := c.device.SendFeatureReport(header); err != nil {
		return statusTransport, err
	}

	if err := c.stream(frame); err != nil {
		return statusTransport, err
	}
	return c.status(reportFrame), nil
}

// LoadToDMD transfers the staged frame to the given mirror block.
func (c *BoardControl) LoadToDMD(block int16, reset, load4 bool) (int16, error) {
	var flags byte
	if reset {
		flags |= 0x01
	}
	if load4 {
		flags |= 0x02
	}
	return c.command(reportLoad, block, flags)
}

// Reset issues a mirror-clocking pulse for the block.
func (c *BoardControl) Reset(block int16) (int16, error) {
	return c.command(reportReset, block, 0)
}

// Clear empties buffer and mirror content for the block.
func (c *BoardControl) Clear(block int16, reset bool) (int16, error) {
	var flags byte
	if reset {
		flags |= 0x01
	}
	return c.command(reportClear, block, flags)
}

// SetSWOverrideValue writes the update-mode register.
func (c *BoardControl) SetSWOverrideValue(value int16) (int16, error) {
	return c.command(reportValue, value, 0)
}

// SetSWOverrideEnable writes the override-enable register.
func (c *BoardControl) SetSWOverrideEnable(value int16) (int16, error) {
	return c.command(reportEnable, value, 0)
}

// GetSWOverrideValue reads back the update-mode register.
func (c *BoardControl) GetSWOverrideValue() (int16, error) {
	if c.device == nil {
		return statusTransport, fmt.Errorf("no device session")
	}
	data := make([]byte, controlReportSize)
	data[0] = reportValue
	if _, err := c.device.GetFeatureReport(data); err != nil {
		return statusTransport, err
	}
	return int16(binary.LittleEndian.Uint16(data[2:4])), nil
}

// Close releases the device handle.
func (c *BoardControl) Close() error {
	if c.device == nil {
		return nil
	}
	err := c.device.Close()
	c.device = nil
	return err
}

// command sends a short control report and reads back the latched result.
func (c *BoardControl) command(report byte, value int16, flags byte) (int16, error) {
	if c.device == nil {
		return statusTransport, fmt.Errorf("no device session")
	}
	data := make([]byte, controlReportSize)
	data[0] = report
	binary.LittleEndian.PutUint16(data[2:4], uint16(value))
	data[4] = flags
	if _, err := c.device.SendFeatureReport(data); err != nil {
		return statusTransport, err
	}
	return c.status(report), nil
}

// status reads the result code the board latched for the last operation on
// the given report.
func (c *BoardControl) status(report byte) int16 {
	data := make([]byte, controlReportSize)
	data[0] = report
	if _, err := c.device.GetFeatureReport(data); err != nil {
		log.Debug().Err(err).Uint8("report", report).Msg("status read failed")
		return statusTransport
	}
	return int16(int8(data[1]))
}

// statusReport fetches the session status report.
func (c *BoardControl) statusReport() ([]byte, error) {
	if c.device == nil {
		return nil, fmt.Errorf("no device session")
	}
	data := make([]byte, controlReportSize)
	data[0] = reportStatus
	if _, err := c.device.GetFeatureReport(data); err != nil {
		return nil, err
	}
	return data, nil
}

// stream writes payload as a sequence of interrupt OUT packets.
func (c *BoardControl) stream(payload []byte) error {
	for off := 0; off < len(payload); off += framePacketSize {
		end := off + framePacketSize
		if end > len(payload) {
			end = len(payload)
		}
		if _, err := c.device.Write(payload[off:end]); err != nil {
			return fmt.Errorf("frame packet write failed at offset %d: %w", off, err)
		}
	}
	return nil
}
