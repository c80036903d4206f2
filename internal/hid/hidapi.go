package hid

import (
	"fmt"

	karalabehid "github.com/karalabe/hid"
)

const (
	// CypressVendorID is the USB vendor ID of the Cypress FX2 controller on
	// the D4100 board.
	CypressVendorID uint16 = 0x04b4

	// D4100ProductID is the USB product ID of the Discovery 4100 board.
	D4100ProductID uint16 = 0x4100

	// ControlInterface is the USB interface number carrying the register and
	// frame-buffer reports.
	ControlInterface = 0x00
)

// HIDAPIDevice wraps a karalabe/hid device to implement the Device interface.
type HIDAPIDevice struct {
	device karalabehid.Device // karalabe/hid.Device is an interface
	info   DeviceInfo
}

// Verify HIDAPIDevice implements Device interface.
var _ Device = (*HIDAPIDevice)(nil)

// NewHIDAPIDevice creates a new HIDAPIDevice from an open hid.Device.
func NewHIDAPIDevice(device karalabehid.Device, info DeviceInfo) *HIDAPIDevice {
	return &HIDAPIDevice{
		device: device,
		info:   info,
	}
}

// GetFeatureReport reads a feature report from the device.
func (d *HIDAPIDevice) GetFeatureReport(data []byte) (int, error) {
	return d.device.GetFeatureReport(data)
}

// SendFeatureReport writes a feature report to the device.
func (d *HIDAPIDevice) SendFeatureReport(data []byte) (int, error) {
	return d.device.SendFeatureReport(data)
}

// Write sends an interrupt OUT transfer to the device.
func (d *HIDAPIDevice) Write(data []byte) (int, error) {
	return d.device.Write(data)
}

// Close closes the device handle.
func (d *HIDAPIDevice) Close() error {
	return d.device.Close()
}

// Info returns information about the device.
func (d *HIDAPIDevice) Info() DeviceInfo {
	return d.info
}

// EnumerateBoards returns a list of all connected D4100 controller boards in
// enumeration order. The device index used by the bindings is an index into
// this list.
func EnumerateBoards() ([]DeviceInfo, error) {
	var boards []DeviceInfo

	devices, err := karalabehid.Enumerate(CypressVendorID, D4100ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate HID devices: %w", err)
	}

	for _, device := range devices {
		if device.Interface == ControlInterface {
			boards = append(boards, DeviceInfo{
				Path:         device.Path,
				VendorID:     device.VendorID,
				ProductID:    device.ProductID,
				Serial:       device.Serial,
				Manufacturer: device.Manufacturer,
				Product:      device.Product,
				Interface:    device.Interface,
			})
		}
	}

	return boards, nil
}

// OpenBoard opens a connection to a D4100 board by enumeration index.
func OpenBoard(index int16) (*HIDAPIDevice, error) {
	devices, err := karalabehid.Enumerate(CypressVendorID, D4100ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	var seen int16
	for _, deviceInfo := range devices {
		if deviceInfo.Interface != ControlInterface {
			continue
		}

		if seen != index {
			seen++
			continue
		}

		device, err := deviceInfo.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open board %d: %w", index, err)
		}

		info := DeviceInfo{
			Path:         deviceInfo.Path,
			VendorID:     deviceInfo.VendorID,
			ProductID:    deviceInfo.ProductID,
			Serial:       deviceInfo.Serial,
			Manufacturer: deviceInfo.Manufacturer,
			Product:      deviceInfo.Product,
			Interface:    deviceInfo.Interface,
		}

		return NewHIDAPIDevice(device, info), nil
	}

	return nil, fmt.Errorf("no D4100 board at index %d", index)
}
