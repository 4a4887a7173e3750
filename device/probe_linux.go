//go:build linux

package device

import (
	"os"
	"path/filepath"
	"strings"
)

var usbDevicesPath = "/sys/bus/usb/devices"

// razerDeviceExists checks /sys directly for a USB device carrying Razer's
// vendor id, bypassing whatever permissions are blocking hidapi from seeing
// it.
func razerDeviceExists() bool {
	entries, err := os.ReadDir(usbDevicesPath)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		vendor, err := os.ReadFile(filepath.Join(usbDevicesPath, entry.Name(), "idVendor"))
		if err != nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(string(vendor)), "1532") {
			return true
		}
	}
	return false
}
