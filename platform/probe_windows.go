//go:build windows

package platform

import (
	"golang.org/x/sys/windows/registry"

	"github.com/stvnksslr/razer-ctl/razererr"
)

// readRawModel reads the BIOS SystemSKU string value from the local
// machine registry hive, per SPEC_FULL.md §4.3.
func readRawModel() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, registry.QUERY_VALUE)
	if err != nil {
		return "", razererr.ModelDetection(err.Error())
	}
	defer key.Close()

	sku, _, err := key.GetStringValue("SystemSKU")
	if err != nil {
		return "", razererr.ModelDetection(err.Error())
	}
	return sku, nil
}
