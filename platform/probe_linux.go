//go:build linux

package platform

import (
	"os"
	"strings"

	"github.com/stvnksslr/razer-ctl/razererr"
)

// productSKUPath is the DMI sysfs node carrying the laptop's product SKU.
// Declared as a var, not a const, so tests can redirect it to a fixture file.
var productSKUPath = "/sys/devices/virtual/dmi/id/product_sku"

// readRawModel reads the DMI product SKU and trims whitespace. A value that
// doesn't even look like a Razer SKU (doesn't start with "RZ") is rejected
// here as a detection failure, distinct from the RZ09- catalog-prefix
// post-condition ReadModel enforces afterward.
func readRawModel() (string, error) {
	data, err := os.ReadFile(productSKUPath)
	if err != nil {
		return "", razererr.ModelDetection(err.Error())
	}

	sku := strings.TrimSpace(string(data))
	if !strings.HasPrefix(sku, "RZ") {
		return "", razererr.ModelDetection("invalid Razer laptop SKU: " + sku)
	}
	return sku, nil
}
