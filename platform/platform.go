// Package platform reads a platform-specific model identifier (DMI product
// SKU on Linux, a BIOS registry value on Windows) and normalizes it to the
// nine-character model prefix used by the catalog.
package platform

import "github.com/stvnksslr/razer-ctl/razererr"

// modelPrefixLen is the number of leading characters of the raw platform
// identifier retained as the model prefix.
const modelPrefixLen = 9

// razerModelPrefix is the ASCII prefix every genuine Razer laptop SKU begins with.
const razerModelPrefix = "RZ09-"

// ReadModel reads and normalizes the platform model identifier. The result
// is guaranteed to begin with "RZ09-"; a raw value that fails that
// post-condition is reported as InvalidModel, distinct from the
// platform-specific read failures readRawModel itself may report as
// ModelDetectionFailed.
func ReadModel() (string, error) {
	raw, err := readRawModel()
	if err != nil {
		return "", err
	}

	trimmed := trimToPrefixLen(raw)
	if !hasRazerPrefix(trimmed) {
		return "", razererr.InvalidModelRaw(trimmed)
	}
	return trimmed, nil
}

func hasRazerPrefix(model string) bool {
	if len(model) < len(razerModelPrefix) {
		return false
	}
	return model[:len(razerModelPrefix)] == razerModelPrefix
}

func trimToPrefixLen(s string) string {
	if len(s) <= modelPrefixLen {
		return s
	}
	return s[:modelPrefixLen]
}
