//go:build !linux && !windows

package platform

import "github.com/stvnksslr/razer-ctl/razererr"

// readRawModel fails on every platform but Linux and Windows.
func readRawModel() (string, error) {
	return "", razererr.New(razererr.UnsupportedPlatform)
}
