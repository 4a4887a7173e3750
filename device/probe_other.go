//go:build !linux

package device

// razerDeviceExists has no sysfs-equivalent check outside Linux; on these
// platforms an open error whose message does not itself indicate a
// permission failure is classified as DeviceNotFound.
func razerDeviceExists() bool { return false }
