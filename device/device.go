// Package device is the facade over the command layer: device discovery
// (with optional PID caching), opportunistic full-state reads, and a typed
// setting dispatch, per SPEC_FULL.md §4.5.
package device

import (
	"log/slog"
	"strings"

	"github.com/stvnksslr/razer-ctl/catalog"
	"github.com/stvnksslr/razer-ctl/command"
	"github.com/stvnksslr/razer-ctl/platform"
	"github.com/stvnksslr/razer-ctl/razererr"
	"github.com/stvnksslr/razer-ctl/transport"
)

// Cache lets a caller persist which PID was last detected, so a later
// Detect can skip the full USB enumeration/model-probe round trip.
type Cache interface {
	CachedPID() (uint16, bool)
	SetCachedDevice(pid uint16, name, model string) error
	ClearCachedDevice() error
}

// Device is a bound, opened connection to one supported laptop.
type Device struct {
	cmd        *command.Device
	descriptor catalog.Descriptor
}

// Name returns the marketing name of the detected model.
func (d *Device) Name() string { return d.descriptor.Name }

// Model returns the model-number prefix the device was matched on.
func (d *Device) Model() string { return d.descriptor.ModelNumberPrefix }

// PID returns the USB product id of the detected model.
func (d *Device) PID() uint16 { return d.descriptor.PID }

// Features lists every capability this model declares support for.
func (d *Device) Features() []catalog.Feature { return d.descriptor.Features }

// Supports reports whether this model declares support for f.
func (d *Device) Supports(f catalog.Feature) bool { return d.descriptor.Supports(f) }

// Close releases the underlying transport.
func (d *Device) Close() error { return d.cmd.Transport.Close() }

// openTransport is transport.Open behind a variable so tests can substitute
// a scripted opener instead of touching real HID hardware.
var openTransport = transport.Open

// open binds a Device to descriptor, reclassifying any DeviceOpenFailed from
// the transport layer. Opening a HID path fails with the same opaque OS
// error whether the device genuinely isn't there or udev/permission rules
// are blocking it; razerDeviceExists breaks the tie by reading /sys
// directly, which bypasses hidapi's view entirely (SPEC_FULL.md §4.5, §9).
func open(descriptor catalog.Descriptor) (*Device, error) {
	t, err := openTransport(descriptor)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	return &Device{cmd: command.New(t, descriptor), descriptor: descriptor}, nil
}

func classifyOpenError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "einval"), strings.Contains(msg, "invalid argument"):
		return razererr.New(razererr.DeviceNotFound)
	case strings.Contains(msg, "permission"), strings.Contains(msg, "access denied"), strings.Contains(msg, "operation not permitted"):
		return razererr.New(razererr.PermissionDenied)
	case razerDeviceExists():
		return razererr.New(razererr.PermissionDenied)
	default:
		return razererr.New(razererr.DeviceNotFound)
	}
}

// Detect probes the platform for the laptop model, enumerates attached
// Razer USB devices, matches the model against the catalog, and opens the
// first HID interface that accepts feature reports.
func Detect() (*Device, error) {
	pids, model, err := transport.Enumerate(platform.ReadModel)
	if err != nil {
		return nil, err
	}

	descriptor, ok := catalog.ByModelPrefix(model)
	if !ok {
		return nil, razererr.Unsupported(model, pids)
	}

	return open(descriptor)
}

// DetectWithCache tries the cached PID first, opening directly against its
// catalog descriptor and skipping model detection entirely; it falls back
// to Detect on any failure and refreshes the cache on success.
func DetectWithCache(cache Cache) (*Device, error) {
	if pid, ok := cache.CachedPID(); ok {
		if descriptor, ok := catalog.ByPID(pid); ok {
			if dev, err := open(descriptor); err == nil {
				slog.Debug("connected using cached pid", "pid", pid)
				return dev, nil
			}
		}
		slog.Debug("cached pid failed, falling back to full detection")
	}

	dev, err := Detect()
	if err != nil {
		return nil, err
	}

	if err := cache.SetCachedDevice(dev.PID(), dev.Name(), dev.Model()); err != nil {
		slog.Warn("failed to cache detected device", "error", err)
	}
	return dev, nil
}
