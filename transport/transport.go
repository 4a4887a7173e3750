// Package transport opens the HID feature-report interface for a supported
// Razer laptop descriptor and performs one request/response round trip per
// Send call, with the protocol-mandated inter-command pacing.
package transport

import (
	"log/slog"
	"sync"
	"time"

	hid "github.com/sstallion/go-hid"

	"github.com/stvnksslr/razer-ctl/catalog"
	"github.com/stvnksslr/razer-ctl/packet"
	"github.com/stvnksslr/razer-ctl/razererr"
)

// RazerVID is the sole USB vendor id this module matches during enumeration.
const RazerVID = 0x1532

const (
	preSendPacing  = 1000 * time.Microsecond
	postSendPacing = 2000 * time.Microsecond

	reportSize = 1 + packet.Size // leading HID report-id byte + the 90-byte packet
)

// Transport is the narrow send surface the command layer depends on. The
// real HID-backed implementation and a scripted fake both satisfy it, per
// SPEC_FULL.md §8.
type Transport interface {
	Send(p *packet.Packet) (*packet.Packet, error)
	Close() error
}

// hidDevice is the subset of *hid.Device this package depends on, narrowed
// so tests can substitute a fake without opening real hardware.
type hidDevice interface {
	SendFeatureReport(b []byte) (int, error)
	GetFeatureReport(b []byte) (int, error)
	Close() error
}

// hidTransport is the real HID feature-report transport.
type hidTransport struct {
	mu     sync.Mutex
	device hidDevice
}

// Open enumerates every HID interface advertising (RazerVID, descriptor.PID)
// and retains the first one that accepts a feature-report probe. The
// device exposes multiple HID interfaces per PID; only the one that accepts
// feature reports is usable, and the others are detected only by the probe
// (SPEC_FULL.md §4.2, §9).
func Open(descriptor catalog.Descriptor) (Transport, error) {
	var paths []string
	err := hid.Enumerate(RazerVID, descriptor.PID, func(info *hid.DeviceInfo) error {
		paths = append(paths, info.Path)
		return nil
	})
	if err != nil {
		return nil, razererr.OpenFailed(descriptor.Name, err.Error())
	}

	var lastErr error
	for _, path := range paths {
		dev, err := hid.OpenPath(path)
		if err != nil {
			lastErr = err
			continue
		}

		probe := make([]byte, reportSize)
		if _, err := dev.SendFeatureReport(probe); err != nil {
			lastErr = err
			dev.Close()
			continue
		}

		return &hidTransport{device: dev}, nil
	}

	reason := "no matching device found"
	if lastErr != nil {
		reason = lastErr.Error()
	}
	return nil, razererr.OpenFailed(descriptor.Name, reason)
}

// Send performs one feature-report round trip: pre-send pacing, send,
// post-send pacing, read, validate. Both sleeps are protocol-mandated
// (SPEC_FULL.md §4.2) and are not retried or shortened under any condition.
func (t *hidTransport) Send(request *packet.Packet) (*packet.Packet, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	time.Sleep(preSendPacing)

	wire := request.Serialize()
	outgoing := make([]byte, reportSize)
	copy(outgoing[1:], wire[:])

	slog.Debug("sending feature report", "class", request.CommandClass, "id", request.CommandID)
	if _, err := t.device.SendFeatureReport(outgoing); err != nil {
		return nil, razererr.WrapHid(err)
	}

	time.Sleep(postSendPacing)

	incoming := make([]byte, reportSize)
	n, err := t.device.GetFeatureReport(incoming)
	if err != nil {
		return nil, razererr.WrapHid(err)
	}
	if n != reportSize {
		return nil, razererr.BadSize(reportSize, n)
	}

	response, err := packet.Deserialize(incoming[1:])
	if err != nil {
		return nil, err
	}

	return response.EnsureMatches(request)
}

func (t *hidTransport) Close() error {
	return t.device.Close()
}

// Enumerate walks every HID device, collecting the deduplicated set of
// product ids advertising RazerVID, and reads the current platform model.
func Enumerate(readModel func() (string, error)) ([]uint16, string, error) {
	seen := make(map[uint16]bool)
	var pids []uint16

	err := hid.Enumerate(RazerVID, 0, func(info *hid.DeviceInfo) error {
		if !seen[info.ProductID] {
			seen[info.ProductID] = true
			pids = append(pids, info.ProductID)
		}
		return nil
	})
	if err != nil {
		return nil, "", razererr.WrapHid(err)
	}

	if len(pids) == 0 {
		return nil, "", razererr.NoDevices()
	}

	model, err := readModel()
	if err != nil {
		return nil, "", err
	}

	return pids, model, nil
}
