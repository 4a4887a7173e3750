package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stvnksslr/razer-ctl/catalog"
	"github.com/stvnksslr/razer-ctl/command"
	"github.com/stvnksslr/razer-ctl/packet"
	"github.com/stvnksslr/razer-ctl/razererr"
	"github.com/stvnksslr/razer-ctl/transport"
	"github.com/stvnksslr/razer-ctl/types"
)

// scriptedTransport is a minimal scripted fake transport.Transport, local to
// this package's tests so they don't depend on command's unexported test
// helpers.
type scriptedTransport struct {
	handler func(*packet.Packet) (*packet.Packet, error)
}

func (s *scriptedTransport) Send(request *packet.Packet) (*packet.Packet, error) {
	return s.handler(request)
}

func (s *scriptedTransport) Close() error { return nil }

func echo(args []byte) func(*packet.Packet) (*packet.Packet, error) {
	return func(request *packet.Packet) (*packet.Packet, error) {
		response, err := packet.New(uint16(request.CommandClass)<<8|uint16(request.CommandID), args)
		if err != nil {
			return nil, err
		}
		response.ID = request.ID
		response.RemainingPackets = request.RemainingPackets
		response.Status = 0x02
		return response, nil
	}
}

func fullDescriptor() catalog.Descriptor {
	return catalog.Descriptor{
		PID:               0x0253,
		Name:              "Razer Blade 14 (2023)",
		ModelNumberPrefix: "RZ09-0483",
		Features: []catalog.Feature{
			catalog.FeaturePerf, catalog.FeatureFan, catalog.FeatureKbdBacklight,
			catalog.FeatureLidLogo, catalog.FeatureLightsAlwaysOn, catalog.FeatureBatteryCare,
		},
	}
}

func newTestDevice(handler func(*packet.Packet) (*packet.Packet, error), descriptor catalog.Descriptor) *Device {
	return &Device{cmd: command.New(&scriptedTransport{handler: handler}, descriptor), descriptor: descriptor}
}

func TestReadStateSkipsBoostAndRPMOutsideCustomManual(t *testing.T) {
	d := newTestDevice(echo([]byte{0x01, 0x01, 0x00, 0x00}), fullDescriptor()) // Balanced/Auto

	state := d.ReadState()
	require.NotNil(t, state.PerfMode)
	assert.Equal(t, types.PerfBalanced, *state.PerfMode)
	assert.Nil(t, state.CpuBoost)
	assert.Nil(t, state.GpuBoost)
	assert.Nil(t, state.FanRPM)
}

func TestReadStateLeavesUnsupportedFeaturesNil(t *testing.T) {
	base := catalog.Descriptor{
		PID:  0x0277,
		Name: "Razer Blade 15 (2022) Base",
		Features: []catalog.Feature{
			catalog.FeaturePerf, catalog.FeatureFan, catalog.FeatureKbdBacklight, catalog.FeatureBatteryCare,
		},
	}
	d := newTestDevice(echo([]byte{0x01, 0x01, 0x00, 0x00}), base)

	state := d.ReadState()
	assert.Nil(t, state.LogoMode)
	assert.Nil(t, state.LightsAlwaysOn)
}

func TestGetSettingFanModeIncludesRPMOnlyWhenManual(t *testing.T) {
	d := newTestDevice(func(request *packet.Packet) (*packet.Packet, error) {
		command := uint16(request.CommandClass)<<8 | uint16(request.CommandID)
		var args []byte
		switch command {
		case 0x0d82: // GetPerfMode, one call per thermal zone
			args = []byte{0x00, request.Args()[1], 0x00, 0x01} // Balanced/Manual
		case 0x0d81: // GetFanRPM
			args = []byte{0x00, request.Args()[1], 25} // 2500rpm
		default:
			t.Fatalf("unexpected command 0x%04x", command)
		}
		response, err := packet.New(command, args)
		require.NoError(t, err)
		response.ID = request.ID
		response.RemainingPackets = request.RemainingPackets
		response.Status = 0x02
		return response, nil
	}, fullDescriptor())

	value, err := d.GetSetting(SettingFanMode)
	require.NoError(t, err)
	assert.Equal(t, types.FanManual, value.FanMode)
	require.NotNil(t, value.FanRPM)
	assert.Equal(t, uint16(2500), *value.FanRPM)
}

func TestApplySettingFanAppliesModeThenRPM(t *testing.T) {
	// Stateful fake: GetPerfMode reports whatever SetPerfMode last wrote, so
	// the fan-rpm precondition check observes the mode switch that just
	// happened rather than a fixed canned value.
	var sentCommands []uint16
	perfMode, fanMode := uint8(types.PerfBalanced), uint8(types.FanAuto)

	d := newTestDevice(func(request *packet.Packet) (*packet.Packet, error) {
		command := uint16(request.CommandClass)<<8 | uint16(request.CommandID)
		sentCommands = append(sentCommands, command)

		var args []byte
		switch command {
		case 0x0d02: // SetPerfMode
			perfMode, fanMode = request.Args()[2], request.Args()[3]
			args = request.Args()
		case 0x0d82: // GetPerfMode
			args = []byte{0x00, request.Args()[1], perfMode, fanMode}
		case 0x0d01: // SetFanRPM
			args = request.Args()
		default:
			t.Fatalf("unexpected command 0x%04x", command)
		}

		response, err := packet.New(command, args)
		require.NoError(t, err)
		response.ID = request.ID
		response.RemainingPackets = request.RemainingPackets
		response.Status = 0x02
		return response, nil
	}, fullDescriptor())

	rpm := uint16(2500)
	err := d.ApplySetting(FanValue(types.FanManual, &rpm))
	require.NoError(t, err)

	require.Contains(t, sentCommands, uint16(0x0d02)) // SetPerfMode -> Balanced/Manual
	require.Contains(t, sentCommands, uint16(0x0d01)) // SetFanRPM
}

func TestSettingValueStringFormatsFanMode(t *testing.T) {
	assert.Equal(t, "Auto", FanValue(types.FanAuto, nil).String())

	rpm := uint16(3000)
	assert.Equal(t, "Manual @ 3000 RPM", FanValue(types.FanManual, &rpm).String())
	assert.Equal(t, "Manual", FanValue(types.FanManual, nil).String())
}

func TestClassifyOpenErrorPrefersExplicitPermissionMessage(t *testing.T) {
	err := classifyOpenError(razererr.OpenFailed("x", "permission denied (os error 13)"))
	assert.True(t, razererr.Is(err, razererr.PermissionDenied))
}

func TestClassifyOpenErrorTreatsInvalidArgumentAsNotFound(t *testing.T) {
	err := classifyOpenError(razererr.OpenFailed("x", "invalid argument"))
	assert.True(t, razererr.Is(err, razererr.DeviceNotFound))
}

// fakeCache is an in-memory Cache for exercising DetectWithCache without a
// filesystem-backed implementation.
type fakeCache struct {
	pid    uint16
	hasPID bool
	setErr error
}

func (c *fakeCache) CachedPID() (uint16, bool) { return c.pid, c.hasPID }
func (c *fakeCache) SetCachedDevice(pid uint16, name, model string) error {
	return c.setErr
}
func (c *fakeCache) ClearCachedDevice() error { return nil }

func TestDeviceExposesDescriptorMetadata(t *testing.T) {
	d := newTestDevice(echo(nil), fullDescriptor())
	assert.Equal(t, "Razer Blade 14 (2023)", d.Name())
	assert.Equal(t, "RZ09-0483", d.Model())
	assert.Equal(t, uint16(0x0253), d.PID())
	assert.True(t, d.Supports(catalog.FeaturePerf))
	assert.True(t, d.Supports(catalog.FeatureLidLogo))
}

func TestDetectWithCacheUsesCachedPIDWithoutFullDetection(t *testing.T) {
	original := openTransport
	defer func() { openTransport = original }()
	openTransport = func(descriptor catalog.Descriptor) (transport.Transport, error) {
		return &scriptedTransport{handler: echo(nil)}, nil
	}

	cache := &fakeCache{pid: 0x0253, hasPID: true}
	d, err := DetectWithCache(cache)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0253), d.PID())
}

func TestDetectWithCacheIgnoresUncachedPID(t *testing.T) {
	calls := 0
	original := openTransport
	defer func() { openTransport = original }()
	openTransport = func(descriptor catalog.Descriptor) (transport.Transport, error) {
		calls++
		return &scriptedTransport{handler: echo(nil)}, nil
	}

	cache := &fakeCache{hasPID: false}
	_, err := DetectWithCache(cache)
	// with no cached PID, DetectWithCache falls straight to the full Detect
	// path (platform probe + USB enumeration), which this unit test does not
	// stub; it is expected to fail here without touching openTransport.
	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}
