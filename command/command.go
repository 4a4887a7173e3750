// Package command implements one function per device capability: each
// enforces its precondition, composes a packet, issues it through the
// transport, and decodes the response into a typed value. See
// SPEC_FULL.md §4.4.
package command

import (
	"bytes"
	"log/slog"

	"github.com/stvnksslr/razer-ctl/catalog"
	"github.com/stvnksslr/razer-ctl/packet"
	"github.com/stvnksslr/razer-ctl/razererr"
	"github.com/stvnksslr/razer-ctl/transport"
	"github.com/stvnksslr/razer-ctl/types"
)

// wire command codes, grouped by capability.
const (
	cmdSetPerfMode = 0x0d02
	cmdGetPerfMode = 0x0d82
	cmdSetBoost    = 0x0d07
	cmdGetBoost    = 0x0d87

	cmdSetFanRPM      = 0x0d01
	cmdGetFanRPM      = 0x0d81
	cmdSetMaxFanSpeed = 0x070f
	cmdGetMaxFanSpeed = 0x078f

	cmdSetLogoPower = 0x0300
	cmdGetLogoPower = 0x0380
	cmdSetLogoMode  = 0x0302
	cmdGetLogoMode  = 0x0382

	cmdSetKbdBrightness = 0x0303
	cmdGetKbdBrightness = 0x0383

	cmdSetLightsAlwaysOn = 0x0004
	cmdGetLightsAlwaysOn = 0x0084

	cmdSetBatteryCare = 0x0712
	cmdGetBatteryCare = 0x0792
)

// Device is the low-level bound device: an open transport paired with the
// descriptor that says which commands are legal on it. It is wrapped by the
// higher-level facade in package device, which adds caching and a typed
// setting dispatch; Device itself owns no state beyond the transport.
type Device struct {
	Transport  transport.Transport
	Descriptor catalog.Descriptor
}

// New binds a Device to an already-opened transport.
func New(t transport.Transport, descriptor catalog.Descriptor) *Device {
	return &Device{Transport: t, Descriptor: descriptor}
}

func (d *Device) requireFeature(f catalog.Feature) error {
	if !d.Descriptor.Supports(f) {
		return razererr.NotSupported(string(f))
	}
	return nil
}

// send builds a packet for command/args, issues it through the transport,
// and returns the validated response.
func (d *Device) send(command uint16, args []byte) (*packet.Packet, error) {
	request, err := packet.New(command, args)
	if err != nil {
		return nil, err
	}
	return d.Transport.Send(request)
}

// sendEcho sends command/args and requires the response's argument bytes to
// begin with exactly the request's argument bytes (the generic "echo
// validation" rule of SPEC_FULL.md §4.4).
func (d *Device) sendEcho(command uint16, args []byte) (*packet.Packet, error) {
	response, err := d.send(command, args)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(response.Args(), args) {
		return nil, razererr.New(razererr.ResponseMismatch)
	}
	return response, nil
}

func (d *Device) setPerfModeInternal(perfMode types.PerfMode, fanMode types.FanMode) error {
	if fanMode == types.FanManual && perfMode != types.PerfBalanced {
		return razererr.Precondition("%s allowed only in %s", fanMode, types.PerfBalanced)
	}

	for _, zone := range types.AllThermalZones {
		if _, err := d.sendEcho(cmdSetPerfMode, []byte{0x01, uint8(zone), uint8(perfMode), uint8(fanMode)}); err != nil {
			return err
		}
	}
	return nil
}

// SetPerfMode sets the performance mode, leaving fan mode at Auto. Use
// SetFanMode to switch to manual fan control.
func (d *Device) SetPerfMode(perfMode types.PerfMode) error {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return err
	}
	return d.setPerfModeInternal(perfMode, types.FanAuto)
}

// GetPerfMode reads both thermal zones and requires them to agree.
func (d *Device) GetPerfMode() (types.PerfMode, types.FanMode, error) {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return 0, 0, err
	}

	type zoneResult struct {
		perf types.PerfMode
		fan  types.FanMode
	}
	var results [2]zoneResult

	for i, zone := range types.AllThermalZones {
		response, err := d.send(cmdGetPerfMode, []byte{0, uint8(zone), 0, 0})
		if err != nil {
			return 0, 0, err
		}
		args := response.Args()
		perf, err := types.PerfModeFromByte(args[2])
		if err != nil {
			return 0, 0, err
		}
		fan, err := types.FanModeFromByte(args[3])
		if err != nil {
			return 0, 0, err
		}
		results[i] = zoneResult{perf: perf, fan: fan}
	}

	if results[0] != results[1] {
		return 0, 0, razererr.Precondition("modes do not match between zones: %s/%s vs %s/%s",
			results[0].perf, results[0].fan, results[1].perf, results[1].fan)
	}

	return results[0].perf, results[0].fan, nil
}

func (d *Device) setBoostInternal(cluster types.Cluster, boost uint8) error {
	perfMode, fanMode, err := d.GetPerfMode()
	if err != nil {
		return err
	}
	if perfMode != types.PerfCustom || fanMode != types.FanAuto {
		return razererr.Precondition("performance mode must be %s/%s", types.PerfCustom, types.FanAuto)
	}

	_, err = d.sendEcho(cmdSetBoost, []byte{0, uint8(cluster), boost})
	return err
}

func (d *Device) getBoostInternal(cluster types.Cluster) (uint8, error) {
	response, err := d.send(cmdGetBoost, []byte{0, uint8(cluster), 0})
	if err != nil {
		return 0, err
	}
	args := response.Args()
	if args[1] != uint8(cluster) {
		return 0, razererr.New(razererr.ResponseMismatch)
	}
	return args[2], nil
}

// SetCpuBoost sets the CPU boost level. Requires Custom performance mode.
func (d *Device) SetCpuBoost(boost types.CpuBoost) error {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return err
	}
	return d.setBoostInternal(types.ClusterCPU, uint8(boost))
}

// SetGpuBoost sets the GPU boost level. Requires Custom performance mode.
func (d *Device) SetGpuBoost(boost types.GpuBoost) error {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return err
	}
	return d.setBoostInternal(types.ClusterGPU, uint8(boost))
}

// GetCpuBoost reads the current CPU boost level.
func (d *Device) GetCpuBoost() (types.CpuBoost, error) {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return 0, err
	}
	raw, err := d.getBoostInternal(types.ClusterCPU)
	if err != nil {
		return 0, err
	}
	return types.CpuBoostFromByte(raw)
}

// GetGpuBoost reads the current GPU boost level.
func (d *Device) GetGpuBoost() (types.GpuBoost, error) {
	if err := d.requireFeature(catalog.FeaturePerf); err != nil {
		return 0, err
	}
	raw, err := d.getBoostInternal(types.ClusterGPU)
	if err != nil {
		return 0, err
	}
	return types.GpuBoostFromByte(raw)
}

// SetFanRPM sets the fan speed, in RPM, on both zones. rpm must be in
// [2000, 5000]; the current mode must be (Balanced, Manual).
func (d *Device) SetFanRPM(rpm uint16) error {
	if err := d.requireFeature(catalog.FeatureFan); err != nil {
		return err
	}
	if rpm < 2000 || rpm > 5000 {
		return razererr.Precondition("fan rpm must be in [2000, 5000], got %d", rpm)
	}

	perfMode, fanMode, err := d.GetPerfMode()
	if err != nil {
		return err
	}
	if perfMode != types.PerfBalanced || fanMode != types.FanManual {
		return razererr.Precondition("performance mode must be %s and fan mode must be %s", types.PerfBalanced, types.FanManual)
	}

	wireRPM := uint8(rpm / 100)
	for _, zone := range types.AllFanZones {
		if _, err := d.sendEcho(cmdSetFanRPM, []byte{0, uint8(zone), wireRPM}); err != nil {
			return err
		}
	}
	return nil
}

// GetFanRPM reads the current fan RPM for the given zone.
func (d *Device) GetFanRPM(zone types.FanZone) (uint16, error) {
	if err := d.requireFeature(catalog.FeatureFan); err != nil {
		return 0, err
	}
	response, err := d.send(cmdGetFanRPM, []byte{0, uint8(zone), 0})
	if err != nil {
		return 0, err
	}
	args := response.Args()
	if args[1] != uint8(zone) {
		return 0, razererr.New(razererr.ResponseMismatch)
	}
	return uint16(args[2]) * 100, nil
}

// SetMaxFanSpeedMode enables or disables the max-fan-speed override.
// Requires Custom performance mode.
func (d *Device) SetMaxFanSpeedMode(mode types.MaxFanSpeedMode) error {
	if err := d.requireFeature(catalog.FeatureFan); err != nil {
		return err
	}
	perfMode, _, err := d.GetPerfMode()
	if err != nil {
		return err
	}
	if perfMode != types.PerfCustom {
		return razererr.Precondition("performance mode must be %s", types.PerfCustom)
	}
	_, err = d.sendEcho(cmdSetMaxFanSpeed, []byte{uint8(mode)})
	return err
}

// GetMaxFanSpeedMode reads the current max-fan-speed override setting.
func (d *Device) GetMaxFanSpeedMode() (types.MaxFanSpeedMode, error) {
	if err := d.requireFeature(catalog.FeatureFan); err != nil {
		return 0, err
	}
	response, err := d.send(cmdGetMaxFanSpeed, []byte{0})
	if err != nil {
		return 0, err
	}
	return types.MaxFanSpeedModeFromByte(response.Args()[0])
}

// SetFanMode switches between automatic and manual fan control. Requires
// Balanced performance mode; internally re-issues the perf-mode setter with
// (Balanced, mode).
func (d *Device) SetFanMode(mode types.FanMode) error {
	if err := d.requireFeature(catalog.FeatureFan); err != nil {
		return err
	}
	perfMode, _, err := d.GetPerfMode()
	if err != nil {
		return err
	}
	if perfMode != types.PerfBalanced {
		return razererr.Precondition("performance mode must be %s", types.PerfBalanced)
	}
	return d.setPerfModeInternal(types.PerfBalanced, mode)
}

// GetKeyboardBrightness reads the keyboard backlight brightness (0-255).
func (d *Device) GetKeyboardBrightness() (uint8, error) {
	if err := d.requireFeature(catalog.FeatureKbdBacklight); err != nil {
		return 0, err
	}
	response, err := d.send(cmdGetKbdBrightness, []byte{1, 5, 0})
	if err != nil {
		return 0, err
	}
	args := response.Args()
	if args[1] != 5 {
		return 0, razererr.New(razererr.ResponseMismatch)
	}
	return args[2], nil
}

// SetKeyboardBrightness sets the keyboard backlight brightness (0-255).
func (d *Device) SetKeyboardBrightness(brightness uint8) error {
	if err := d.requireFeature(catalog.FeatureKbdBacklight); err != nil {
		return err
	}
	_, err := d.sendEcho(cmdSetKbdBrightness, []byte{1, 5, brightness})
	return err
}

func (d *Device) setLogoPower(on bool) (*packet.Packet, error) {
	v := uint8(0)
	if on {
		v = 1
	}
	return d.sendEcho(cmdSetLogoPower, []byte{1, 4, v})
}

func (d *Device) setLogoPattern(pattern uint8) (*packet.Packet, error) {
	return d.sendEcho(cmdSetLogoMode, []byte{1, 4, pattern})
}

// SetLogoMode sets the lid logo mode. Static and Breathing must program the
// pattern before powering the logo on; Off only powers it off. The two
// device commands (power switch, pattern selector) are not collapsible into
// one (SPEC_FULL.md §9).
func (d *Device) SetLogoMode(mode types.LogoMode) error {
	if err := d.requireFeature(catalog.FeatureLidLogo); err != nil {
		return err
	}

	switch mode {
	case types.LogoOff:
		_, err := d.setLogoPower(false)
		return err
	case types.LogoStatic:
		if _, err := d.setLogoPattern(0); err != nil {
			return err
		}
		_, err := d.setLogoPower(true)
		return err
	case types.LogoBreathing:
		if _, err := d.setLogoPattern(2); err != nil {
			return err
		}
		_, err := d.setLogoPower(true)
		return err
	default:
		return razererr.Precondition("invalid logo mode")
	}
}

// GetLogoMode reads the current lid logo mode.
func (d *Device) GetLogoMode() (types.LogoMode, error) {
	if err := d.requireFeature(catalog.FeatureLidLogo); err != nil {
		return 0, err
	}

	powerResponse, err := d.send(cmdGetLogoPower, []byte{1, 4, 0})
	if err != nil {
		return 0, err
	}
	switch powerResponse.Args()[2] {
	case 0:
		return types.LogoOff, nil
	case 1:
		// fall through to pattern read
	default:
		return 0, razererr.New(razererr.ResponseMismatch)
	}

	patternResponse, err := d.send(cmdGetLogoMode, []byte{1, 4, 0})
	if err != nil {
		return 0, err
	}
	switch patternResponse.Args()[2] {
	case 0:
		return types.LogoStatic, nil
	case 2:
		return types.LogoBreathing, nil
	default:
		return 0, razererr.New(razererr.ResponseMismatch)
	}
}

// SetLightsAlwaysOn sets whether lighting stays lit when the lid is closed
// or the laptop sleeps.
func (d *Device) SetLightsAlwaysOn(mode types.LightsAlwaysOn) error {
	if err := d.requireFeature(catalog.FeatureLightsAlwaysOn); err != nil {
		return err
	}
	_, err := d.sendEcho(cmdSetLightsAlwaysOn, []byte{uint8(mode), 0})
	return err
}

// GetLightsAlwaysOn reads the current lights-always-on setting.
func (d *Device) GetLightsAlwaysOn() (types.LightsAlwaysOn, error) {
	if err := d.requireFeature(catalog.FeatureLightsAlwaysOn); err != nil {
		return 0, err
	}
	response, err := d.send(cmdGetLightsAlwaysOn, []byte{0, 0})
	if err != nil {
		return 0, err
	}
	return types.LightsAlwaysOnFromByte(response.Args()[0])
}

// SetBatteryCare enables or disables battery-care (charge limiting).
func (d *Device) SetBatteryCare(mode types.BatteryCare) error {
	if err := d.requireFeature(catalog.FeatureBatteryCare); err != nil {
		return err
	}
	_, err := d.sendEcho(cmdSetBatteryCare, []byte{uint8(mode)})
	return err
}

// GetBatteryCare reads the current battery-care setting.
func (d *Device) GetBatteryCare() (types.BatteryCare, error) {
	if err := d.requireFeature(catalog.FeatureBatteryCare); err != nil {
		return 0, err
	}
	response, err := d.send(cmdGetBatteryCare, []byte{0})
	if err != nil {
		return 0, err
	}
	return types.BatteryCareFromByte(response.Args()[0])
}

// CustomCommand sends a raw command/args pair verbatim: no decode, only
// status validation. Escape hatch for unmapped or experimental commands.
func (d *Device) CustomCommand(cmd uint16, args []byte) error {
	request, err := packet.New(cmd, args)
	if err != nil {
		return err
	}
	slog.Debug("custom command request", "command", cmd, "args", args)
	response, err := d.Transport.Send(request)
	if err != nil {
		return err
	}
	slog.Debug("custom command response", "args", response.Args())
	return nil
}
