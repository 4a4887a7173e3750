package device

import (
	"fmt"

	"github.com/stvnksslr/razer-ctl/catalog"
	"github.com/stvnksslr/razer-ctl/types"
)

// State is an opportunistic snapshot of every readable setting: each field
// is nil if the corresponding read failed or the model doesn't support it.
type State struct {
	PerfMode *types.PerfMode
	FanMode  *types.FanMode

	CpuBoost *types.CpuBoost
	GpuBoost *types.GpuBoost

	FanRPM      *uint16
	MaxFanSpeed *types.MaxFanSpeedMode

	KeyboardBrightness *uint8
	LogoMode           *types.LogoMode
	BatteryCare        *types.BatteryCare
	LightsAlwaysOn     *types.LightsAlwaysOn
}

// ReadState reads every setting this model exposes. Reads are best-effort:
// a failing or unsupported read just leaves its field nil, rather than
// aborting the whole snapshot (SPEC_FULL.md §4.5).
func (d *Device) ReadState() *State {
	var state State

	if perfMode, fanMode, err := d.cmd.GetPerfMode(); err == nil {
		state.PerfMode = &perfMode
		state.FanMode = &fanMode

		if perfMode == types.PerfCustom {
			if boost, err := d.cmd.GetCpuBoost(); err == nil {
				state.CpuBoost = &boost
			}
			if boost, err := d.cmd.GetGpuBoost(); err == nil {
				state.GpuBoost = &boost
			}
		}
		if fanMode == types.FanManual {
			if rpm, err := d.cmd.GetFanRPM(types.FanZone1); err == nil {
				state.FanRPM = &rpm
			}
		}
	}

	if mode, err := d.cmd.GetMaxFanSpeedMode(); err == nil {
		state.MaxFanSpeed = &mode
	}

	if d.Supports(catalog.FeatureKbdBacklight) {
		if brightness, err := d.cmd.GetKeyboardBrightness(); err == nil {
			state.KeyboardBrightness = &brightness
		}
	}
	if d.Supports(catalog.FeatureBatteryCare) {
		if care, err := d.cmd.GetBatteryCare(); err == nil {
			state.BatteryCare = &care
		}
	}
	if d.Supports(catalog.FeatureLidLogo) {
		if mode, err := d.cmd.GetLogoMode(); err == nil {
			state.LogoMode = &mode
		}
	}
	if d.Supports(catalog.FeatureLightsAlwaysOn) {
		if lights, err := d.cmd.GetLightsAlwaysOn(); err == nil {
			state.LightsAlwaysOn = &lights
		}
	}

	return &state
}

// Setting names one user-facing configurable value.
type Setting int

const (
	SettingPerfMode Setting = iota
	SettingCpuBoost
	SettingGpuBoost
	SettingFanMode
	SettingMaxFanSpeed
	SettingKeyboardBrightness
	SettingLogoMode
	SettingBatteryCare
	SettingLightsAlwaysOn
)

func (s Setting) String() string {
	switch s {
	case SettingPerfMode:
		return "PerfMode"
	case SettingCpuBoost:
		return "CpuBoost"
	case SettingGpuBoost:
		return "GpuBoost"
	case SettingFanMode:
		return "FanMode"
	case SettingMaxFanSpeed:
		return "MaxFanSpeed"
	case SettingKeyboardBrightness:
		return "KeyboardBrightness"
	case SettingLogoMode:
		return "LogoMode"
	case SettingBatteryCare:
		return "BatteryCare"
	case SettingLightsAlwaysOn:
		return "LightsAlwaysOn"
	default:
		return "Unknown"
	}
}

// SettingValue is a tagged union over every setting's value type: Setting
// selects which other field(s) are meaningful. This is the idiomatic Go
// rendering of a closed sum type, in place of one variant struct per case.
type SettingValue struct {
	Setting Setting

	PerfMode types.PerfMode
	FanMode  types.FanMode

	CpuBoost types.CpuBoost
	GpuBoost types.GpuBoost

	FanRPM      *uint16
	MaxFanSpeed types.MaxFanSpeedMode

	KeyboardBrightness uint8
	LogoMode           types.LogoMode
	BatteryCare        types.BatteryCare
	LightsAlwaysOn     types.LightsAlwaysOn
}

func PerfModeValue(mode types.PerfMode, fanMode types.FanMode) SettingValue {
	return SettingValue{Setting: SettingPerfMode, PerfMode: mode, FanMode: fanMode}
}

func CpuBoostValue(boost types.CpuBoost) SettingValue {
	return SettingValue{Setting: SettingCpuBoost, CpuBoost: boost}
}

func GpuBoostValue(boost types.GpuBoost) SettingValue {
	return SettingValue{Setting: SettingGpuBoost, GpuBoost: boost}
}

func FanValue(mode types.FanMode, rpm *uint16) SettingValue {
	return SettingValue{Setting: SettingFanMode, FanMode: mode, FanRPM: rpm}
}

func MaxFanSpeedValue(mode types.MaxFanSpeedMode) SettingValue {
	return SettingValue{Setting: SettingMaxFanSpeed, MaxFanSpeed: mode}
}

func KeyboardBrightnessValue(brightness uint8) SettingValue {
	return SettingValue{Setting: SettingKeyboardBrightness, KeyboardBrightness: brightness}
}

func LogoModeValue(mode types.LogoMode) SettingValue {
	return SettingValue{Setting: SettingLogoMode, LogoMode: mode}
}

func BatteryCareValue(care types.BatteryCare) SettingValue {
	return SettingValue{Setting: SettingBatteryCare, BatteryCare: care}
}

func LightsAlwaysOnValue(lights types.LightsAlwaysOn) SettingValue {
	return SettingValue{Setting: SettingLightsAlwaysOn, LightsAlwaysOn: lights}
}

func (v SettingValue) String() string {
	switch v.Setting {
	case SettingPerfMode:
		return fmt.Sprintf("%s (Fan: %s)", v.PerfMode, v.FanMode)
	case SettingCpuBoost:
		return v.CpuBoost.String()
	case SettingGpuBoost:
		return v.GpuBoost.String()
	case SettingFanMode:
		if v.FanMode == types.FanAuto {
			return "Auto"
		}
		if v.FanRPM != nil {
			return fmt.Sprintf("Manual @ %d RPM", *v.FanRPM)
		}
		return "Manual"
	case SettingMaxFanSpeed:
		return v.MaxFanSpeed.String()
	case SettingKeyboardBrightness:
		return fmt.Sprintf("%d", v.KeyboardBrightness)
	case SettingLogoMode:
		return v.LogoMode.String()
	case SettingBatteryCare:
		return v.BatteryCare.String()
	case SettingLightsAlwaysOn:
		return v.LightsAlwaysOn.String()
	default:
		return "Unknown"
	}
}

// GetSetting reads the current value of one setting.
func (d *Device) GetSetting(setting Setting) (SettingValue, error) {
	switch setting {
	case SettingPerfMode:
		mode, fanMode, err := d.cmd.GetPerfMode()
		if err != nil {
			return SettingValue{}, err
		}
		return PerfModeValue(mode, fanMode), nil

	case SettingCpuBoost:
		boost, err := d.cmd.GetCpuBoost()
		if err != nil {
			return SettingValue{}, err
		}
		return CpuBoostValue(boost), nil

	case SettingGpuBoost:
		boost, err := d.cmd.GetGpuBoost()
		if err != nil {
			return SettingValue{}, err
		}
		return GpuBoostValue(boost), nil

	case SettingFanMode:
		_, fanMode, err := d.cmd.GetPerfMode()
		if err != nil {
			return SettingValue{}, err
		}
		var rpm *uint16
		if fanMode == types.FanManual {
			v, err := d.cmd.GetFanRPM(types.FanZone1)
			if err != nil {
				return SettingValue{}, err
			}
			rpm = &v
		}
		return FanValue(fanMode, rpm), nil

	case SettingMaxFanSpeed:
		mode, err := d.cmd.GetMaxFanSpeedMode()
		if err != nil {
			return SettingValue{}, err
		}
		return MaxFanSpeedValue(mode), nil

	case SettingKeyboardBrightness:
		brightness, err := d.cmd.GetKeyboardBrightness()
		if err != nil {
			return SettingValue{}, err
		}
		return KeyboardBrightnessValue(brightness), nil

	case SettingLogoMode:
		mode, err := d.cmd.GetLogoMode()
		if err != nil {
			return SettingValue{}, err
		}
		return LogoModeValue(mode), nil

	case SettingBatteryCare:
		care, err := d.cmd.GetBatteryCare()
		if err != nil {
			return SettingValue{}, err
		}
		return BatteryCareValue(care), nil

	case SettingLightsAlwaysOn:
		lights, err := d.cmd.GetLightsAlwaysOn()
		if err != nil {
			return SettingValue{}, err
		}
		return LightsAlwaysOnValue(lights), nil

	default:
		return SettingValue{}, fmt.Errorf("unknown setting: %d", setting)
	}
}

// ApplySetting writes value, dispatching on its Setting tag.
func (d *Device) ApplySetting(value SettingValue) error {
	switch value.Setting {
	case SettingPerfMode:
		return d.cmd.SetPerfMode(value.PerfMode)
	case SettingCpuBoost:
		return d.cmd.SetCpuBoost(value.CpuBoost)
	case SettingGpuBoost:
		return d.cmd.SetGpuBoost(value.GpuBoost)
	case SettingFanMode:
		if err := d.cmd.SetFanMode(value.FanMode); err != nil {
			return err
		}
		if value.FanRPM != nil {
			return d.cmd.SetFanRPM(*value.FanRPM)
		}
		return nil
	case SettingMaxFanSpeed:
		return d.cmd.SetMaxFanSpeedMode(value.MaxFanSpeed)
	case SettingKeyboardBrightness:
		return d.cmd.SetKeyboardBrightness(value.KeyboardBrightness)
	case SettingLogoMode:
		return d.cmd.SetLogoMode(value.LogoMode)
	case SettingBatteryCare:
		return d.cmd.SetBatteryCare(value.BatteryCare)
	case SettingLightsAlwaysOn:
		return d.cmd.SetLightsAlwaysOn(value.LightsAlwaysOn)
	default:
		return fmt.Errorf("unknown setting: %d", value.Setting)
	}
}
