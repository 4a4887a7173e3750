// Package types holds the enumerations for the Razer laptop control
// protocol and their bidirectional mapping to single-byte wire values.
package types

import "github.com/stvnksslr/razer-ctl/razererr"

// Cluster selects which compute cluster a boost command targets.
type Cluster uint8

const (
	ClusterCPU Cluster = 0x01
	ClusterGPU Cluster = 0x02
)

// FanZone addresses one of the two independently-controlled fans.
type FanZone uint8

const (
	FanZone1 FanZone = 0x01
	FanZone2 FanZone = 0x02
)

// AllFanZones enumerates both fan zones, in wire order.
var AllFanZones = [2]FanZone{FanZone1, FanZone2}

// ThermalZone addresses one of the two thermal zones read/written by
// performance-mode commands.
type ThermalZone uint8

const (
	ThermalZone1 ThermalZone = 0x01
	ThermalZone2 ThermalZone = 0x02
)

// AllThermalZones enumerates both thermal zones, in wire order.
var AllThermalZones = [2]ThermalZone{ThermalZone1, ThermalZone2}

// PerfMode is the laptop's thermal performance mode. The wire values are
// gapped (0, 4, 5), not sequential, and must be preserved exactly.
type PerfMode uint8

const (
	PerfBalanced PerfMode = 0
	PerfCustom   PerfMode = 4
	PerfSilent   PerfMode = 5
)

func (m PerfMode) String() string {
	switch m {
	case PerfBalanced:
		return "Balanced"
	case PerfCustom:
		return "Custom"
	case PerfSilent:
		return "Silent"
	default:
		return "Unknown"
	}
}

func PerfModeFromByte(b uint8) (PerfMode, error) {
	switch PerfMode(b) {
	case PerfBalanced, PerfCustom, PerfSilent:
		return PerfMode(b), nil
	default:
		return 0, razererr.BadValue(b, "PerfMode")
	}
}

// FanMode selects automatic vs. manual fan control.
type FanMode uint8

const (
	FanAuto   FanMode = 0
	FanManual FanMode = 1
)

func (m FanMode) String() string {
	switch m {
	case FanAuto:
		return "Auto"
	case FanManual:
		return "Manual"
	default:
		return "Unknown"
	}
}

func FanModeFromByte(b uint8) (FanMode, error) {
	switch FanMode(b) {
	case FanAuto, FanManual:
		return FanMode(b), nil
	default:
		return 0, razererr.BadValue(b, "FanMode")
	}
}

// MaxFanSpeedMode enables or disables the max-fan-speed override.
type MaxFanSpeedMode uint8

const (
	MaxFanSpeedDisable MaxFanSpeedMode = 0x00
	MaxFanSpeedEnable  MaxFanSpeedMode = 0x02
)

func (m MaxFanSpeedMode) String() string {
	switch m {
	case MaxFanSpeedDisable:
		return "Disable"
	case MaxFanSpeedEnable:
		return "Enable"
	default:
		return "Unknown"
	}
}

func MaxFanSpeedModeFromByte(b uint8) (MaxFanSpeedMode, error) {
	switch MaxFanSpeedMode(b) {
	case MaxFanSpeedDisable, MaxFanSpeedEnable:
		return MaxFanSpeedMode(b), nil
	default:
		return 0, razererr.BadValue(b, "MaxFanSpeedMode")
	}
}

// CpuBoost is the CPU boost level, legal only under (Custom, Auto).
type CpuBoost uint8

const (
	CpuBoostLow CpuBoost = iota
	CpuBoostMedium
	CpuBoostHigh
	CpuBoostBoost
	CpuBoostOverclock
)

func (b CpuBoost) String() string {
	switch b {
	case CpuBoostLow:
		return "Low"
	case CpuBoostMedium:
		return "Medium"
	case CpuBoostHigh:
		return "High"
	case CpuBoostBoost:
		return "Boost"
	case CpuBoostOverclock:
		return "Overclock"
	default:
		return "Unknown"
	}
}

func CpuBoostFromByte(b uint8) (CpuBoost, error) {
	if b <= uint8(CpuBoostOverclock) {
		return CpuBoost(b), nil
	}
	return 0, razererr.BadValue(b, "CpuBoost")
}

// GpuBoost is the GPU boost level, legal only under (Custom, Auto).
type GpuBoost uint8

const (
	GpuBoostLow GpuBoost = iota
	GpuBoostMedium
	GpuBoostHigh
)

func (b GpuBoost) String() string {
	switch b {
	case GpuBoostLow:
		return "Low"
	case GpuBoostMedium:
		return "Medium"
	case GpuBoostHigh:
		return "High"
	default:
		return "Unknown"
	}
}

func GpuBoostFromByte(b uint8) (GpuBoost, error) {
	if b <= uint8(GpuBoostHigh) {
		return GpuBoost(b), nil
	}
	return 0, razererr.BadValue(b, "GpuBoost")
}

// LogoMode is the tri-valued lid logo presentation. It has no single wire
// byte of its own: it is expressed via two device commands (power + pattern,
// see command.SetLogoMode) and so carries no FromByte/wire mapping.
type LogoMode uint8

const (
	LogoOff LogoMode = iota
	LogoStatic
	LogoBreathing
)

func (m LogoMode) String() string {
	switch m {
	case LogoOff:
		return "Off"
	case LogoStatic:
		return "Static"
	case LogoBreathing:
		return "Breathing"
	default:
		return "Unknown"
	}
}

// LightsAlwaysOn controls whether RGB lighting stays lit when the lid is
// closed or the laptop sleeps.
type LightsAlwaysOn uint8

const (
	LightsAlwaysOnDisable LightsAlwaysOn = 0x00
	LightsAlwaysOnEnable  LightsAlwaysOn = 0x03
)

func (l LightsAlwaysOn) String() string {
	switch l {
	case LightsAlwaysOnDisable:
		return "Disable"
	case LightsAlwaysOnEnable:
		return "Enable"
	default:
		return "Unknown"
	}
}

func LightsAlwaysOnFromByte(b uint8) (LightsAlwaysOn, error) {
	switch LightsAlwaysOn(b) {
	case LightsAlwaysOnDisable, LightsAlwaysOnEnable:
		return LightsAlwaysOn(b), nil
	default:
		return 0, razererr.BadValue(b, "LightsAlwaysOn")
	}
}

// BatteryCare limits charging to extend battery lifespan when enabled.
type BatteryCare uint8

const (
	BatteryCareDisable BatteryCare = 0x50
	BatteryCareEnable  BatteryCare = 0xd0
)

func (c BatteryCare) String() string {
	switch c {
	case BatteryCareDisable:
		return "Disable"
	case BatteryCareEnable:
		return "Enable"
	default:
		return "Unknown"
	}
}

func BatteryCareFromByte(b uint8) (BatteryCare, error) {
	switch BatteryCare(b) {
	case BatteryCareDisable, BatteryCareEnable:
		return BatteryCare(b), nil
	default:
		return 0, razererr.BadValue(b, "BatteryCare")
	}
}
