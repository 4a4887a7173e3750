// Command razerctl is a minimal demo entrypoint: detect the laptop,
// print what was found, and dump its current state. It is not a full CLI;
// see SPEC_FULL.md §2 for why that is out of scope.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/stvnksslr/razer-ctl/cache"
	"github.com/stvnksslr/razer-ctl/device"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	c, err := cache.New()
	if err != nil {
		slog.Warn("failed to initialize device cache, detecting without it", "error", err)
	}

	var dev *device.Device
	if c != nil {
		dev, err = device.DetectWithCache(c)
	} else {
		dev, err = device.Detect()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to detect device: %v\n", err)
		os.Exit(1)
	}
	defer dev.Close()

	fmt.Printf("%s (%s, pid=0x%04x)\n", dev.Name(), dev.Model(), dev.PID())
	fmt.Println("features:", dev.Features())

	state := dev.ReadState()
	printSetting := func(name string, value fmt.Stringer) {
		if value != nil {
			fmt.Printf("  %-20s %s\n", name, value)
		}
	}

	fmt.Println("state:")
	if state.PerfMode != nil {
		printSetting("perf mode", *state.PerfMode)
	}
	if state.FanMode != nil {
		printSetting("fan mode", *state.FanMode)
	}
	if state.CpuBoost != nil {
		printSetting("cpu boost", *state.CpuBoost)
	}
	if state.GpuBoost != nil {
		printSetting("gpu boost", *state.GpuBoost)
	}
	if state.FanRPM != nil {
		fmt.Printf("  %-20s %d\n", "fan rpm", *state.FanRPM)
	}
	if state.MaxFanSpeed != nil {
		printSetting("max fan speed", *state.MaxFanSpeed)
	}
	if state.KeyboardBrightness != nil {
		fmt.Printf("  %-20s %d\n", "kbd brightness", *state.KeyboardBrightness)
	}
	if state.LogoMode != nil {
		printSetting("logo mode", *state.LogoMode)
	}
	if state.BatteryCare != nil {
		printSetting("battery care", *state.BatteryCare)
	}
	if state.LightsAlwaysOn != nil {
		printSetting("lights always on", *state.LightsAlwaysOn)
	}
}
