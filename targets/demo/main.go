//go:build tinygo

// Demo firmware: runs the timebase off SysTick and reports tick telemetry
// over the default serial port once per second. The host-side monitor
// (host/cmd/tickbase-host) consumes the output.
package main

import (
	"machine"
	"strconv"

	"tickbase/core"
	"tickbase/targets/cortexm"
)

const tickFreqHz = 1000

func main() {
	err := machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})
	if err != nil {
		return
	}

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	core.SetDebugWriter(writeLine)
	core.SetDebugEnabled(true)

	core.Init(cortexm.Timer(), uint32(machine.CPUFrequency()), tickFreqHz)

	// Heartbeat from interrupt context: kept to a single pin toggle.
	core.SetCallback(func(tick uint64) {
		if tick%500 == 0 {
			led.Set(!led.Get())
		}
	})

	core.Start()

	for {
		core.DelayMillis(1000)
		report()
	}
}

// report emits one telemetry line in the format host/monitor parses.
func report() {
	writeLine("tick=" + strconv.FormatUint(core.Ticks(), 10) +
		" cycles=" + strconv.FormatUint(core.ClockCycles(), 10) +
		" ms=" + strconv.FormatUint(core.Millis(), 10) +
		" us=" + strconv.FormatUint(core.Micros(), 10))
}

func writeLine(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte("\r\n"))
}
