// tickbase-host monitors the tick telemetry stream from a device running
// the demo firmware and reports timebase health: report counts, property
// violations and clock drift against the host.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/shlex"

	"tickbase/host/monitor"
	"tickbase/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	useTTY  = flag.Bool("tty", false, "Open the device as a raw tty instead of a serial port")
	verbose = flag.Bool("verbose", false, "Print firmware debug output")
)

func main() {
	flag.Parse()

	var (
		port serial.Port
		err  error
	)
	if *useTTY {
		port, err = serial.OpenTTY(*device)
	} else {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		port, err = serial.Open(cfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer port.Close()

	mon := monitor.New()
	go func() {
		runErr := mon.Run(port, func(line string) {
			if *verbose {
				fmt.Println("[fw] " + line)
			}
		})
		if runErr != nil {
			log.Printf("telemetry stream: %v", runErr)
		}
	}()

	fmt.Printf("Monitoring %s (type 'help' for commands, 'quit' to exit)\n", *device)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit", "q":
			return

		case "help", "?":
			printHelp()

		case "status":
			printStatus(mon)

		case "drift":
			if ppm, ok := mon.Drift(); ok {
				fmt.Printf("Device clock drift: %+.1f ppm\n", ppm)
			} else {
				fmt.Println("Not enough reports yet")
			}

		case "violations":
			v := mon.Violations()
			if len(v) == 0 {
				fmt.Println("No property violations observed")
				continue
			}
			for _, msg := range v {
				fmt.Println("  " + msg)
			}

		default:
			fmt.Printf("Unknown command %q (try 'help')\n", args[0])
		}
	}
}

func printStatus(mon *monitor.Monitor) {
	last, ok := mon.Last()
	if !ok {
		fmt.Println("No telemetry received yet")
		return
	}
	fmt.Printf("Reports: %d  Violations: %d\n", mon.Count(), len(mon.Violations()))
	fmt.Printf("Last: tick=%d cycles=%d ms=%d us=%d\n",
		last.Tick, last.Cycles, last.Millis, last.Micros)
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  status      - report count and last telemetry values")
	fmt.Println("  drift       - device clock drift vs host clock (ppm)")
	fmt.Println("  violations  - list observed timebase property violations")
	fmt.Println("  quit        - exit")
}
