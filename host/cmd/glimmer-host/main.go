package main

import (
	"flag"
	"fmt"
	"os"

	"glimmer/host/config"
	"glimmer/host/serial"
)

var (
	configPath = flag.String("config", "glimmer.yaml", "Scene preset file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	scene      = flag.String("scene", "", "Scene to send")
	list       = flag.Bool("list", false, "List scenes and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	if *list {
		for _, s := range cfg.Scenes {
			fmt.Printf("%-12s %s\n", s.Name, describe(s))
		}
		return
	}

	if *scene == "" {
		fmt.Fprintln(os.Stderr, "Error: no scene given (use -scene, or -list to see presets)")
		os.Exit(1)
	}
	s, ok := cfg.Scene(*scene)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", *scene)
		os.Exit(1)
	}

	port, err := serial.Open(serial.Config{Device: cfg.Device, Baud: cfg.Baud})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	wire := s.Encode()
	if _, err := port.Write(wire); err != nil {
		fmt.Fprintf(os.Stderr, "Error: send failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sent scene %q to %s (%d bytes)\n", s.Name, cfg.Device, len(wire))
}

func describe(s config.Scene) string {
	switch s.Effect {
	case "breathe":
		return fmt.Sprintf("breathe period=%d", s.Period)
	case "heartbeat":
		return fmt.Sprintf("heartbeat peak1=%d peak2=%d base=%d", s.Peak1, s.Peak2, s.Base)
	case "flicker":
		return fmt.Sprintf("flicker max_step=%d seed=%d", s.MaxStep, s.Seed)
	default:
		return s.Effect
	}
}
