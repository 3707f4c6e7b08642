// Package config loads the host tool's scene presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"glimmer/control"
	"glimmer/protocol"
)

// Config is the glimmer-host preset file.
type Config struct {
	Device string  `yaml:"device"`
	Baud   int     `yaml:"baud"`
	Scenes []Scene `yaml:"scenes"`
}

// Scene is one named effect preset.
type Scene struct {
	Name   string `yaml:"name"`
	Effect string `yaml:"effect"` // off, breathe, heartbeat or flicker

	// Breathe.
	Period uint32 `yaml:"period,omitempty"`

	// Heartbeat.
	Peak1 uint32 `yaml:"peak1,omitempty"`
	Peak2 uint32 `yaml:"peak2,omitempty"`
	Base  uint32 `yaml:"base,omitempty"`

	// Flicker.
	MaxStep uint32 `yaml:"max_step,omitempty"`
	Seed    uint32 `yaml:"seed,omitempty"`

	// Optional effect step rate override.
	TickHz uint32 `yaml:"tick_hz,omitempty"`
}

// Load reads and validates a preset file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Device: "/dev/ttyACM0",
		Baud:   115200,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	seen := make(map[string]bool)
	for i := range cfg.Scenes {
		s := &cfg.Scenes[i]
		if s.Name == "" {
			return nil, fmt.Errorf("scene %d: missing name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scene %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name, err)
		}
	}
	return cfg, nil
}

// Scene looks up a preset by name.
func (c *Config) Scene(name string) (Scene, bool) {
	for _, s := range c.Scenes {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

func (s *Scene) validate() error {
	switch s.Effect {
	case "off", "heartbeat", "flicker":
	case "breathe":
		if s.Period == 0 {
			return fmt.Errorf("breathe needs a nonzero period")
		}
	default:
		return fmt.Errorf("unknown effect %q", s.Effect)
	}
	return nil
}

// Encode renders the scene as control link frames, ready to write to
// the firmware's serial port.
func (s Scene) Encode() []byte {
	var wire []byte
	if s.TickHz != 0 {
		wire = protocol.AppendFrame(wire, control.CmdSetRate,
			protocol.AppendUint(nil, s.TickHz))
	}

	switch s.Effect {
	case "off":
		wire = protocol.AppendFrame(wire, control.CmdOff, nil)
	case "breathe":
		wire = protocol.AppendFrame(wire, control.CmdBreathe,
			protocol.AppendUint(nil, s.Period))
	case "heartbeat":
		args := protocol.AppendUint(nil, s.Peak1)
		args = protocol.AppendUint(args, s.Peak2)
		args = protocol.AppendUint(args, s.Base)
		wire = protocol.AppendFrame(wire, control.CmdHeartbeat, args)
	case "flicker":
		if s.Seed != 0 {
			wire = protocol.AppendFrame(wire, control.CmdFlickerSeed,
				protocol.AppendUint(nil, s.Seed))
		}
		wire = protocol.AppendFrame(wire, control.CmdFlicker,
			protocol.AppendUint(nil, s.MaxStep))
	}
	return wire
}
