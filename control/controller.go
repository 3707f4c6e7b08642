// Command handling for the effect control link.
//
// The controller sits between the frame decoder and the effect
// engine: Dispatch records what the host asked for, and the hosting
// loop calls Tick once per frame period to advance the active effect
// by one step. Commands themselves never block or write to the
// channel except through that single per-tick engine call (Off is the
// exception: it takes effect immediately so a blackout is never a
// tick late).
package control

import (
	"errors"
	"time"

	"glimmer/core"
	"glimmer/protocol"
)

// Command identifiers carried in the frame cmd byte.
const (
	CmdOff         uint8 = 0 // no args
	CmdBreathe     uint8 = 1 // period_ticks
	CmdHeartbeat   uint8 = 2 // peak1 peak2 base
	CmdFlicker     uint8 = 3 // max_step
	CmdFlickerSeed uint8 = 4 // seed
	CmdSetRate     uint8 = 5 // ticks_per_second
)

const (
	// DefaultTickRate is the effect step rate until the host
	// commands one, chosen so default effect periods read naturally.
	DefaultTickRate = 50

	// maxTickRate bounds host-commanded rates to something a small
	// MCU main loop can sustain.
	maxTickRate = 1000
)

var (
	// ErrUnknownCommand is returned for a command byte the firmware
	// does not understand.
	ErrUnknownCommand = errors.New("unknown effect command")
	// ErrBadRate is returned for a zero or excessive tick rate.
	ErrBadRate = errors.New("tick rate out of range")
)

// mode mirrors the engine's effect families plus idle.
type mode uint8

const (
	modeIdle mode = iota
	modeBreathe
	modeHeartbeat
	modeFlicker
)

// Controller owns an Engine and the parameters of the most recently
// commanded effect.
type Controller struct {
	engine *core.Engine

	mode    mode
	period  uint32
	peak1   core.DutyValue
	peak2   core.DutyValue
	base    core.DutyValue
	maxStep core.DutyValue
	tickHz  uint32
}

// NewController wraps an engine. The controller starts idle with the
// output untouched.
func NewController(engine *core.Engine) *Controller {
	return &Controller{
		engine: engine,
		tickHz: DefaultTickRate,
	}
}

// Dispatch decodes and applies one command frame payload. Argument
// decode errors leave the active effect unchanged.
func (c *Controller) Dispatch(cmd uint8, args []byte) error {
	switch cmd {
	case CmdOff:
		return c.handleOff()
	case CmdBreathe:
		return c.handleBreathe(&args)
	case CmdHeartbeat:
		return c.handleHeartbeat(&args)
	case CmdFlicker:
		return c.handleFlicker(&args)
	case CmdFlickerSeed:
		return c.handleFlickerSeed(&args)
	case CmdSetRate:
		return c.handleSetRate(&args)
	default:
		return ErrUnknownCommand
	}
}

// Tick advances the active effect one step, performing at most one
// duty write. Idle ticks do nothing.
func (c *Controller) Tick() error {
	switch c.mode {
	case modeBreathe:
		return c.engine.Breathe(c.period)
	case modeHeartbeat:
		return c.engine.Heartbeat(c.peak1, c.peak2, c.base)
	case modeFlicker:
		return c.engine.Flicker(c.maxStep)
	default:
		return nil
	}
}

// TickInterval returns how long the hosting loop should wait between
// Tick calls for the commanded rate.
func (c *Controller) TickInterval() time.Duration {
	return time.Second / time.Duration(c.tickHz)
}

func (c *Controller) handleOff() error {
	c.mode = modeIdle
	return c.engine.Off()
}

// handleBreathe decodes: period_ticks
func (c *Controller) handleBreathe(data *[]byte) error {
	period, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	if period == 0 {
		return core.ErrZeroPeriod
	}
	c.mode = modeBreathe
	c.period = period
	return nil
}

// handleHeartbeat decodes: peak1 peak2 base
func (c *Controller) handleHeartbeat(data *[]byte) error {
	peak1, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	peak2, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	base, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	c.mode = modeHeartbeat
	c.peak1 = core.DutyValue(peak1)
	c.peak2 = core.DutyValue(peak2)
	c.base = core.DutyValue(base)
	return nil
}

// handleFlicker decodes: max_step
func (c *Controller) handleFlicker(data *[]byte) error {
	maxStep, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	c.mode = modeFlicker
	c.maxStep = core.DutyValue(maxStep)
	return nil
}

// handleFlickerSeed decodes: seed
// The seed applies the next time flicker starts; it does not disturb
// a flicker already running.
func (c *Controller) handleFlickerSeed(data *[]byte) error {
	seed, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	c.engine.SeedFlicker(seed)
	return nil
}

// handleSetRate decodes: ticks_per_second
func (c *Controller) handleSetRate(data *[]byte) error {
	hz, err := protocol.DecodeUint(data)
	if err != nil {
		return err
	}
	if hz == 0 || hz > maxTickRate {
		return ErrBadRate
	}
	c.tickHz = hz
	return nil
}
