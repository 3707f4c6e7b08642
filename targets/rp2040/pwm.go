//go:build rp2040 || rp2350

package main

import (
	"machine"

	"glimmer/core"
)

// pwmMaxDuty is the duty space the effect engine sees. 8 bits is
// plenty of brightness resolution for an LED and keeps host commands
// to single-byte arguments.
const pwmMaxDuty = 255

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type so
// the slice lookup can return a value.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// PWMChannel implements core.DutyChannel on one pin of an RP2040/
// RP2350 hardware PWM slice, rescaling the 8-bit duty space to the
// slice's counter top.
type PWMChannel struct {
	pwm pwmPeripheral
	ch  uint8
}

// NewPWMChannel configures the PWM slice owning pin with the given
// carrier period and returns the pin's channel.
func NewPWMChannel(pin machine.Pin, periodNs uint64) (*PWMChannel, error) {
	slice := sliceFor(pin)
	err := slice.Configure(machine.PWMConfig{Period: periodNs})
	if err != nil {
		return nil, err
	}
	ch, err := slice.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &PWMChannel{pwm: slice, ch: ch}, nil
}

// MaxDuty returns the top of the 8-bit duty space.
func (p *PWMChannel) MaxDuty() core.DutyValue { return pwmMaxDuty }

// SetDuty rescales value to the slice counter and applies it.
func (p *PWMChannel) SetDuty(value core.DutyValue) error {
	if value > pwmMaxDuty {
		value = pwmMaxDuty
	}
	p.pwm.Set(p.ch, uint32(value)*p.pwm.Top()/pwmMaxDuty)
	return nil
}

// sliceFor maps a GPIO pin to its PWM slice.
// RP2040: GPIO pin N is driven by slice (N >> 1) & 0x7.
func sliceFor(pin machine.Pin) pwmPeripheral {
	switch (uint8(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
