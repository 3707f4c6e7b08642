//go:build rp2040 || rp2350

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"glimmer/core"
)

// StripChannel implements core.DutyChannel on a WS2812B strip driven
// by a PIO state machine, rendering the duty as uniform white
// brightness across every pixel. Useful where the "lamp" is a
// NeoPixel ring rather than a plain LED; the effect engine neither
// knows nor cares.
type StripChannel struct {
	dev    *piolib.WS2812B
	pixels int
}

// NewStripChannel claims sm for the WS2812B program on pin. pixels is
// the strip length.
func NewStripChannel(sm pio.StateMachine, pin machine.Pin, pixels int) (*StripChannel, error) {
	dev, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &StripChannel{dev: dev, pixels: pixels}, nil
}

// MaxDuty returns the 8-bit brightness ceiling.
func (s *StripChannel) MaxDuty() core.DutyValue { return 255 }

// SetDuty writes the duty as a white level to every pixel.
func (s *StripChannel) SetDuty(value core.DutyValue) error {
	if value > 255 {
		value = 255
	}
	w := uint8(value)
	for i := 0; i < s.pixels; i++ {
		s.dev.PutRGB(w, w, w)
	}
	return nil
}
