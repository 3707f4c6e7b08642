//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"glimmer/control"
	"glimmer/core"
	"glimmer/protocol"
)

const (
	// effectPin carries the PWM output. GP15 sits on slice 7 on both
	// RP2040 and RP2350.
	effectPin = machine.GP15

	// 200 Hz carrier: comfortably above flicker fusion, well within
	// what the slice divider can generate.
	pwmPeriodNs = 5_000_000
)

func main() {
	// Give the USB CDC host a moment to attach so early prints are
	// not lost.
	time.Sleep(2 * time.Second)

	ch, err := NewPWMChannel(effectPin, pwmPeriodNs)
	if err != nil {
		println("pwm configure failed:", err.Error())
		return
	}

	engine, err := core.NewEngine(ch, 0, ch.MaxDuty())
	if err != nil {
		println("engine init failed:", err.Error())
		return
	}

	ctl := control.NewController(engine)
	decoder := protocol.NewDecoder(ctl.Dispatch)

	// Breathe slowly until the host commands otherwise, so the board
	// shows life standalone.
	args := protocol.AppendUint(nil, 2*control.DefaultTickRate)
	if err := ctl.Dispatch(control.CmdBreathe, args); err != nil {
		println("default effect failed:", err.Error())
	}

	println("glimmer ready on", uint8(effectPin))

	var buf [64]byte
	next := time.Now()
	for {
		// Drain pending command bytes into the frame decoder.
		n := 0
		for machine.Serial.Buffered() > 0 && n < len(buf) {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			buf[n] = b
			n++
		}
		if n > 0 {
			if err := decoder.Feed(buf[:n]); err != nil {
				println("command error:", err.Error())
			}
		}

		if now := time.Now(); !now.Before(next) {
			if err := ctl.Tick(); err != nil {
				println("effect error:", err.Error())
			}
			next = now.Add(ctl.TickInterval())
		}

		time.Sleep(time.Millisecond)
	}
}
