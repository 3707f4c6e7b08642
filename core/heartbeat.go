package core

// Heartbeat segment layout. Each beat is a linear rise from base to
// its peak, a linear fall back, and a hold at base; the second beat's
// hold is longer, giving the characteristic lub-dub then rest. One
// full cycle is 16 ticks.
const (
	hbRiseTicks  = 2
	hbFallTicks  = 2
	hbShortPause = 2
	hbLongPause  = 6
)

const (
	hbSegRise uint8 = iota
	hbSegFall
	hbSegPause
)

// heartbeatStep returns the duty for the current heartbeat sub-phase
// and advances the counters one tick. Peaks and base are clamped into
// the duty range on every call, so parameter changes mid-cycle take
// effect immediately without disturbing the phase.
func (e *Engine) heartbeatStep(peak1, peak2, base DutyValue) DutyValue {
	b := e.duty.Clamp(base)
	peak := e.duty.Clamp(peak1)
	if e.state.beat == 1 {
		peak = e.duty.Clamp(peak2)
	}

	var duty DutyValue
	switch e.state.segment {
	case hbSegRise:
		duty = lerpDuty(b, peak, e.state.step, hbRiseTicks)
	case hbSegFall:
		// Step 0 of the fall is the peak itself.
		duty = lerpDuty(peak, b, e.state.step, hbFallTicks)
	default:
		duty = b
	}

	e.advanceHeartbeat()
	return duty
}

// advanceHeartbeat moves the (beat, segment, step) counters forward
// one tick, wrapping from the second beat's pause back to the first
// beat's rise.
func (e *Engine) advanceHeartbeat() {
	s := &e.state

	limit := uint32(hbShortPause)
	switch s.segment {
	case hbSegRise:
		limit = hbRiseTicks
	case hbSegFall:
		limit = hbFallTicks
	default:
		if s.beat == 1 {
			limit = hbLongPause
		}
	}

	s.step++
	if s.step < limit {
		return
	}
	s.step = 0
	s.segment++
	if s.segment > hbSegPause {
		s.segment = hbSegRise
		s.beat ^= 1
	}
}

// lerpDuty interpolates from -> to at position step/total; step 0
// lands on `from`.
func lerpDuty(from, to DutyValue, step, total uint32) DutyValue {
	if step >= total {
		return to
	}
	d := int64(to) - int64(from)
	return DutyValue(int64(from) + d*int64(step)/int64(total))
}
