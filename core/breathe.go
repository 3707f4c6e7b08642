package core

// breatheStep advances the breathing phase one tick and returns the
// duty for the new phase.
//
// The waveform is an integer triangle: intensity rises linearly from
// 0 at phase 0 to 1 at phase period/2 and falls back to 0 at phase
// period. The phase advances before the duty is computed, so a reset
// engine emits min+step on its first call and lands back exactly on
// the range minimum after `period` calls; the sequence then repeats
// identically. Triangular rather than sine-shaped keeps the math
// exact in integer arithmetic.
func (e *Engine) breatheStep(period uint32) DutyValue {
	e.state.phase++
	if e.state.phase >= period {
		e.state.phase = 0
	}

	// Distance from the nearest cycle edge, doubled so the peak of
	// the triangle reaches the full range on even periods.
	tri := 2 * uint64(e.state.phase)
	if e.state.phase > period/2 {
		tri = 2 * uint64(period-e.state.phase)
	}
	return e.duty.Scale(tri, uint64(period))
}
