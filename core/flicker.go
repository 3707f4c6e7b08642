package core

// flickerStep advances the generator one step and walks the duty a
// bounded random distance from the previously written value. The walk
// is clamped into the duty range, never rejected, so the output
// flickers against the bounds instead of wandering off them. maxStep
// zero holds the output steady at the last value.
func (e *Engine) flickerStep(maxStep DutyValue) DutyValue {
	s := &e.state
	if maxStep == 0 {
		return s.lastDuty
	}

	// Uniform delta in [-maxStep, +maxStep]. The modulo bias is
	// irrelevant at candle-flicker step sizes.
	span := 2*int64(maxStep) + 1
	delta := int64(s.rng.next())%span - int64(maxStep)

	next := int64(s.lastDuty) + delta
	if next < int64(e.duty.Min()) {
		next = int64(e.duty.Min())
	} else if next > int64(e.duty.Max()) {
		next = int64(e.duty.Max())
	}
	s.lastDuty = DutyValue(next)
	return s.lastDuty
}
