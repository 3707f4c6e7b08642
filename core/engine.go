// Effect engine for a single PWM-driven LED.
//
// The engine is a pure step machine: each effect call computes the
// next duty value from the previous internal state, writes it through
// the DutyChannel, and advances the state by one tick. It never
// sleeps or schedules anything; real-time pacing is the caller's
// responsibility.
package core

// effectKind selects the active variant of effectState.
type effectKind uint8

const (
	effectIdle effectKind = iota
	effectBreathe
	effectHeartbeat
	effectFlicker
)

// effectState holds the active effect variant and its private
// progression counters. Exactly one variant's fields are meaningful
// at a time; switching effects resets the state to the new variant's
// initial phase.
type effectState struct {
	kind effectKind

	// Breathe: position within the fade cycle, [0, period).
	phase uint32

	// Heartbeat: which pulse of the double beat is active (0 or 1),
	// the segment within it (rise/fall/pause), and the tick within
	// the segment.
	beat    uint8
	segment uint8
	step    uint32

	// Flicker: generator state and the duty written on the previous
	// step.
	rng      rngState
	lastDuty DutyValue
}

// Engine drives one DutyChannel with the configured effect. It owns
// the channel and its effect state exclusively; callers needing
// concurrent access must synchronize externally.
type Engine struct {
	ch          DutyChannel
	duty        DutyRange
	state       effectState
	flickerSeed uint32
}

// NewEngine builds an engine around a duty channel. The (min, max)
// pair bounds every duty value the engine will ever write; invalid
// bounds fail here, once, instead of on every effect call.
func NewEngine(ch DutyChannel, min, max DutyValue) (*Engine, error) {
	if ch == nil {
		return nil, ErrNilChannel
	}
	r, err := NewDutyRange(min, max, ch.MaxDuty())
	if err != nil {
		return nil, err
	}
	return &Engine{
		ch:          ch,
		duty:        r,
		flickerSeed: defaultFlickerSeed,
	}, nil
}

// Range returns the configured duty range.
func (e *Engine) Range() DutyRange { return e.duty }

// SeedFlicker sets the seed used whenever the flicker effect is
// (re)started. It does not disturb a flicker already in progress, so
// seeding and then calling Flicker from an Idle or other-effect state
// yields a fully reproducible sequence.
func (e *Engine) SeedFlicker(seed uint32) {
	e.flickerSeed = seed
}

// Breathe performs one step of the breathing fade. period is the
// number of calls per full fade-in/fade-out cycle and must be
// nonzero; a zero period is rejected without touching state or the
// channel.
func (e *Engine) Breathe(period uint32) error {
	if period == 0 {
		return ErrZeroPeriod
	}
	e.activate(effectBreathe)
	return e.ch.SetDuty(e.breatheStep(period))
}

// Heartbeat performs one step of the double-beat pulse. peak1, peak2
// and base are raw duty levels; values outside the configured range
// are clamped rather than rejected, since the visual effect degrades
// gracefully.
func (e *Engine) Heartbeat(peak1, peak2, base DutyValue) error {
	e.activate(effectHeartbeat)
	return e.ch.SetDuty(e.heartbeatStep(peak1, peak2, base))
}

// Flicker performs one step of the random flicker. maxStep bounds how
// far the duty may move per call; zero holds the output steady.
func (e *Engine) Flicker(maxStep DutyValue) error {
	e.activate(effectFlicker)
	return e.ch.SetDuty(e.flickerStep(maxStep))
}

// Off resets the engine to idle and writes raw duty 0, parking the
// output dark even when the range minimum is above zero.
func (e *Engine) Off() error {
	e.state = effectState{kind: effectIdle}
	return e.ch.SetDuty(0)
}

// activate resets the effect state when the requested effect differs
// from the one currently running, so switching effects always starts
// the new one from its initial phase.
func (e *Engine) activate(kind effectKind) {
	if e.state.kind == kind {
		return
	}
	e.state = effectState{kind: kind}
	if kind == effectFlicker {
		e.state.rng = seedRng(e.flickerSeed)
		e.state.lastDuty = e.duty.Mid()
	}
}
