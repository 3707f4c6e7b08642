package core

// DutyRange bounds every duty value an effect may write. Immutable
// after construction; NewDutyRange is the only way to obtain one, so
// a valid range is a construction-time guarantee rather than a
// per-call check.
type DutyRange struct {
	min DutyValue
	max DutyValue
}

// NewDutyRange validates (min, max) against the channel's maximum
// duty. min == max is allowed and pins every effect to a constant
// level.
func NewDutyRange(min, max, channelMax DutyValue) (DutyRange, error) {
	if min > max {
		return DutyRange{}, ErrRangeInverted
	}
	if max > channelMax {
		return DutyRange{}, ErrRangeOverMax
	}
	return DutyRange{min: min, max: max}, nil
}

// Min returns the lower bound.
func (r DutyRange) Min() DutyValue { return r.min }

// Max returns the upper bound.
func (r DutyRange) Max() DutyValue { return r.max }

// Span returns max - min.
func (r DutyRange) Span() DutyValue { return r.max - r.min }

// Mid returns the midpoint of the range, rounded down.
func (r DutyRange) Mid() DutyValue { return r.min + r.Span()/2 }

// Clamp saturates v at the nearer bound.
func (r DutyRange) Clamp(v DutyValue) DutyValue {
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

// Scale maps the ratio num/den onto [min, max] linearly. num must not
// exceed den; den must be nonzero.
func (r DutyRange) Scale(num, den uint64) DutyValue {
	return r.min + DutyValue(uint64(r.Span())*num/den)
}
