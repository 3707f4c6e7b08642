package core

import "testing"

const hbCycleTicks = hbRiseTicks + hbFallTicks + hbShortPause +
	hbRiseTicks + hbFallTicks + hbLongPause

func runHeartbeat(t *testing.T, eng *Engine, peak1, peak2, base DutyValue, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := eng.Heartbeat(peak1, peak2, base); err != nil {
			t.Fatal(err)
		}
	}
}

// localMaxima returns the values of strict local maxima in one cycle
// of the written sequence, treating the flat base holds as non-peaks.
func localMaxima(seq []DutyValue) []DutyValue {
	var peaks []DutyValue
	for i := 1; i < len(seq)-1; i++ {
		if seq[i] > seq[i-1] && seq[i] > seq[i+1] {
			peaks = append(peaks, seq[i])
		}
	}
	return peaks
}

func TestHeartbeatFullCycle(t *testing.T) {
	ch := newRecordChannel(255)
	eng, err := NewEngine(ch, 0, 255)
	if err != nil {
		t.Fatal(err)
	}

	runHeartbeat(t, eng, 100, 80, 10, hbCycleTicks)

	want := []DutyValue{
		10, 55, // rise to peak1
		100, 55, // peak1, fall
		10, 10, // short pause
		10, 45, // rise to peak2
		80, 45, // peak2, fall
		10, 10, 10, 10, 10, 10, // long pause
	}
	if len(ch.duties) != len(want) {
		t.Fatalf("wrote %d values, want %d", len(ch.duties), len(want))
	}
	for i, w := range want {
		if ch.duties[i] != w {
			t.Errorf("tick %d: duty = %d, want %d", i, ch.duties[i], w)
		}
	}
}

func TestHeartbeatTwoPeaksPerCycle(t *testing.T) {
	ch := newRecordChannel(255)
	eng, err := NewEngine(ch, 5, 250)
	if err != nil {
		t.Fatal(err)
	}

	runHeartbeat(t, eng, 240, 180, 20, hbCycleTicks)

	peaks := localMaxima(ch.duties)
	if len(peaks) != 2 {
		t.Fatalf("found %d local maxima in one cycle, want 2 (%v)", len(peaks), ch.duties)
	}
	if peaks[0] != 240 || peaks[1] != 180 {
		t.Errorf("peaks = %v, want [240 180]", peaks)
	}
}

func TestHeartbeatPeriodicity(t *testing.T) {
	ch := newRecordChannel(255)
	eng, err := NewEngine(ch, 5, 250)
	if err != nil {
		t.Fatal(err)
	}

	runHeartbeat(t, eng, 200, 150, 30, 3*hbCycleTicks)

	for i := 0; i < hbCycleTicks; i++ {
		a := ch.duties[i]
		b := ch.duties[i+hbCycleTicks]
		c := ch.duties[i+2*hbCycleTicks]
		if a != b || b != c {
			t.Fatalf("tick %d not periodic: %d, %d, %d", i, a, b, c)
		}
	}
}

func TestHeartbeatClampsPeaks(t *testing.T) {
	const min, max = 40, 200
	ch := newRecordChannel(1000)
	eng, err := NewEngine(ch, min, max)
	if err != nil {
		t.Fatal(err)
	}

	// Peaks above the range and a base below it: clamped, not
	// rejected.
	runHeartbeat(t, eng, 1000, 900, 0, hbCycleTicks)

	peaks := localMaxima(ch.duties)
	if len(peaks) != 2 {
		t.Fatalf("found %d local maxima, want 2", len(peaks))
	}
	for _, p := range peaks {
		if p != max {
			t.Errorf("clamped peak = %d, want %d", p, max)
		}
	}
	for i, d := range ch.duties {
		if d < min || d > max {
			t.Errorf("tick %d: duty %d outside [%d, %d]", i, d, min, max)
		}
	}
}
