package core

import "testing"

func TestRngDeterministic(t *testing.T) {
	a := seedRng(12345)
	b := seedRng(12345)
	for i := 0; i < 1000; i++ {
		if a.next() != b.next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRngZeroSeedRemapped(t *testing.T) {
	s := seedRng(0)
	if s == 0 {
		t.Fatal("zero seed left generator in absorbing state")
	}
	// The remapped generator must actually advance.
	prev := uint32(s)
	if got := s.next(); got == prev {
		t.Errorf("generator did not advance from remapped seed")
	}
}

func TestRngNoShortCycle(t *testing.T) {
	s := seedRng(1)
	first := s.next()
	for i := 1; i < 10000; i++ {
		// xorshift32 permutes the nonzero 32-bit values, so any
		// repeat this early would mean a broken transform.
		if s.next() == first {
			t.Fatalf("value repeated after %d steps", i)
		}
	}
}
