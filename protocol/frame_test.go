package protocol

import (
	"bytes"
	"testing"
)

type capturedFrame struct {
	cmd  uint8
	args []byte
}

func collect(frames *[]capturedFrame) FrameHandler {
	return func(cmd uint8, args []byte) error {
		*frames = append(*frames, capturedFrame{cmd: cmd, args: append([]byte(nil), args...)})
		return nil
	}
}

func TestFrameRoundTrip(t *testing.T) {
	var frames []capturedFrame
	d := NewDecoder(collect(&frames))

	args := AppendUint(nil, 250)
	args = AppendUint(args, 3)
	wire := AppendFrame(nil, 2, args)

	if err := d.Feed(wire); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("decoded %d frames, want 1", len(frames))
	}
	if frames[0].cmd != 2 {
		t.Errorf("cmd = %d, want 2", frames[0].cmd)
	}
	if !bytes.Equal(frames[0].args, args) {
		t.Errorf("args = %v, want %v", frames[0].args, args)
	}
}

func TestFrameByteAtATime(t *testing.T) {
	var frames []capturedFrame
	d := NewDecoder(collect(&frames))

	wire := AppendFrame(nil, 1, AppendUint(nil, 40))
	for _, b := range wire {
		if err := d.Feed([]byte{b}); err != nil {
			t.Fatal(err)
		}
	}
	if len(frames) != 1 {
		t.Fatalf("decoded %d frames, want 1", len(frames))
	}
}

func TestFrameBackToBack(t *testing.T) {
	var frames []capturedFrame
	d := NewDecoder(collect(&frames))

	wire := AppendFrame(nil, 0, nil)
	wire = AppendFrame(wire, 1, AppendUint(nil, 8))
	wire = AppendFrame(wire, 3, AppendUint(nil, 12))

	if err := d.Feed(wire); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(frames))
	}
	for i, want := range []uint8{0, 1, 3} {
		if frames[i].cmd != want {
			t.Errorf("frame %d cmd = %d, want %d", i, frames[i].cmd, want)
		}
	}
}

func TestFrameResyncAfterGarbage(t *testing.T) {
	var frames []capturedFrame
	d := NewDecoder(collect(&frames))

	good := AppendFrame(nil, 1, AppendUint(nil, 30))

	var wire []byte
	wire = append(wire, 0xAA, 0x55, 0x00) // line noise before any frame
	wire = append(wire, good...)

	// A corrupted copy: flip a payload bit so the CRC fails.
	bad := append([]byte(nil), good...)
	bad[3] ^= 0x01
	wire = append(wire, bad...)
	wire = append(wire, good...)

	if err := d.Feed(wire); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("decoded %d frames, want 2 (corrupt frame dropped)", len(frames))
	}
}

func TestFrameRejectsOversizeLength(t *testing.T) {
	var frames []capturedFrame
	d := NewDecoder(collect(&frames))

	wire := []byte{SyncByte, MaxPayload + 1, 0, 0, 0}
	if err := d.Feed(wire); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 0 {
		t.Fatalf("decoded %d frames from oversize length, want 0", len(frames))
	}

	// Decoder must still accept a valid frame afterwards.
	if err := d.Feed(AppendFrame(nil, 1, AppendUint(nil, 5))); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Fatalf("decoded %d frames after resync, want 1", len(frames))
	}
}
