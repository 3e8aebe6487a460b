package sound

import (
	"encoding/binary"
	"testing"
)

func TestBlipLayout(t *testing.T) {
	buf := Blip(1000, 100, 0.5, 1)
	if len(buf) != 500*4 {
		t.Fatalf("expected 500 stereo 16-bit frames, got %d bytes", len(buf))
	}
	for i := 0; i < 500; i++ {
		l := binary.LittleEndian.Uint16(buf[i*4:])
		r := binary.LittleEndian.Uint16(buf[i*4+2:])
		if l != r {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i, l, r)
		}
	}
}

func TestBlipDecays(t *testing.T) {
	buf := Blip(8000, 400, 0.5, 1)
	peak := func(from, to int) int {
		p := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(buf[i*4:])))
			if v < 0 {
				v = -v
			}
			p = max(p, v)
		}
		return p
	}
	frames := len(buf) / 4
	if head, tail := peak(0, frames/4), peak(frames*3/4, frames); tail >= head {
		t.Fatalf("envelope should decay: head peak %d, tail peak %d", head, tail)
	}
}

func TestEmptyDuration(t *testing.T) {
	if buf := Sweep(44100, 100, 200, 0, 1); buf != nil {
		t.Fatalf("zero duration should give no samples, got %d bytes", len(buf))
	}
}
