package audio

import (
	"io"
	"math"
	"testing"
)

func TestGenerateAllKnownNames(t *testing.T) {
	samples := generateAll()

	for _, name := range []string{SoundJump, SoundCoin, SoundCollision, SoundGameOver, SoundStart} {
		data, ok := samples[name]
		if !ok {
			t.Errorf("missing sample for %q", name)
			continue
		}
		if len(data) == 0 {
			t.Errorf("empty sample for %q", name)
		}
		if len(data)%8 != 0 {
			t.Errorf("sample %q is not whole stereo float32 frames: %d bytes", name, len(data))
		}
	}
}

func TestSamplesInRange(t *testing.T) {
	for name, data := range generateAll() {
		for i := 0; i+4 <= len(data); i += 4 {
			bits := uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
			v := float64(math.Float32frombits(bits))
			if math.IsNaN(v) || v < -1.01 || v > 1.01 {
				t.Fatalf("sample %q frame %d out of range: %v", name, i/8, v)
			}
		}
	}
}

func TestNoiseBurstDeterministic(t *testing.T) {
	a := genNoiseBurst(0.1)
	b := genNoiseBurst(0.1)
	if len(a) != len(b) {
		t.Fatal("lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise burst differs at byte %d", i)
		}
	}
}

func TestLoopReaderWraps(t *testing.T) {
	r := &loopReader{data: []byte{1, 2, 3, 4}}

	buf := make([]byte, 10)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 10 {
		t.Fatalf("Read = %d bytes, expected 10", n)
	}

	expected := []byte{1, 2, 3, 4, 1, 2, 3, 4, 1, 2}
	for i := range expected {
		if buf[i] != expected[i] {
			t.Errorf("byte %d = %d, expected %d", i, buf[i], expected[i])
		}
	}
}

func TestSampleReaderEOF(t *testing.T) {
	r := &sampleReader{data: []byte{1, 2, 3}}

	buf := make([]byte, 8)
	n, _ := r.Read(buf)
	if n != 3 {
		t.Fatalf("Read = %d bytes, expected 3", n)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Errorf("expected EOF after drain, got %v", err)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}

	// Must be safe to call everything on the silent fallback.
	p.Play(SoundJump, 1.0, true)
	p.PauseMusic()
	p.ResumeMusic()
	if !p.ToggleMute() {
		t.Error("Nop.ToggleMute should report muted")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Nop.Close = %v", err)
	}
}
