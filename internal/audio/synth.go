package audio

import "math"

// All effects are synthesized at init time as float32 LE stereo buffers.
// Frequencies and envelopes are tuned by ear, not sampled from assets.

// generateAll renders every named effect.
func generateAll() map[string][]byte {
	return map[string][]byte{
		SoundJump:      genSweep(300, 700, 0.15, 0.6),
		SoundCoin:      genChime(),
		SoundCollision: genNoiseBurst(0.25),
		SoundGameOver:  genSweep(400, 120, 0.6, 0.5),
		SoundStart:     genArpeggio(),
	}
}

// frames returns the frame count for a duration in seconds.
func frames(seconds float64) int {
	return int(seconds * SampleRate)
}

// buffer allocates a stereo float32 buffer for n frames.
func buffer(n int) []byte {
	return make([]byte, n*8)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < 2; c++ {
		off := i*8 + c*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// envelope is a linear attack/release shape over t in [0,1].
func envelope(t float64) float64 {
	const attack = 0.05
	if t < attack {
		return t / attack
	}
	return 1 - (t-attack)/(1-attack)
}

// genSweep renders a sine sweep from f0 to f1 Hz.
func genSweep(f0, f1, seconds, gain float64) []byte {
	n := frames(seconds)
	buf := buffer(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		phase += 2 * math.Pi * freq / SampleRate
		putStereoF32(buf, i, gain*envelope(t)*math.Sin(phase))
	}
	return buf
}

// genChime renders the coin pickup: two short stacked tones.
func genChime() []byte {
	n := frames(0.12)
	buf := buffer(n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		ts := float64(i) / SampleRate
		s := 0.4*math.Sin(2*math.Pi*900*ts) + 0.3*math.Sin(2*math.Pi*1350*ts)
		putStereoF32(buf, i, envelope(t)*s)
	}
	return buf
}

// genNoiseBurst renders the collision thud: filtered pseudo-random noise.
func genNoiseBurst(seconds float64) []byte {
	n := frames(seconds)
	buf := buffer(n)
	// xorshift keeps the buffer deterministic across runs.
	state := uint32(0x9e3779b9)
	prev := 0.0
	for i := 0; i < n; i++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		raw := float64(int32(state))/math.MaxInt32*2 - 1
		// One-pole lowpass to push the burst toward a thud.
		prev = prev*0.92 + raw*0.08
		t := float64(i) / float64(n)
		putStereoF32(buf, i, 0.8*envelope(t)*prev*4)
	}
	return buf
}

// genArpeggio renders the run-start jingle: a quick major triad.
func genArpeggio() []byte {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	per := frames(0.1)
	n := per * len(notes)
	buf := buffer(n)
	for idx, freq := range notes {
		for i := 0; i < per; i++ {
			t := float64(i) / float64(per)
			ts := float64(i) / SampleRate
			putStereoF32(buf, idx*per+i, 0.5*envelope(t)*math.Sin(2*math.Pi*freq*ts))
		}
	}
	return buf
}

// generateMusicLoop renders a short looping background pattern: a soft
// square-wave bass line over two bars.
func generateMusicLoop() []byte {
	pattern := []float64{110, 110, 130.81, 98, 110, 110, 146.83, 130.81} // A2-centred walk
	per := frames(0.25)
	n := per * len(pattern)
	buf := buffer(n)
	for idx, freq := range pattern {
		for i := 0; i < per; i++ {
			t := float64(i) / float64(per)
			ts := float64(i) / SampleRate
			s := math.Sin(2 * math.Pi * freq * ts)
			// Soft-clip toward a square for a little grit.
			s = math.Tanh(3 * s)
			putStereoF32(buf, idx*per+i, 0.25*envelope(t)*s)
		}
	}
	return buf
}
