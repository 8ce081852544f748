package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(sampleRateHz)

// bufferStreamer plays a floatBuffer once, mono duplicated to both channels.
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// Player owns the speaker and serializes motif playback.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio system. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a motif buffer. Silently ignored when the speaker failed to
// initialize, so a headless environment still renders.
func (p *Player) Play(buf []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(buf) == 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// Cleanup stops playback. beep has no speaker Close; clearing the mixer is
// enough to silence output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
