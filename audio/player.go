package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/personform/parameter"
)

// BeepPlayer plays tones through the system speaker
type BeepPlayer struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	mixer *beep.Mixer
}

// NewBeepPlayer opens the speaker; the error means no audio device is usable
func NewBeepPlayer() (*BeepPlayer, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	p := &BeepPlayer{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play implements Player
func (p *BeepPlayer) Play(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	tone, err := Tone(s, p.rate)
	if err != nil {
		log.Printf("audio: build %s tone: %v", s, err)
		return false
	}

	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
	return true
}

// Close stops playback and releases the device
func (p *BeepPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
