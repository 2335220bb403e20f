package sound

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 660
	toneLength = 180 * time.Millisecond
)

// Player emits the single mode-switch signal: a short sine tone. If the audio
// device cannot be opened the player stays silent and the app keeps working.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker once for the process lifetime.
func NewPlayer() *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("sound disabled: speaker init: %v", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// ModeSwitch plays the switch tone. Playback is asynchronous and failures are
// logged, never surfaced.
func (player *Player) ModeSwitch() {
	if !player.enabled {
		return
	}
	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		log.Printf("sound: tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), tone))
}
