package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/settings"
	"github.com/tomz197/giftdrop/internal/sound"
)

// AudioSampleRate is the rate of the shared audio context.
const AudioSampleRate = 48000

// AudioManager plays synthesized tones for cues. It implements
// feedback.Sink and honours the sound setting.
type AudioManager struct {
	ctx      *audio.Context
	settings *settings.Manager
	pcm      map[feedback.Cue][]byte
	beep     []byte
}

// NewAudioManager renders every cue's tones once up front.
func NewAudioManager(ctx *audio.Context, sm *settings.Manager) *AudioManager {
	am := &AudioManager{
		ctx:      ctx,
		settings: sm,
		pcm:      make(map[feedback.Cue][]byte),
		beep:     sound.Beep.PCM(ctx.SampleRate()),
	}
	for _, c := range []feedback.Cue{
		feedback.CueGameStarted,
		feedback.CueGiftCollected,
		feedback.CueBombHit,
		feedback.CueGameOver,
	} {
		if chord := sound.ForCue(c); len(chord) > 0 {
			am.pcm[c] = chord.PCM(ctx.SampleRate())
		}
	}
	return am
}

// Cue plays the tones for c if sound is enabled.
func (am *AudioManager) Cue(c feedback.Cue) {
	if !am.enabled() {
		return
	}
	if data, ok := am.pcm[c]; ok {
		am.play(data)
	}
}

// Beep plays the short confirmation tone used when sound is switched on.
func (am *AudioManager) Beep() {
	if am.enabled() {
		am.play(am.beep)
	}
}

func (am *AudioManager) enabled() bool {
	return am.settings == nil || am.settings.SoundEnabled()
}

func (am *AudioManager) play(data []byte) {
	if len(data) == 0 {
		return
	}
	p := am.ctx.NewPlayerFromBytes(data)
	p.Play()
	log.Debug("playing tone", "bytes", len(data))
}
