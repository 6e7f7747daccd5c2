package audio

import (
	"github.com/rs/zerolog"
)

// Player is the sample playback surface the game states use.
type Player interface {
	// PlayLoop starts name looping, replacing any other loop. Asking for
	// the loop that is already playing does nothing.
	PlayLoop(name string)
	// PlayOnce starts a one-shot. Overlapping instances are allowed.
	PlayOnce(name string)
	// StopAll silences the loop and every one-shot.
	StopAll()
}

// SampleSource resolves a sound name to decoded PCM.
type SampleSource interface {
	Sound(name string) ([]byte, bool)
}

// Voice is one playing instance.
type Voice interface {
	Play()
	IsPlaying() bool
	Close() error
}

// Backend creates voices from decoded PCM.
type Backend interface {
	Loop(pcm []byte) (Voice, error)
	Once(pcm []byte) (Voice, error)
}

// SamplePlayer implements Player over a Backend. Missing sounds are
// skipped.
type SamplePlayer struct {
	backend Backend
	samples SampleSource
	log     zerolog.Logger

	loop     Voice
	loopName string
	oneshots []Voice
}

// NewSamplePlayer creates a player.
func NewSamplePlayer(backend Backend, samples SampleSource, log zerolog.Logger) *SamplePlayer {
	return &SamplePlayer{backend: backend, samples: samples, log: log}
}

// Looping returns the active loop's name.
func (p *SamplePlayer) Looping() string {
	return p.loopName
}

func (p *SamplePlayer) PlayLoop(name string) {
	if p.loop != nil && p.loopName == name {
		return
	}
	p.stopLoop()

	pcm, ok := p.samples.Sound(name)
	if !ok {
		p.log.Debug().Str("sound", name).Msg("loop skipped, sound not loaded")
		return
	}
	v, err := p.backend.Loop(pcm)
	if err != nil {
		p.log.Error().Err(err).Str("sound", name).Msg("failed to start loop")
		return
	}
	v.Play()
	p.loop = v
	p.loopName = name
}

func (p *SamplePlayer) PlayOnce(name string) {
	pcm, ok := p.samples.Sound(name)
	if !ok {
		p.log.Debug().Str("sound", name).Msg("one-shot skipped, sound not loaded")
		return
	}
	v, err := p.backend.Once(pcm)
	if err != nil {
		p.log.Error().Err(err).Str("sound", name).Msg("failed to start one-shot")
		return
	}
	v.Play()
	p.prune()
	p.oneshots = append(p.oneshots, v)
}

func (p *SamplePlayer) StopAll() {
	p.stopLoop()
	for _, v := range p.oneshots {
		p.close(v)
	}
	p.oneshots = p.oneshots[:0]
}

func (p *SamplePlayer) stopLoop() {
	if p.loop == nil {
		return
	}
	p.close(p.loop)
	p.loop = nil
	p.loopName = ""
}

// prune drops finished one-shots.
func (p *SamplePlayer) prune() {
	live := p.oneshots[:0]
	for _, v := range p.oneshots {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		p.close(v)
	}
	p.oneshots = live
}

func (p *SamplePlayer) close(v Voice) {
	if err := v.Close(); err != nil {
		p.log.Warn().Err(err).Msg("failed to close voice")
	}
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) PlayLoop(string) {}
func (Nop) PlayOnce(string) {}
func (Nop) StopAll()        {}

// LoopEngine stands in for the synthesized engine by looping one sample.
// The sample does not follow the throttle.
type LoopEngine struct {
	Player Player
	Sound  string
}

func (e LoopEngine) Use(string)       {}
func (e LoopEngine) SetSpeed(float64) {}

func (e LoopEngine) Start() {
	e.Player.PlayLoop(e.Sound)
}

func (e LoopEngine) Stop() {
	e.Player.StopAll()
}
