package audio

import (
	"bytes"
	"fmt"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// EbitenBackend plays decoded 16-bit stereo PCM through an ebiten audio
// context. The context is the process's only audio device, so the engine
// synth is routed through it too.
type EbitenBackend struct {
	ctx *audio.Context
	log zerolog.Logger

	streams []*audio.Player
}

// NewEbitenBackend wraps ctx.
func NewEbitenBackend(ctx *audio.Context, log zerolog.Logger) *EbitenBackend {
	return &EbitenBackend{ctx: ctx, log: log}
}

// SampleRate is the context's rate as a beep rate.
func (b *EbitenBackend) SampleRate() beep.SampleRate {
	return beep.SampleRate(b.ctx.SampleRate())
}

func (b *EbitenBackend) Loop(pcm []byte) (Voice, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := b.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("creating loop player: %w", err)
	}
	return p, nil
}

func (b *EbitenBackend) Once(pcm []byte) (Voice, error) {
	return b.ctx.NewPlayerFromBytes(pcm), nil
}

// Play streams a generated signal until it drains. It implements the synth
// sink.
func (b *EbitenBackend) Play(s beep.Streamer) error {
	live := b.streams[:0]
	for _, p := range b.streams {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			b.log.Warn().Err(err).Msg("failed to close drained stream")
		}
	}
	b.streams = live

	p, err := b.ctx.NewPlayerF32(NewStreamReader(s))
	if err != nil {
		return fmt.Errorf("creating stream player: %w", err)
	}
	p.Play()
	b.streams = append(b.streams, p)
	return nil
}
