package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// ImageFunc loads a bitmap from path.
type ImageFunc func(path string) (*ebiten.Image, error)

// SoundFunc loads and decodes a sample from path.
type SoundFunc func(path string) ([]byte, error)

// Loader fills a Library a few items at a time so the loading screen keeps
// drawing. Failures are logged and still count as progress.
type Loader struct {
	Dir       string
	LoadImage ImageFunc
	LoadSound SoundFunc

	lib   *Library
	items []Item
	next  int
	log   zerolog.Logger
}

// NewLoader creates a loader for the full manifest under dir. Sounds are
// decoded at sampleRate.
func NewLoader(dir string, sampleRate int, lib *Library, log zerolog.Logger) *Loader {
	return &Loader{
		Dir:       dir,
		LoadImage: loadImageFile,
		LoadSound: wavDecoder(sampleRate),
		lib:       lib,
		items:     Manifest(),
		log:       log,
	}
}

// Library returns the library being filled.
func (l *Loader) Library() *Library {
	return l.lib
}

// Step loads up to n more items and returns how many it attempted.
func (l *Loader) Step(n int) int {
	done := 0
	for ; done < n && l.next < len(l.items); done++ {
		l.load(l.items[l.next])
		l.next++
	}
	return done
}

// Progress is the completed fraction in [0,1].
func (l *Loader) Progress() float64 {
	if len(l.items) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.items))
}

// Failures counts the items that did not load so far.
func (l *Loader) Failures() int {
	return l.lib.Failures()
}

// Done reports whether every item has been attempted.
func (l *Loader) Done() bool {
	return l.next >= len(l.items)
}

func (l *Loader) load(it Item) {
	var err error
	switch it.Kind {
	case Image:
		var img *ebiten.Image
		img, err = l.LoadImage(filepath.Join(l.Dir, "bitmaps", it.Name+".png"))
		if err == nil {
			l.lib.images[it.Name] = img
		}
	case Sound:
		var pcm []byte
		pcm, err = l.LoadSound(filepath.Join(l.Dir, "sounds", it.Name+".wav"))
		if err == nil {
			l.lib.sounds[it.Name] = pcm
		}
	}
	if err != nil {
		l.lib.failed[it.Name] = err
		l.log.Warn().Err(err).Str("name", it.Name).Stringer("kind", it.Kind).Msg("failed to load asset")
		return
	}
	l.log.Debug().Str("name", it.Name).Stringer("kind", it.Kind).Msg("asset loaded")
}

func loadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	return img, nil
}

func wavDecoder(sampleRate int) SoundFunc {
	return func(path string) ([]byte, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading sound: %w", err)
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decoding wav: %w", err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("decoding wav: %w", err)
		}
		return pcm, nil
	}
}
