package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Library holds everything that loaded. A name that failed stays absent for
// the rest of the session.
type Library struct {
	images map[string]*ebiten.Image
	sounds map[string][]byte
	failed map[string]error
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string][]byte),
		failed: make(map[string]error),
	}
}

// Image returns a loaded bitmap.
func (l *Library) Image(name string) (*ebiten.Image, bool) {
	img, ok := l.images[name]
	return img, ok && img != nil
}

// Sound returns decoded 16-bit stereo PCM at the audio context's rate.
func (l *Library) Sound(name string) ([]byte, bool) {
	pcm, ok := l.sounds[name]
	return pcm, ok
}

// Failures counts the assets that did not load.
func (l *Library) Failures() int {
	return len(l.failed)
}
