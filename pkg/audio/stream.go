package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// bytes per stereo frame of 32-bit floats
const frameSize = 8

// StreamReader adapts a beep.Streamer to the little-endian float32 stereo
// byte stream ebiten's audio players read.
type StreamReader struct {
	s   beep.Streamer
	buf [][2]float64
	eof bool
}

// NewStreamReader wraps s.
func NewStreamReader(s beep.Streamer) *StreamReader {
	return &StreamReader{s: s, buf: make([][2]float64, 512)}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	frames := len(p) / frameSize
	if frames == 0 {
		return 0, nil
	}
	if frames > len(r.buf) {
		frames = len(r.buf)
	}
	n, ok := r.s.Stream(r.buf[:frames])
	for i := 0; i < n; i++ {
		l := clip(r.buf[i][0])
		rr := clip(r.buf[i][1])
		binary.LittleEndian.PutUint32(p[i*frameSize:], math.Float32bits(l))
		binary.LittleEndian.PutUint32(p[i*frameSize+4:], math.Float32bits(rr))
	}
	if !ok {
		r.eof = true
		if n == 0 {
			if err := r.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
	}
	return n * frameSize, nil
}

func clip(v float64) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return float32(v)
}
