package pcm

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always decodes to 16-bit stereo.
const mp3Channels = 2

type mp3Stream struct {
	dec    *gomp3.Decoder
	format Format
}

// NewMP3Stream decodes MPEG-1/2 layer III data.
func NewMP3Stream(r io.Reader) (Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return &mp3Stream{
		dec:    dec,
		format: Format{SampleRate: dec.SampleRate(), Channels: mp3Channels},
	}, nil
}

func (s *mp3Stream) Format() Format { return s.format }

func (s *mp3Stream) Close() error { return nil }

func (s *mp3Stream) Read(p []byte) (int, error) {
	frame := s.format.FrameSize()
	if len(p) < frame {
		return 0, io.ErrShortBuffer
	}
	p = p[:len(p)-len(p)%frame]

	// go-mp3 already produces S16LE but may stop mid-frame.
	n, err := io.ReadAtLeast(s.dec, p, frame)
	if rem := n % frame; rem != 0 && err == nil {
		var m int
		m, err = io.ReadFull(s.dec, p[n:n+frame-rem])
		n += m
	}
	return n, err
}
