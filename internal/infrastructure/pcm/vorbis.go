package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

type vorbisStream struct {
	dec      *oggvorbis.Reader
	format   Format
	frameBuf []float32
}

// NewVorbisStream decodes Ogg Vorbis data.
func NewVorbisStream(r io.Reader) (Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return &vorbisStream{
		dec:    dec,
		format: Format{SampleRate: dec.SampleRate(), Channels: dec.Channels()},
	}, nil
}

func (s *vorbisStream) Format() Format { return s.format }

func (s *vorbisStream) Close() error { return nil }

func (s *vorbisStream) Read(p []byte) (int, error) {
	frame := s.format.FrameSize()
	frames := len(p) / frame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	samples := frames * s.format.Channels
	if cap(s.frameBuf) < samples {
		s.frameBuf = make([]float32, samples)
	}
	s.frameBuf = s.frameBuf[:samples]

	// Read fills whole frames of interleaved samples.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	for i, v := range s.frameBuf[:n] {
		binary.LittleEndian.PutUint16(p[i*bytesPerSample:], uint16(clampS16(v)))
	}
	return n * bytesPerSample, nil
}
