package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

type wavStream struct {
	dec      *wav.Decoder
	format   Format
	bitDepth int
	buf      *goaudio.IntBuffer
	pending  []byte
}

// NewWAVStream decodes integer PCM WAV data of any common bit depth to S16LE.
func NewWAVStream(r io.ReadSeeker) (Stream, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: wav audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, dec.BitDepth)
	}

	format := Format{SampleRate: int(dec.SampleRate), Channels: int(dec.NumChans)}
	if format.SampleRate <= 0 || format.Channels <= 0 {
		return nil, ErrNotWavFile
	}

	return &wavStream{
		dec:      dec,
		format:   format,
		bitDepth: int(dec.BitDepth),
		buf: &goaudio.IntBuffer{
			Data:   make([]int, 4096*format.Channels),
			Format: &goaudio.Format{SampleRate: format.SampleRate, NumChannels: format.Channels},
		},
	}, nil
}

func (s *wavStream) Format() Format { return s.format }

func (s *wavStream) Close() error { return nil }

func (s *wavStream) Read(p []byte) (int, error) {
	frame := s.format.FrameSize()
	if len(p) < frame {
		return 0, io.ErrShortBuffer
	}

	for len(s.pending) == 0 {
		n, err := s.dec.PCMBuffer(s.buf)
		if n == 0 {
			if err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		s.pending = s.convert(s.buf.Data[:n])
	}

	n := copy(p[:len(p)-len(p)%frame], s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// convert rescales go-audio integer samples to 16 bits.
func (s *wavStream) convert(samples []int) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, v := range samples {
		var sample int16
		switch s.bitDepth {
		case 8:
			// 8-bit WAV is unsigned
			sample = int16((v - 128) << 8)
		case 24:
			sample = int16(v >> 8)
		case 32:
			sample = int16(v >> 16)
		default:
			sample = int16(v)
		}
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(sample))
	}
	return out
}
