// Package pcm decodes audio files to interleaved S16LE PCM for push sources.
package pcm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNotWavFile        = errors.New("not a valid WAV file")
	ErrUnsupportedDepth  = errors.New("only 8, 16, 24 and 32 bit PCM is supported")
)

const bytesPerSample = 2

// Format describes an interleaved signed 16-bit little-endian stream.
type Format struct {
	SampleRate int
	Channels   int
}

// Caps returns the GStreamer caps of the raw stream.
func (f Format) Caps() string {
	return fmt.Sprintf("audio/x-raw,format=S16LE,layout=interleaved,rate=%d,channels=%d", f.SampleRate, f.Channels)
}

// BytesPerSecond is the byte rate of the stream.
func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.Channels * bytesPerSample
}

// FrameSize is the byte size of one sample across all channels.
func (f Format) FrameSize() int {
	return f.Channels * bytesPerSample
}

// Stream produces S16LE bytes. Read returns whole frames only.
type Stream interface {
	io.ReadCloser
	Format() Format
}

// Open decodes path according to its extension (.wav, .mp3, .ogg/.oga).
func Open(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var s Stream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		s, err = NewWAVStream(f)
	case ".mp3":
		s, err = NewMP3Stream(f)
	case ".ogg", ".oga":
		s, err = NewVorbisStream(f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileStream{Stream: s, file: f}, nil
}

// fileStream closes the underlying file along with the decoder.
type fileStream struct {
	Stream
	file *os.File
}

func (s *fileStream) Close() error {
	return errors.Join(s.Stream.Close(), s.file.Close())
}

// clampS16 converts a normalized float sample to int16.
func clampS16(v float32) int16 {
	switch {
	case v >= 1:
		return 32767
	case v <= -1:
		return -32768
	}
	return int16(v * 32767)
}
