package pcm_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstsink/internal/infrastructure/pcm"
)

func writeWAV16(t *testing.T, path string, rate, channels int, samples []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
}

func TestFormat(t *testing.T) {
	f := pcm.Format{SampleRate: 48000, Channels: 2}

	assert.Equal(t, "audio/x-raw,format=S16LE,layout=interleaved,rate=48000,channels=2", f.Caps())
	assert.Equal(t, 192000, f.BytesPerSecond())
	assert.Equal(t, 4, f.FrameSize())
}

func TestOpen_WAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := []int{0, 1000, -1000, 32767, -32768, 12, -12, 5}
	writeWAV16(t, path, 8000, 2, samples)

	s, err := pcm.Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, pcm.Format{SampleRate: 8000, Channels: 2}, s.Format())

	got, err := io.ReadAll(s)
	require.NoError(t, err)

	want := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(want[i*2:], uint16(int16(v)))
	}
	assert.Equal(t, want, got)
}

func TestNewWAVStream_RejectsGarbage(t *testing.T) {
	_, err := pcm.NewWAVStream(bytes.NewReader([]byte("definitely not a riff header, just text")))
	require.ErrorIs(t, err, pcm.ErrNotWavFile)
}

func TestOpen_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.flac")
	require.NoError(t, os.WriteFile(path, []byte("fLaC"), 0o644))

	_, err := pcm.Open(path)
	require.ErrorIs(t, err, pcm.ErrUnsupportedFormat)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := pcm.Open(filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
