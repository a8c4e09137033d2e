package pcm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/gstsink/internal/logging"
)

//go:generate mockgen -source=pump.go -destination=mocks/mock_chunk_writer.go -package=mocks

// DefaultChunkDuration is the amount of audio carried by one chunk.
const DefaultChunkDuration = 20 * time.Millisecond

// Chunk is a timestamped slice of S16LE audio.
type Chunk struct {
	Data     []byte
	PTS      time.Duration
	Duration time.Duration
}

// ChunkWriter receives decoded chunks, typically an appsrc.
type ChunkWriter interface {
	WriteChunk(ctx context.Context, chunk Chunk) error
}

// PumpStats summarizes a finished pump.
type PumpStats struct {
	Chunks   int
	Bytes    int64
	Duration time.Duration
}

// Pump reads s until EOF and forwards it to w in chunks of chunkDuration.
// It stops early when ctx is cancelled or w fails. The caller signals
// end-of-stream once Pump returns.
func Pump(ctx context.Context, s Stream, w ChunkWriter, chunkDuration time.Duration) (PumpStats, error) {
	var stats PumpStats

	format := s.Format()
	if format.SampleRate <= 0 || format.Channels <= 0 {
		return stats, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedFormat, format.SampleRate, format.Channels)
	}
	if chunkDuration <= 0 {
		chunkDuration = DefaultChunkDuration
	}

	frames := int(int64(format.SampleRate) * int64(chunkDuration) / int64(time.Second))
	size := max(frames, 1) * format.FrameSize()

	log := logging.FromContext(ctx)
	log.Debug().
		Int("rate", format.SampleRate).
		Int("channels", format.Channels).
		Int("chunk_bytes", size).
		Msg("pumping pcm")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		buf := make([]byte, size)
		n, err := io.ReadFull(s, buf)
		if n > 0 {
			n -= n % format.FrameSize()
			chunk := Chunk{
				Data:     buf[:n],
				PTS:      stats.Duration,
				Duration: bytesToDuration(n, format),
			}
			if werr := w.WriteChunk(ctx, chunk); werr != nil {
				return stats, fmt.Errorf("write chunk at %s: %w", chunk.PTS, werr)
			}
			stats.Chunks++
			stats.Bytes += int64(n)
			stats.Duration += chunk.Duration
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			log.Debug().Int("chunks", stats.Chunks).Dur("duration", stats.Duration).Msg("pcm stream drained")
			return stats, nil
		default:
			return stats, fmt.Errorf("decode: %w", err)
		}
	}
}

func bytesToDuration(n int, format Format) time.Duration {
	return time.Duration(int64(n) * int64(time.Second) / int64(format.BytesPerSecond()))
}
