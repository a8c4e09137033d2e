package gstreamer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gst/go-gst/gst"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/infrastructure/pcm"
	"github.com/bnema/gstsink/internal/logging"
)

const (
	busPollInterval = 100 * time.Millisecond
	pcmSourceName   = "pcm-source"
)

var ErrPipeline = errors.New("pipeline error")

// StreamHandler receives every elementary stream pad exposed by the demuxer,
// together with the pipeline the pad belongs to. It runs on a streaming thread.
type StreamHandler func(pipeline port.Pipeline, kind entity.SinkKind, pad port.Pad)

// Playback is a harness pipeline acting as the playback engine: it builds
// the source part of the graph and runs the bus loop. Output stages are
// added by the sink session.
type Playback struct {
	pipeline *gst.Pipeline
	adapter  *Pipeline
	source   *StreamSource
}

// NewFilePlayback builds filesrc ! parsebin and hands every parsed stream
// to onStream together with its kind.
func NewFilePlayback(ctx context.Context, path string, onStream StreamHandler) (*Playback, error) {
	log := logging.FromContext(ctx)

	pipeline, err := gst.NewPipeline("gstsink-file")
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	src, err := gst.NewElementWithName("filesrc", "file-source")
	if err != nil {
		return nil, fmt.Errorf("create filesrc: %w", err)
	}
	if err := src.SetProperty("location", path); err != nil {
		return nil, fmt.Errorf("set location: %w", err)
	}
	demux, err := gst.NewElementWithName("parsebin", "demux")
	if err != nil {
		return nil, fmt.Errorf("create parsebin: %w", err)
	}

	if err := pipeline.AddMany(src, demux); err != nil {
		return nil, fmt.Errorf("add source elements: %w", err)
	}
	if err := src.Link(demux); err != nil {
		return nil, fmt.Errorf("link filesrc to parsebin: %w", err)
	}

	adapter := WrapPipeline(pipeline)
	if _, err := demux.Connect("pad-added", func(_ *gst.Element, pad *gst.Pad) {
		wrapped := WrapPad(pad)
		name, err := wrapped.MediaType()
		if err != nil {
			log.Warn().Err(err).Str("pad", pad.GetName()).Msg("demuxed pad without caps")
			return
		}
		kind, ok := entity.MediaType(name).Kind()
		if !ok {
			log.Debug().Str("media_type", name).Msg("ignoring demuxed stream")
			return
		}
		log.Debug().Str("media_type", name).Stringer("kind", kind).Msg("elementary stream found")
		onStream(adapter, kind, wrapped)
	}); err != nil {
		return nil, fmt.Errorf("connect pad-added: %w", err)
	}

	return &Playback{pipeline: pipeline, adapter: adapter}, nil
}

// NewPCMPlayback builds an appsrc producing raw audio of the given format.
// Its source pad is exposed through SourcePad for the audio sink stage.
func NewPCMPlayback(format pcm.Format) (*Playback, error) {
	launch := fmt.Sprintf("appsrc name=%s format=time block=true is-live=false caps=\"%s\"", pcmSourceName, format.Caps())

	pipeline, err := gst.NewPipelineFromString(launch)
	if err != nil {
		return nil, fmt.Errorf("create pcm pipeline: %w", err)
	}
	src, err := pipeline.GetElementByName(pcmSourceName)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", pcmSourceName, err)
	}

	return &Playback{
		pipeline: pipeline,
		adapter:  WrapPipeline(pipeline),
		source:   WrapStreamSource(src),
	}, nil
}

// Pipeline is the port view of the harness pipeline.
func (p *Playback) Pipeline() port.Pipeline {
	return p.adapter
}

// Source is the push source of a PCM playback, nil for file playback.
func (p *Playback) Source() *StreamSource {
	return p.source
}

// SourcePad is the src pad of the push source.
func (p *Playback) SourcePad() (port.Pad, error) {
	if p.source == nil {
		return nil, errors.New("playback has no push source")
	}
	return WrapElement(p.source.elem).StaticPad("src")
}

// Run plays the pipeline until end-of-stream, an error message or ctx
// cancellation, then shuts it down.
func (p *Playback) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := p.pipeline.SetState(gst.StatePlaying); err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	defer func() {
		if err := p.pipeline.SetState(gst.StateNull); err != nil {
			log.Warn().Err(err).Msg("failed to stop pipeline")
		}
	}()

	bus := p.pipeline.GetPipelineBus()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg := bus.TimedPop(gst.ClockTime(busPollInterval))
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageEOS:
			log.Info().Msg("end of stream")
			return nil
		case gst.MessageError:
			gerr := msg.ParseError()
			log.Error().Str("debug", gerr.DebugString()).Str("source", msg.Source()).Msg(gerr.Error())
			return fmt.Errorf("%w: %s: %s", ErrPipeline, msg.Source(), gerr.Error())
		case gst.MessageWarning:
			gwarn := msg.ParseWarning()
			log.Warn().Str("debug", gwarn.DebugString()).Str("source", msg.Source()).Msg(gwarn.Error())
		case gst.MessageStateChanged:
			if msg.Source() == p.pipeline.GetName() {
				oldState, newState := msg.ParseStateChanged()
				log.Debug().
					Str("from", oldState.String()).
					Str("to", newState.String()).
					Msg("pipeline state changed")
			}
		}
	}
}
