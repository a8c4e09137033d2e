// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

var (
	ErrElementCreation   = errors.New("element creation failed")
	ErrLink              = errors.New("link failed")
	ErrUnsupportedKind   = errors.New("unsupported sink kind")
	ErrAlreadyConfigured = errors.New("sink already configured in this session")
	ErrInvalidRequest    = errors.New("invalid sink request")
)

// decodeSinkPad is the always-present input pad of a decode stage.
const decodeSinkPad = "sink"

// sinkStage is the output chain of one kind. Element references are
// non-owning: once added, the pipeline owns and releases them.
type sinkStage struct {
	kind   entity.SinkKind
	decode port.Element
	sink   port.Element
	state  entity.LinkState
	// claimed is set by the first matching pad, before the link is attempted.
	claimed bool
}

// presentFunc prepares a sink right before it is linked to its decode stage.
type presentFunc func(sink port.Element) error

// SinkSession holds the decode and sink elements of one playback session.
//
// Each kind gets exactly one configure attempt per session. The session
// must not be shared by two pipelines at once; create one per pipeline.
type SinkSession struct {
	info    entity.Session
	factory port.ElementFactory
	profile entity.BackendProfile

	mu     sync.Mutex
	stages map[entity.SinkKind]*sinkStage
}

// NewSinkSession creates an empty session building elements from factory
// according to profile.
func NewSinkSession(factory port.ElementFactory, profile entity.BackendProfile) *SinkSession {
	return &SinkSession{
		info:    newSessionInfo(profile),
		factory: factory,
		profile: profile,
		stages:  make(map[entity.SinkKind]*sinkStage),
	}
}

func newSessionInfo(profile entity.BackendProfile) entity.Session {
	return entity.Session{ID: entity.NewSessionID(), Backend: profile.Name, StartedAt: time.Now().UTC()}
}

// ID returns the session identifier used in logs.
func (s *SinkSession) ID() entity.SessionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info.ID
}

// Info returns a copy of the session metadata.
func (s *SinkSession) Info() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// End marks the session as finished. Ending twice keeps the first time.
func (s *SinkSession) End() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info.IsActive() {
		s.info.End(time.Now())
	}
	return s.info
}

// Profile returns the back end profile the session builds elements for.
func (s *SinkSession) Profile() entity.BackendProfile {
	return s.profile
}

// State returns the link state of a kind.
func (s *SinkSession) State(kind entity.SinkKind) entity.LinkState {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage, ok := s.stages[kind]
	if !ok {
		return entity.LinkStateUnconfigured
	}
	return stage.state
}

// Sink returns the sink element of a configured kind, or nil.
func (s *SinkSession) Sink(kind entity.SinkKind) port.Element {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stage, ok := s.stages[kind]; ok {
		return stage.sink
	}
	return nil
}

// Reset forgets every stage so the session can serve a new pipeline, and
// starts a new session identity. Elements are not released: they belong
// to the previous pipeline.
func (s *SinkSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stages = make(map[entity.SinkKind]*sinkStage)
	s.info = newSessionInfo(s.profile)
}

// ConfigureAudioSink builds the audio decode stage and sink, inserts them
// into pipeline and feeds srcPad into the decode stage. The decode stage
// is linked to the sink later, once it exposes an audio pad.
func (s *SinkSession) ConfigureAudioSink(ctx context.Context, pipeline port.Pipeline, srcPad port.Pad) error {
	return s.configure(ctx, entity.SinkKindAudio, pipeline, srcPad, nil)
}

// ConfigureVideoSink is ConfigureAudioSink for video. The display geometry
// of the profile is applied to the sink when the downstream link is made.
func (s *SinkSession) ConfigureVideoSink(ctx context.Context, pipeline port.Pipeline, srcPad port.Pad) error {
	return s.configure(ctx, entity.SinkKindVideo, pipeline, srcPad, s.applyDisplay)
}

func (s *SinkSession) configure(
	ctx context.Context,
	kind entity.SinkKind,
	pipeline port.Pipeline,
	srcPad port.Pad,
	present presentFunc,
) error {
	if pipeline == nil || srcPad == nil {
		return fmt.Errorf("%w: pipeline and source pad are required", ErrInvalidRequest)
	}
	prof, ok := s.profile.Stage(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	ctx = logging.WithKind(logging.WithSessionID(ctx, s.ID().ShortID()), kind.String())
	log := logging.FromContext(ctx)
	log.Debug().Str("decode", prof.DecodeFactory).Str("sink", prof.SinkFactory).Msg("configuring sink")

	stage := &sinkStage{kind: kind}
	if err := s.reserve(stage); err != nil {
		return err
	}

	decode, err := s.factory.Make(prof.DecodeFactory, prof.DecodeName)
	if err != nil {
		return fmt.Errorf("%w: %s decode stage %q: %w", ErrElementCreation, kind, prof.DecodeFactory, err)
	}

	if prof.Caps != "" {
		if err := decode.SetCaps("caps", prof.Caps); err != nil {
			return fmt.Errorf("set %s decode caps: %w", kind, err)
		}
	}
	if err := decode.OnPadAdded(s.typeDetection(ctx, stage, present)); err != nil {
		return fmt.Errorf("register %s pad handler: %w", kind, err)
	}

	sink, err := s.factory.Make(prof.SinkFactory, prof.SinkName)
	if err != nil {
		return fmt.Errorf("%w: %s sink %q: %w", ErrElementCreation, kind, prof.SinkFactory, err)
	}

	if err := pipeline.Add(decode, sink); err != nil {
		return fmt.Errorf("add %s elements to pipeline: %w", kind, err)
	}

	// Published before the source link: pads can only appear once data flows.
	s.mu.Lock()
	stage.decode = decode
	stage.sink = sink
	stage.state = entity.LinkStateAwaitingPad
	s.mu.Unlock()

	if err := s.linkSource(srcPad, decode); err != nil {
		s.mu.Lock()
		stage.decode = nil
		stage.sink = nil
		stage.state = entity.LinkStateUnconfigured
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", kind, err)
	}

	for _, elem := range []port.Element{decode, sink} {
		if err := elem.SyncStateWithParent(); err != nil {
			log.Warn().Err(err).Msg("element did not follow pipeline state")
		}
	}

	log.Info().Msg("sink configured, awaiting decoded pad")
	return nil
}

// reserve claims the single configure attempt of a kind.
func (s *SinkSession) reserve(stage *sinkStage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.stages[stage.kind]; taken {
		return fmt.Errorf("%w: %s", ErrAlreadyConfigured, stage.kind)
	}
	s.stages[stage.kind] = stage
	return nil
}

func (s *SinkSession) linkSource(srcPad port.Pad, decode port.Element) error {
	sinkPad, err := decode.StaticPad(decodeSinkPad)
	if err != nil {
		return fmt.Errorf("%w: decode stage has no %q pad: %w", ErrLink, decodeSinkPad, err)
	}
	if err := srcPad.Link(sinkPad); err != nil {
		return fmt.Errorf("%w: source pad to decode stage: %w", ErrLink, err)
	}
	return nil
}

// typeDetection returns the pad-added handler of a decode stage. It runs on
// the decode stage's streaming thread and must not block.
func (s *SinkSession) typeDetection(ctx context.Context, stage *sinkStage, present presentFunc) func(port.Pad) {
	return func(pad port.Pad) {
		log := logging.FromContext(ctx)

		name, err := pad.MediaType()
		if err != nil {
			log.Warn().Err(err).Msg("decoded pad has no caps")
			return
		}
		media := entity.MediaType(name)
		if !media.Matches(stage.kind) {
			log.Debug().Str("media_type", name).Msg("ignoring decoded pad of another kind")
			return
		}

		s.mu.Lock()
		if stage.state != entity.LinkStateAwaitingPad || stage.claimed {
			state := stage.state
			s.mu.Unlock()
			// TODO: link additional matching pads once the back ends support
			// more than one stream per kind.
			log.Warn().Str("media_type", name).Stringer("state", state).Msg("extra decoded pad not linked")
			return
		}
		stage.claimed = true
		decode, sink := stage.decode, stage.sink
		s.mu.Unlock()

		if present != nil {
			if err := present(sink); err != nil {
				log.Warn().Err(err).Msg("display parameters not fully applied")
			}
		}

		next := entity.LinkStateLinked
		linkErr := decode.Link(sink)
		if linkErr != nil {
			next = entity.LinkStateRejected
		}

		s.mu.Lock()
		stage.state = next
		s.mu.Unlock()

		if linkErr != nil {
			log.Error().Err(linkErr).Str("media_type", name).Msg("could not link decode stage to sink")
			return
		}
		log.Info().Str("media_type", name).Msg("decode stage linked to sink")
	}
}

// applyDisplay writes the output rectangle, z-order and zoom mode to a
// video sink. Properties the profile leaves unnamed are skipped.
func (s *SinkSession) applyDisplay(sink port.Element) error {
	props := s.profile.DisplayProperties
	geometry := s.profile.Display

	var errs []error
	if props.WindowSet != "" {
		if err := sink.SetProperty(props.WindowSet, geometry.WindowSet()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", props.WindowSet, err))
		}
	}
	if props.ZOrder != "" {
		if err := sink.SetProperty(props.ZOrder, geometry.ZOrder); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", props.ZOrder, err))
		}
	}
	if props.ZoomMode != "" {
		if err := sink.SetProperty(props.ZoomMode, int(geometry.ZoomMode)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", props.ZoomMode, err))
		}
	}
	return errors.Join(errs...)
}
