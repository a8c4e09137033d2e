package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

// LinkSinkUseCase routes a newly appeared elementary stream pad to the
// configurator of the requested kind.
type LinkSinkUseCase struct {
	session *SinkSession
}

// NewLinkSinkUseCase creates a new LinkSinkUseCase.
func NewLinkSinkUseCase(session *SinkSession) *LinkSinkUseCase {
	return &LinkSinkUseCase{session: session}
}

// LinkSinkInput is the pad link request of the playback engine.
type LinkSinkInput struct {
	Kind      entity.SinkKind
	Pipeline  port.Pipeline
	SourcePad port.Pad
}

// Execute configures the sink of the requested kind.
// Text and unknown kinds are rejected before any element is created.
func (uc *LinkSinkUseCase) Execute(ctx context.Context, input LinkSinkInput) error {
	switch input.Kind {
	case entity.SinkKindAudio:
		return uc.session.ConfigureAudioSink(ctx, input.Pipeline, input.SourcePad)
	case entity.SinkKindVideo:
		return uc.session.ConfigureVideoSink(ctx, input.Pipeline, input.SourcePad)
	default:
		logging.FromContext(ctx).Warn().Stringer("kind", input.Kind).Msg("sink kind not supported")
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, input.Kind)
	}
}
