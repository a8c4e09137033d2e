package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

var ErrNoSource = errors.New("no push source element")

// PostEndOfStreamUseCase signals end-of-stream on the engine's push source.
type PostEndOfStreamUseCase struct {
	mode entity.EOSMode
}

func NewPostEndOfStreamUseCase(mode entity.EOSMode) *PostEndOfStreamUseCase {
	return &PostEndOfStreamUseCase{mode: mode}
}

// Execute forwards end-of-stream to source. The source must still be
// accepting buffers.
func (uc *PostEndOfStreamUseCase) Execute(ctx context.Context, source port.StreamSource) error {
	if source == nil {
		return ErrNoSource
	}

	log := logging.FromContext(ctx)

	var err error
	switch uc.mode {
	case entity.EOSModeEvent:
		err = source.SendEndOfStreamEvent()
	default:
		err = source.EndOfStream()
	}
	if err != nil {
		return fmt.Errorf("post end of stream (%s): %w", uc.mode, err)
	}

	log.Debug().Str("mode", string(uc.mode)).Msg("end of stream posted")
	return nil
}
