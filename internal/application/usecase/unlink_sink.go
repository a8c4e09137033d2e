package usecase

import (
	"context"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/logging"
)

// UnlinkSinkUseCase is the counterpart of LinkSinkUseCase. It never removes
// elements: removing them apart from pipeline teardown would leave dangling
// pad references, so release is left to the pipeline's destruction.
type UnlinkSinkUseCase struct{}

func NewUnlinkSinkUseCase() *UnlinkSinkUseCase {
	return &UnlinkSinkUseCase{}
}

type UnlinkSinkInput struct {
	Kind     entity.SinkKind
	Pipeline port.Pipeline
}

// Execute always succeeds.
func (uc *UnlinkSinkUseCase) Execute(ctx context.Context, input UnlinkSinkInput) error {
	logging.FromContext(ctx).Debug().
		Stringer("kind", input.Kind).
		Msg("unlink requested, elements are released with the pipeline")
	return nil
}
