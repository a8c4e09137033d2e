package gstreamer

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-gst/go-gst/gst"
	"github.com/go-gst/go-gst/gst/app"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/infrastructure/pcm"
)

var ErrFlow = errors.New("unexpected flow return")

// StreamSource adapts a push source element (appsrc) to port.StreamSource.
type StreamSource struct {
	elem *gst.Element
}

// WrapStreamSource adapts an appsrc element.
func WrapStreamSource(elem *gst.Element) *StreamSource {
	return &StreamSource{elem: elem}
}

// EndOfStream uses gst_app_src_end_of_stream.
func (s *StreamSource) EndOfStream() error {
	return flowError(app.SrcFromElement(s.elem).EndStream())
}

// SendEndOfStreamEvent posts an EOS event into the element.
func (s *StreamSource) SendEndOfStreamEvent() error {
	if !s.elem.SendEvent(gst.NewEOSEvent()) {
		return fmt.Errorf("%s rejected the EOS event", s.elem.GetName())
	}
	return nil
}

// WriteChunk pushes one timestamped PCM chunk.
func (s *StreamSource) WriteChunk(_ context.Context, chunk pcm.Chunk) error {
	buf := gst.NewBufferFromBytes(chunk.Data)
	buf.SetPresentationTimestamp(gst.ClockTime(chunk.PTS))
	buf.SetDuration(gst.ClockTime(chunk.Duration))
	return flowError(app.SrcFromElement(s.elem).PushBuffer(buf))
}

func flowError(ret gst.FlowReturn) error {
	if ret == gst.FlowOK {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrFlow, ret)
}

var (
	_ port.StreamSource = (*StreamSource)(nil)
	_ pcm.ChunkWriter   = (*StreamSource)(nil)
)
