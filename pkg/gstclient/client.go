// Package gstclient is the entry point a playback engine uses to configure
// the audio and video output stages of its pipeline.
package gstclient

import (
	"context"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/application/usecase"
	"github.com/bnema/gstsink/internal/domain/entity"
)

// Integer results for engines that speak the 0 / -1 contract.
const (
	CodeOK    = 0
	CodeError = -1
)

// Client bundles the sink operations of one playback session.
// Create one Client per pipeline.
type Client struct {
	session *usecase.SinkSession

	linkUC   *usecase.LinkSinkUseCase
	unlinkUC *usecase.UnlinkSinkUseCase
	eosUC    *usecase.PostEndOfStreamUseCase
	capsUC   *usecase.QueryCapabilitiesUseCase
	volumeUC *usecase.SetVolumeUseCase
}

// New creates a Client building elements from factory for profile.
func New(factory port.ElementFactory, profile entity.BackendProfile) *Client {
	session := usecase.NewSinkSession(factory, profile)
	return &Client{
		session:  session,
		linkUC:   usecase.NewLinkSinkUseCase(session),
		unlinkUC: usecase.NewUnlinkSinkUseCase(),
		eosUC:    usecase.NewPostEndOfStreamUseCase(profile.EOSMode),
		capsUC:   usecase.NewQueryCapabilitiesUseCase(profile),
		volumeUC: usecase.NewSetVolumeUseCase(session),
	}
}

// Session exposes the underlying sink session.
func (c *Client) Session() *usecase.SinkSession {
	return c.session
}

// Profile returns the back end profile of the client.
func (c *Client) Profile() entity.BackendProfile {
	return c.session.Profile()
}

// Reset prepares the client for a new pipeline.
func (c *Client) Reset() {
	c.session.Reset()
}

// LinkSink configures the output stage of kind and feeds pad into it.
func (c *Client) LinkSink(ctx context.Context, kind entity.SinkKind, pipeline port.Pipeline, pad port.Pad) error {
	return c.linkUC.Execute(ctx, usecase.LinkSinkInput{
		Kind:      kind,
		Pipeline:  pipeline,
		SourcePad: pad,
	})
}

// UnlinkSink is accepted for every kind and has no effect.
func (c *Client) UnlinkSink(ctx context.Context, kind entity.SinkKind, pipeline port.Pipeline) error {
	return c.unlinkUC.Execute(ctx, usecase.UnlinkSinkInput{Kind: kind, Pipeline: pipeline})
}

// PostEndOfStream signals end-of-stream on the engine's push source.
func (c *Client) PostEndOfStream(ctx context.Context, source port.StreamSource) error {
	return c.eosUC.Execute(ctx, source)
}

// CanReportStalePresentationTimestamps reports a static back end capability.
func (c *Client) CanReportStalePresentationTimestamps() bool {
	return c.capsUC.CanReportStalePTS()
}

// Capabilities returns every static capability of the back end.
func (c *Client) Capabilities() usecase.CapabilitiesOutput {
	return c.capsUC.Execute()
}

// SetVolume applies a volume in [0, 1] and returns the value written to
// the sink after back end scaling.
func (c *Client) SetVolume(ctx context.Context, pipeline port.Pipeline, volume float64) (float64, error) {
	out, err := c.volumeUC.Execute(ctx, usecase.SetVolumeInput{Pipeline: pipeline, Volume: volume})
	if err != nil {
		return 0, err
	}
	return out.Applied, nil
}

// Code maps an operation result to the integer contract.
func Code(err error) int {
	if err != nil {
		return CodeError
	}
	return CodeOK
}
