package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/cli/styles"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/infrastructure/config"
	"github.com/bnema/gstsink/internal/infrastructure/gstreamer"
	"github.com/bnema/gstsink/internal/infrastructure/pcm"
	"github.com/bnema/gstsink/internal/logging"
	"github.com/bnema/gstsink/pkg/gstclient"
)

var (
	playPCM    bool
	playVolume float64
	playWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a media file through the configured sinks",
	Long: `Play a media file through the audio and video sinks of the configured
back end.

By default the file is parsed by GStreamer (filesrc ! parsebin) and every
audio or video stream found is handed to the sink wiring. With --pcm the
file is decoded in-process (WAV, MP3, Ogg Vorbis) and pushed as raw audio
through appsrc, ending with an explicit end-of-stream.

While playing, edits to volume.initial in config.toml are applied live
unless --watch=false is given.

Examples:
  gstsink play movie.mkv
  gstsink play --pcm --volume 0.3 tone.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playPCM, "pcm", false, "Decode audio in-process and push it through appsrc")
	playCmd.Flags().Float64Var(&playVolume, "volume", 1.0, "Initial volume in [0, 1] (default from config)")
	playCmd.Flags().BoolVar(&playWatch, "watch", true, "Apply volume changes from the config file while playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	volume := app.Config.Volume.Initial
	if cmd.Flags().Changed("volume") {
		volume = playVolume
	}

	client, err := app.NewClient()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, unix.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(logging.WithSessionID(ctx, client.Session().ID().ShortID()), "play")

	renderer := styles.NewPlaybackRenderer(app.Theme)
	mode := "parsebin"
	if playPCM {
		mode = "pcm"
	}
	fmt.Println(renderer.RenderStart(path, mode))

	p := &player{client: client, volume: volume}
	started := time.Now()
	var stats pcm.PumpStats
	if playPCM {
		stats, err = p.playPCM(ctx, path, app.Manager)
	} else {
		err = p.playContainer(ctx, path, app.Manager)
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	info := client.Session().End()
	logging.FromContext(ctx).Info().
		Str("backend", info.Backend).
		Time("started_at", info.StartedAt).
		Dur("elapsed", info.EndedAt.Sub(info.StartedAt)).
		Msg("playback session ended")

	fmt.Println(renderer.RenderSummary(styles.PlaybackSummary{
		Path:     path,
		Mode:     mode,
		Elapsed:  time.Since(started),
		Chunks:   stats.Chunks,
		Bytes:    stats.Bytes,
		Duration: stats.Duration,
		Err:      err,
	}))
	return err
}

// player drives one playback through the sink client.
type player struct {
	client *gstclient.Client
	volume float64
}

// playContainer routes every parsed stream through LinkSink and waits for
// the end of the stream.
func (p *player) playContainer(ctx context.Context, path string, mgr *config.Manager) error {
	log := logging.FromContext(ctx)

	pb, err := gstreamer.NewFilePlayback(ctx, path, func(pipeline port.Pipeline, kind entity.SinkKind, pad port.Pad) {
		if err := p.client.LinkSink(ctx, kind, pipeline, pad); err != nil {
			log.Warn().Err(err).Stringer("kind", kind).Msg("stream not routed to a sink")
			return
		}
		if kind == entity.SinkKindAudio {
			p.applyVolume(ctx, pipeline, p.volume)
		}
	})
	if err != nil {
		return err
	}

	p.watchVolume(ctx, pb.Pipeline(), mgr)
	defer p.unlink(ctx, pb.Pipeline())

	return pb.Run(ctx)
}

// playPCM decodes path in-process and feeds it to the audio sink through
// appsrc, running the bus loop and the feeder side by side.
func (p *player) playPCM(ctx context.Context, path string, mgr *config.Manager) (pcm.PumpStats, error) {
	log := logging.FromContext(ctx)

	stream, err := pcm.Open(path)
	if err != nil {
		return pcm.PumpStats{}, err
	}
	defer stream.Close()

	format := stream.Format()
	log.Debug().Int("rate", format.SampleRate).Int("channels", format.Channels).Msg("decoding pcm")

	pb, err := gstreamer.NewPCMPlayback(format)
	if err != nil {
		return pcm.PumpStats{}, err
	}
	pad, err := pb.SourcePad()
	if err != nil {
		return pcm.PumpStats{}, err
	}
	if err := p.client.LinkSink(ctx, entity.SinkKindAudio, pb.Pipeline(), pad); err != nil {
		return pcm.PumpStats{}, err
	}
	p.applyVolume(ctx, pb.Pipeline(), p.volume)
	p.watchVolume(ctx, pb.Pipeline(), mgr)
	defer p.unlink(ctx, pb.Pipeline())

	var stats pcm.PumpStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pb.Run(gctx)
	})
	g.Go(func() error {
		var pumpErr error
		stats, pumpErr = pcm.Pump(gctx, stream, pb.Source(), pcm.DefaultChunkDuration)
		if pumpErr != nil {
			return pumpErr
		}
		log.Debug().Int("chunks", stats.Chunks).Dur("duration", stats.Duration).Msg("pcm fully pushed")
		return p.client.PostEndOfStream(gctx, pb.Source())
	})

	err = g.Wait()
	return stats, err
}

func (p *player) applyVolume(ctx context.Context, pipeline port.Pipeline, volume float64) {
	log := logging.FromContext(ctx)

	applied, err := p.client.SetVolume(ctx, pipeline, volume)
	if err != nil {
		log.Warn().Err(err).Float64("volume", volume).Msg("volume not applied")
		return
	}
	log.Info().Float64("volume", volume).Float64("applied", applied).Msg("volume set")
}

// watchVolume re-applies volume.initial whenever the config file changes.
func (p *player) watchVolume(ctx context.Context, pipeline port.Pipeline, mgr *config.Manager) {
	if !playWatch || mgr == nil {
		return
	}
	log := logging.FromContext(ctx)

	mgr.OnConfigChange(func(cfg *config.Config) {
		if ctx.Err() != nil {
			return
		}
		log.Debug().Float64("volume", cfg.Volume.Initial).Msg("config changed")
		p.applyVolume(ctx, pipeline, cfg.Volume.Initial)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}

func (p *player) unlink(ctx context.Context, pipeline port.Pipeline) {
	for _, kind := range []entity.SinkKind{entity.SinkKindAudio, entity.SinkKindVideo} {
		if p.client.Session().State(kind) == entity.LinkStateUnconfigured {
			continue
		}
		_ = p.client.UnlinkSink(ctx, kind, pipeline)
	}
}
