package entity

// EOSMode selects how end-of-stream is signalled on a push source.
type EOSMode string

const (
	// EOSModeAppSrc calls the appsrc end-of-stream primitive.
	EOSModeAppSrc EOSMode = "appsrc"
	// EOSModeEvent sends an EOS event into the source element.
	EOSModeEvent EOSMode = "event"
)

// Well-known back end names.
const (
	BackendNexus   = "nexus"
	BackendGeneric = "generic"
)

// StageProfile names the elements of one output stage.
type StageProfile struct {
	DecodeFactory string
	DecodeName    string
	SinkFactory   string
	SinkName      string
	// Caps restricts the decode stage output, e.g. "audio/x-raw; audio/x-brcm-native".
	Caps string
}

// DisplayProperties names the video sink properties receiving the display
// geometry. Empty names are skipped.
type DisplayProperties struct {
	WindowSet string
	ZOrder    string
	ZoomMode  string
}

// Empty reports whether the sink takes no display parameters at all.
func (p DisplayProperties) Empty() bool {
	return p.WindowSet == "" && p.ZOrder == "" && p.ZoomMode == ""
}

// BackendProfile is the static description of a hardware output back end.
type BackendProfile struct {
	Name  string
	Audio StageProfile
	Video StageProfile

	Display           DisplayGeometry
	DisplayProperties DisplayProperties

	VolumeScale    float64
	VolumeProperty string

	CanReportStalePTS bool
	EOSMode           EOSMode
}

// Stage returns the stage profile of a supported kind.
func (p BackendProfile) Stage(kind SinkKind) (StageProfile, bool) {
	switch kind {
	case SinkKindAudio:
		return p.Audio, true
	case SinkKindVideo:
		return p.Video, true
	default:
		return StageProfile{}, false
	}
}

// NexusProfile describes the Broadcom Nexus back end: hardware sinks that
// take a percentage volume and accept stale presentation timestamps.
func NexusProfile() BackendProfile {
	return BackendProfile{
		Name: BackendNexus,
		Audio: StageProfile{
			DecodeFactory: "decodebin",
			DecodeName:    "audio_decode",
			SinkFactory:   "brcmaudiosink",
			SinkName:      "audio-sink",
			Caps:          "audio/x-raw; audio/x-brcm-native",
		},
		Video: StageProfile{
			DecodeFactory: "decodebin",
			DecodeName:    "video_decode",
			SinkFactory:   "brcmvideosink",
			SinkName:      "video-sink",
			Caps:          "video/x-raw; video/x-brcm-native",
		},
		Display: DefaultDisplayGeometry(),
		DisplayProperties: DisplayProperties{
			WindowSet: "window_set",
			ZOrder:    "zorder",
			ZoomMode:  "zoom-mode",
		},
		VolumeScale:       100,
		VolumeProperty:    "volume",
		CanReportStalePTS: true,
		EOSMode:           EOSModeAppSrc,
	}
}

// GenericProfile targets a desktop GStreamer install with auto sinks.
func GenericProfile() BackendProfile {
	return BackendProfile{
		Name: BackendGeneric,
		Audio: StageProfile{
			DecodeFactory: "decodebin",
			DecodeName:    "audio_decode",
			SinkFactory:   "autoaudiosink",
			SinkName:      "audio-sink",
			Caps:          "audio/x-raw",
		},
		Video: StageProfile{
			DecodeFactory: "decodebin",
			DecodeName:    "video_decode",
			SinkFactory:   "autovideosink",
			SinkName:      "video-sink",
			Caps:          "video/x-raw",
		},
		Display:           DefaultDisplayGeometry(),
		VolumeScale:       1,
		VolumeProperty:    "volume",
		CanReportStalePTS: false,
		EOSMode:           EOSModeEvent,
	}
}

// ProfileByName returns the built-in profile for a back end name.
func ProfileByName(name string) (BackendProfile, bool) {
	switch name {
	case BackendNexus:
		return NexusProfile(), true
	case BackendGeneric:
		return GenericProfile(), true
	}
	return BackendProfile{}, false
}
