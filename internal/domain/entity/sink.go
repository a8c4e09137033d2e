// Package entity defines domain entities for sink configuration.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// SinkKind identifies the media kind an output stage is built for.
type SinkKind int

const (
	SinkKindAudio SinkKind = iota
	SinkKindVideo
	// SinkKindText is recognised but no back end supports it.
	SinkKindText
)

var ErrUnknownSinkKind = errors.New("unknown sink kind")

func (k SinkKind) String() string {
	switch k {
	case SinkKindAudio:
		return "audio"
	case SinkKindVideo:
		return "video"
	case SinkKindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Supported reports whether sinks of this kind can be configured.
func (k SinkKind) Supported() bool {
	return k == SinkKindAudio || k == SinkKindVideo
}

// ParseSinkKind parses "audio", "video" or "text" (case-insensitive).
func ParseSinkKind(s string) (SinkKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "audio":
		return SinkKindAudio, nil
	case "video":
		return SinkKindVideo, nil
	case "text", "subtitle":
		return SinkKindText, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSinkKind, s)
}

// MediaType is the name of the first structure of a pad's negotiated caps,
// e.g. "audio/x-raw" or "video/x-h264".
type MediaType string

// Decoded type prefixes accepted by the type detection of each kind.
const (
	audioTypePrefix = "audio/x-"
	videoTypePrefix = "video/x-"
)

// Matches reports whether the media type belongs to the given sink kind.
// Only "audio/x-*" and "video/x-*" names match; text never matches.
func (m MediaType) Matches(kind SinkKind) bool {
	switch kind {
	case SinkKindAudio:
		return strings.HasPrefix(string(m), audioTypePrefix)
	case SinkKindVideo:
		return strings.HasPrefix(string(m), videoTypePrefix)
	default:
		return false
	}
}

// Kind classifies an elementary stream by the top-level part of its
// media type. Engines use it to pick the kind to request for a new pad.
func (m MediaType) Kind() (SinkKind, bool) {
	top, _, ok := strings.Cut(string(m), "/")
	if !ok {
		return 0, false
	}
	switch top {
	case "audio":
		return SinkKindAudio, true
	case "video", "image":
		return SinkKindVideo, true
	case "text", "subpicture":
		return SinkKindText, true
	case "application":
		if strings.HasPrefix(string(m), "application/x-subtitle") {
			return SinkKindText, true
		}
	}
	return 0, false
}
