package entity

// LinkState tracks the downstream (decode stage to sink) link of one kind
// within a playback session.
//
//	Unconfigured -> AwaitingPad -> Linked
//	                            -> Rejected
//
// The transition out of AwaitingPad happens on the first pad whose media
// type matches the kind. Pads exposed afterwards are not linked.
type LinkState int

const (
	LinkStateUnconfigured LinkState = iota
	LinkStateAwaitingPad
	LinkStateLinked
	LinkStateRejected
)

func (s LinkState) String() string {
	switch s {
	case LinkStateUnconfigured:
		return "unconfigured"
	case LinkStateAwaitingPad:
		return "awaiting-pad"
	case LinkStateLinked:
		return "linked"
	case LinkStateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Configured reports whether a configure attempt already succeeded.
func (s LinkState) Configured() bool {
	return s != LinkStateUnconfigured
}

// Settled reports whether the state machine reached a final state.
func (s LinkState) Settled() bool {
	return s == LinkStateLinked || s == LinkStateRejected
}
