// Package port defines interfaces for external dependencies.
package port

// Pad is a typed connection point on an element.
type Pad interface {
	// MediaType returns the name of the first structure of the pad's
	// negotiated caps, falling back to a caps query when nothing is
	// negotiated yet.
	MediaType() (string, error)

	// Link connects this (source) pad to the given sink pad.
	Link(sink Pad) error
}

// Element is a processing element inside a pipeline.
// Implementations hold non-owning references: the pipeline owns the
// underlying object once the element has been added to it.
type Element interface {
	// StaticPad returns an always-present pad such as "sink" or "src".
	StaticPad(name string) (Pad, error)

	// Link connects this element to dst using any compatible pads.
	Link(dst Element) error

	SetProperty(name string, value any) error

	// SetCaps parses a caps description and stores it in a caps-typed property.
	SetCaps(property, caps string) error

	HasProperty(name string) bool

	// OnPadAdded registers handler for the "pad-added" signal. The
	// handler runs on the element's streaming thread.
	OnPadAdded(handler func(pad Pad)) error

	// SyncStateWithParent brings the element to its parent's state.
	SyncStateWithParent() error
}

// Pipeline is the container graph the core inserts elements into.
// The core never creates or tears down a pipeline.
type Pipeline interface {
	Add(elements ...Element) error
	ElementByName(name string) (Element, error)
}

// ElementFactory instantiates elements by factory name.
type ElementFactory interface {
	// Make creates an element named name from the given factory.
	Make(factory, name string) (Element, error)

	// Available reports whether the factory is registered.
	Available(factory string) bool
}

// StreamSource is a push-based source element that accepts buffers.
type StreamSource interface {
	// EndOfStream uses the source's own end-of-stream primitive.
	EndOfStream() error

	// SendEndOfStreamEvent pushes an EOS event into the element.
	SendEndOfStreamEvent() error
}
