// Package gstreamer implements the pipeline ports on top of go-gst.
package gstreamer

import (
	"errors"
	"fmt"

	"github.com/go-gst/go-glib/glib"
	"github.com/go-gst/go-gst/gst"

	"github.com/bnema/gstsink/internal/application/port"
)

var (
	ErrNoCaps         = errors.New("pad has no caps")
	ErrForeignElement = errors.New("element does not belong to the gstreamer adapter")
)

// Element adapts *gst.Element to port.Element.
type Element struct {
	elem *gst.Element
}

// WrapElement adapts an existing element.
func WrapElement(elem *gst.Element) *Element {
	return &Element{elem: elem}
}

// Unwrap returns the underlying element.
func (e *Element) Unwrap() *gst.Element {
	return e.elem
}

func (e *Element) StaticPad(name string) (port.Pad, error) {
	pad := e.elem.GetStaticPad(name)
	if pad == nil {
		return nil, fmt.Errorf("%s has no static pad %q", e.elem.GetName(), name)
	}
	return &Pad{pad: pad}, nil
}

func (e *Element) Link(dst port.Element) error {
	other, err := unwrapElement(dst)
	if err != nil {
		return err
	}
	return e.elem.Link(other)
}

// SetProperty converts Go numbers to the declared GType of the property
// before setting it. Vendor sinks disagree on int, float and double volumes.
func (e *Element) SetProperty(name string, value any) error {
	typ, err := e.elem.GetPropertyType(name)
	if err != nil {
		return fmt.Errorf("%s has no property %q: %w", e.elem.GetName(), name, err)
	}
	return e.elem.SetProperty(name, coerceProperty(typ, value))
}

func coerceProperty(typ glib.Type, value any) any {
	f, ok := value.(float64)
	if !ok {
		return value
	}
	switch typ {
	case glib.TYPE_FLOAT:
		return float32(f)
	case glib.TYPE_INT:
		return int(f)
	case glib.TYPE_UINT:
		return uint(f)
	case glib.TYPE_INT64:
		return int64(f)
	default:
		return value
	}
}

func (e *Element) SetCaps(property, caps string) error {
	parsed := gst.NewCapsFromString(caps)
	if parsed == nil {
		return fmt.Errorf("invalid caps %q", caps)
	}
	return e.elem.SetProperty(property, parsed)
}

func (e *Element) HasProperty(name string) bool {
	typ, err := e.elem.GetPropertyType(name)
	return err == nil && typ != glib.TYPE_INVALID
}

func (e *Element) OnPadAdded(handler func(pad port.Pad)) error {
	_, err := e.elem.Connect("pad-added", func(_ *gst.Element, pad *gst.Pad) {
		handler(&Pad{pad: pad})
	})
	return err
}

func (e *Element) SyncStateWithParent() error {
	if !e.elem.SyncStateWithParent() {
		return fmt.Errorf("%s could not sync state with parent", e.elem.GetName())
	}
	return nil
}

func unwrapElement(elem port.Element) (*gst.Element, error) {
	wrapped, ok := elem.(*Element)
	if !ok || wrapped == nil {
		return nil, fmt.Errorf("%w: %T", ErrForeignElement, elem)
	}
	return wrapped.elem, nil
}

// Pad adapts *gst.Pad to port.Pad.
type Pad struct {
	pad *gst.Pad
}

// WrapPad adapts an existing pad.
func WrapPad(pad *gst.Pad) *Pad {
	return &Pad{pad: pad}
}

// MediaType reads the negotiated caps, or the queried caps when the pad
// has not negotiated yet.
func (p *Pad) MediaType() (string, error) {
	caps := p.pad.GetCurrentCaps()
	if caps == nil {
		caps = p.pad.QueryCaps(nil)
	}
	if caps == nil || caps.GetSize() == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoCaps, p.pad.GetName())
	}

	structure := caps.GetStructureAt(0)
	if structure == nil {
		return "", fmt.Errorf("%w: %s", ErrNoCaps, p.pad.GetName())
	}
	return structure.Name(), nil
}

func (p *Pad) Link(sink port.Pad) error {
	other, ok := sink.(*Pad)
	if !ok || other == nil {
		return fmt.Errorf("%w: %T", ErrForeignElement, sink)
	}
	if ret := p.pad.Link(other.pad); ret != gst.PadLinkOK {
		return fmt.Errorf("link %s to %s: %v", p.pad.GetName(), other.pad.GetName(), ret)
	}
	return nil
}

// Pipeline adapts *gst.Pipeline to port.Pipeline.
type Pipeline struct {
	pipeline *gst.Pipeline
}

// WrapPipeline adapts an existing pipeline.
func WrapPipeline(pipeline *gst.Pipeline) *Pipeline {
	return &Pipeline{pipeline: pipeline}
}

func (p *Pipeline) Add(elements ...port.Element) error {
	elems := make([]*gst.Element, 0, len(elements))
	for _, e := range elements {
		elem, err := unwrapElement(e)
		if err != nil {
			return err
		}
		elems = append(elems, elem)
	}
	return p.pipeline.AddMany(elems...)
}

func (p *Pipeline) ElementByName(name string) (port.Element, error) {
	elem, err := p.pipeline.GetElementByName(name)
	if err != nil {
		return nil, err
	}
	return &Element{elem: elem}, nil
}

// ElementFactory creates elements through the GStreamer registry.
type ElementFactory struct{}

func NewElementFactory() *ElementFactory {
	return &ElementFactory{}
}

func (*ElementFactory) Make(factory, name string) (port.Element, error) {
	elem, err := gst.NewElementWithName(factory, name)
	if err != nil {
		return nil, fmt.Errorf("make %s: %w", factory, err)
	}
	return &Element{elem: elem}, nil
}

func (*ElementFactory) Available(factory string) bool {
	return gst.Find(factory) != nil
}

var (
	_ port.Element        = (*Element)(nil)
	_ port.Pad            = (*Pad)(nil)
	_ port.Pipeline       = (*Pipeline)(nil)
	_ port.ElementFactory = (*ElementFactory)(nil)
)
