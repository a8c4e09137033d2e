package entity

import "fmt"

// ZoomMode is the scaling policy of a hardware video plane.
type ZoomMode int

const (
	// ZoomModeFull stretches the picture to the output rectangle.
	ZoomModeFull ZoomMode = 0
	// ZoomModeBox keeps the aspect ratio (letter/pillar box).
	ZoomModeBox ZoomMode = 1
)

// DisplayGeometry describes where and how a video sink presents frames.
type DisplayGeometry struct {
	X, Y          int
	Width, Height int
	ZOrder        int
	ZoomMode      ZoomMode
}

// DefaultDisplayGeometry is a 720p full-screen plane at the bottom of the
// compositing stack, box scaled.
func DefaultDisplayGeometry() DisplayGeometry {
	return DisplayGeometry{Width: 1280, Height: 720, ZOrder: 0, ZoomMode: ZoomModeBox}
}

// WindowSet formats the output rectangle as "x,y,width,height".
func (g DisplayGeometry) WindowSet() string {
	return fmt.Sprintf("%d,%d,%d,%d", g.X, g.Y, g.Width, g.Height)
}

// Valid reports whether the rectangle has a positive area.
func (g DisplayGeometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}
