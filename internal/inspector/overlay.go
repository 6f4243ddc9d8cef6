package inspector

import (
	"image/color"
	"strconv"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// Surface is the immediate-mode drawing target the overlay issues its draw
// calls to. All positions are in world space.
type Surface interface {
	// HandleSize returns the world-space length that appears at a constant
	// on-screen size at p.
	HandleSize(p math.Vec3) float32
	DrawMarker(center math.Vec3, radius float32, c color.RGBA)
	DrawDottedLine(a, b math.Vec3, dashSize float32, c color.RGBA)
	DrawLabel(at math.Vec3, text string, style *LabelStyle)
}

// Alignment positions label text inside its box.
type Alignment int

const (
	AlignMiddleCenter Alignment = iota
	AlignUpperLeft
)

// LabelStyle describes how index labels are drawn.
type LabelStyle struct {
	TextColor color.RGBA
	Width     float32
	Height    float32
	FontSize  float32
	Alignment Alignment
	Clip      bool // false lets text overflow the box
}

// LabelConfig is the configurable part of the label style.
type LabelConfig struct {
	Width    float32
	Height   float32
	FontSize float32
	Color    color.RGBA
}

// OverlayConfig controls the overlay appearance.
type OverlayConfig struct {
	// MarkerScale is the marker diameter relative to the surface handle size.
	MarkerScale  float32
	DashSize     float32
	EdgeColor    color.RGBA
	VertexColors [3]color.RGBA
	Label        LabelConfig
}

// DefaultOverlayConfig returns the standard red/green/blue markers, white
// dotted edges and 40x20 white labels.
func DefaultOverlayConfig() OverlayConfig {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return OverlayConfig{
		MarkerScale: 0.2,
		DashSize:    5,
		EdgeColor:   white,
		VertexColors: [3]color.RGBA{
			{R: 255, A: 255},
			{G: 255, A: 255},
			{B: 255, A: 255},
		},
		Label: LabelConfig{
			Width:    40,
			Height:   20,
			FontSize: 12,
			Color:    white,
		},
	}
}

// Overlay draws the current face: a marker and an index label per corner and
// a dotted triangle outline.
type Overlay struct {
	cfg        OverlayConfig
	labelStyle *LabelStyle

	// styleBuilds counts label style constructions.
	styleBuilds int
}

// NewOverlay creates an overlay with the given configuration.
func NewOverlay(cfg OverlayConfig) *Overlay {
	return &Overlay{cfg: cfg}
}

// Config returns the current configuration.
func (o *Overlay) Config() OverlayConfig {
	return o.cfg
}

// SetConfig replaces the configuration. The label style is rebuilt on the
// next render only if the label settings changed.
func (o *Overlay) SetConfig(cfg OverlayConfig) {
	if cfg.Label != o.cfg.Label {
		o.labelStyle = nil
	}
	o.cfg = cfg
}

// LabelStyle returns the label style, building it on first use.
func (o *Overlay) LabelStyle() *LabelStyle {
	if o.labelStyle == nil {
		o.labelStyle = &LabelStyle{
			TextColor: o.cfg.Label.Color,
			Width:     o.cfg.Label.Width,
			Height:    o.cfg.Label.Height,
			FontSize:  o.cfg.Label.FontSize,
			Alignment: AlignMiddleCenter,
			Clip:      false,
		}
		o.styleBuilds++
	}
	return o.labelStyle
}

// Render draws g onto s. A nil geometry draws nothing.
func (o *Overlay) Render(s Surface, g *FaceGeometry) {
	if g == nil || s == nil {
		return
	}

	p := [3]math.Vec3{g.Vertices[0].World, g.Vertices[1].World, g.Vertices[2].World}

	for i, pos := range p {
		diameter := o.cfg.MarkerScale * s.HandleSize(pos)
		s.DrawMarker(pos, diameter/2, o.cfg.VertexColors[i])
	}

	for i := range p {
		s.DrawDottedLine(p[i], p[(i+1)%3], o.cfg.DashSize, o.cfg.EdgeColor)
	}

	style := o.LabelStyle()
	for i, pos := range p {
		s.DrawLabel(pos, strconv.Itoa(g.Vertices[i].Index), style)
	}
}
