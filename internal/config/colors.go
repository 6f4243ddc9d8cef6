package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"go.uber.org/multierr"

	"github.com/Faultbox/meshdebug/internal/inspector"
)

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: not hexadecimal", s)
	}
	c := gg.Hex(hex)
	return color.RGBAModel.Convert(color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}).(color.RGBA), nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// InspectorOverlay converts the overlay section into the inspector's
// configuration. Every bad color is reported.
func (o OverlayConfig) InspectorOverlay() (inspector.OverlayConfig, error) {
	out := inspector.OverlayConfig{
		MarkerScale: o.MarkerScale,
		DashSize:    o.DashSize,
		Label: inspector.LabelConfig{
			Width:    o.Label.Width,
			Height:   o.Label.Height,
			FontSize: o.Label.FontSize,
		},
	}

	var errs, err error
	out.EdgeColor, err = ParseColor(o.EdgeColor)
	errs = multierr.Append(errs, err)
	out.Label.Color, err = ParseColor(o.Label.Color)
	errs = multierr.Append(errs, err)
	for i, c := range o.VertexColors {
		out.VertexColors[i], err = ParseColor(c)
		errs = multierr.Append(errs, err)
	}

	if o.MarkerScale <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("overlay marker_scale must be positive, got %v", o.MarkerScale))
	}
	if o.DashSize <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("overlay dash_size must be positive, got %v", o.DashSize))
	}
	return out, errs
}
