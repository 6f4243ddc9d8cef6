// Package canvas implements the overlay drawing surface on a software
// rasterized gg context, projecting world positions through an orbit camera.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"go.uber.org/multierr"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Faultbox/meshdebug/internal/engine/camera"
	"github.com/Faultbox/meshdebug/internal/inspector"
	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

const (
	edgeWidth      = 1.5
	wireframeWidth = 1.0
)

var wireframeColor = color.RGBA{R: 120, G: 128, B: 140, A: 255}

// Canvas is an inspector.Surface backed by a gg context.
type Canvas struct {
	ctx   *gg.Context
	cam   *camera.OrbitCamera
	fonts *text.FontSource
	faces map[float32]text.Face

	drawCalls int
	err       error
}

var _ inspector.Surface = (*Canvas)(nil)

// New creates a width x height canvas viewed through cam.
func New(width, height int, cam *camera.OrbitCamera) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if cam == nil {
		return nil, fmt.Errorf("canvas requires a camera")
	}

	fonts, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}

	return &Canvas{
		ctx:   gg.NewContext(width, height),
		cam:   cam,
		fonts: fonts,
		faces: make(map[float32]text.Face),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.ctx.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.ctx.Height() }

// Camera returns the camera used for projection.
func (c *Canvas) Camera() *camera.OrbitCamera { return c.cam }

// Begin clears the canvas to bg and resets the per-frame counters.
func (c *Canvas) Begin(bg color.Color) {
	c.ctx.ClearWithColor(gg.FromColor(bg))
	c.drawCalls = 0
	c.err = nil
}

// DrawCalls returns the number of primitives drawn since Begin.
func (c *Canvas) DrawCalls() int { return c.drawCalls }

// Err returns the rasterization errors collected since Begin.
func (c *Canvas) Err() error { return c.err }

// HandleSize implements inspector.Surface.
func (c *Canvas) HandleSize(p math.Vec3) float32 {
	return c.cam.HandleSize(p, c.Height())
}

// DrawMarker draws a filled circle of world radius at center.
func (c *Canvas) DrawMarker(center math.Vec3, radius float32, col color.RGBA) {
	x, y, ok := c.project(center)
	if !ok {
		return
	}
	handle := c.HandleSize(center)
	if handle <= 0 {
		return
	}
	px := float64(radius / handle * c.cam.HandlePixels)

	c.ctx.SetColor(col)
	c.ctx.DrawCircle(float64(x), float64(y), px)
	c.record(c.ctx.Fill())
}

// DrawDottedLine draws a dashed segment with dashes of dashSize pixels.
func (c *Canvas) DrawDottedLine(a, b math.Vec3, dashSize float32, col color.RGBA) {
	ax, ay, okA := c.project(a)
	bx, by, okB := c.project(b)
	if !okA || !okB {
		return
	}

	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(edgeWidth)
	if dashSize > 0 {
		c.ctx.SetDash(float64(dashSize), float64(dashSize))
	}
	c.ctx.DrawLine(float64(ax), float64(ay), float64(bx), float64(by))
	c.record(c.ctx.Stroke())
	c.ctx.ClearDash()
}

// DrawLabel draws text in a style.Width x style.Height box centered on the
// projected position. Middle-center text is centered on the point itself;
// upper-left text starts at the box corner.
func (c *Canvas) DrawLabel(at math.Vec3, s string, style *inspector.LabelStyle) {
	x, y, ok := c.project(at)
	if !ok || style == nil {
		return
	}

	c.ctx.SetFont(c.face(style.FontSize))
	c.ctx.SetColor(style.TextColor)
	if style.Clip {
		s = c.fit(s, float64(style.Width))
	}

	bx, by := float64(x), float64(y)
	switch style.Alignment {
	case inspector.AlignUpperLeft:
		c.ctx.DrawStringAnchored(s, bx-float64(style.Width)/2, by-float64(style.Height)/2, 0, 1)
	default:
		c.ctx.DrawStringAnchored(s, bx, by, 0.5, 0.5)
	}
	c.drawCalls++
}

// DrawWireframe strokes every triangle of mesh, mapping local positions
// through toWorld.
func (c *Canvas) DrawWireframe(mesh *scene.Mesh, toWorld func(math.Vec3) math.Vec3) {
	if mesh.FaceCount() == 0 {
		return
	}

	c.ctx.SetColor(wireframeColor)
	c.ctx.SetLineWidth(wireframeWidth)
	c.ctx.ClearDash()

	for f := 0; f < mesh.FaceCount(); f++ {
		var pts [3][2]float64
		visible := true
		for k := 0; k < 3; k++ {
			p := mesh.Vertices[mesh.Triangles[f*3+k]]
			if toWorld != nil {
				p = toWorld(p)
			}
			x, y, ok := c.project(p)
			if !ok {
				visible = false
				break
			}
			pts[k] = [2]float64{float64(x), float64(y)}
		}
		if !visible {
			continue
		}
		c.ctx.MoveTo(pts[0][0], pts[0][1])
		c.ctx.LineTo(pts[1][0], pts[1][1])
		c.ctx.LineTo(pts[2][0], pts[2][1])
		c.ctx.ClosePath()
	}
	c.record(c.ctx.Stroke())
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Image returns a copy of the current frame; later drawing does not
// affect it.
func (c *Canvas) Image() *image.RGBA {
	_ = c.ctx.FlushGPU() // pending accelerated shapes must land before reading pixels
	img := c.ctx.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		// gg builds a fresh RGBA on every call.
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

func (c *Canvas) project(p math.Vec3) (float32, float32, bool) {
	return c.cam.WorldToScreen(p, c.Width(), c.Height())
}

func (c *Canvas) record(err error) {
	c.drawCalls++
	c.err = multierr.Append(c.err, err)
}

func (c *Canvas) face(size float32) text.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.fonts.Face(float64(size))
	c.faces[size] = f
	return f
}

// fit trims s until it is no wider than width.
func (c *Canvas) fit(s string, width float64) string {
	r := []rune(s)
	for len(r) > 0 {
		if w, _ := c.ctx.MeasureString(string(r)); w <= width {
			break
		}
		r = r[:len(r)-1]
	}
	return string(r)
}
