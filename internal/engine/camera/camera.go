// Package camera provides the orbit camera used to view the inspected mesh
// and to project overlay positions to the screen.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle (radians)
	Yaw      float32 // Horizontal angle (radians)

	FOV       float32 // Vertical field of view (radians)
	Near, Far float32

	// HandlePixels is the on-screen length, in pixels, HandleSize maps to.
	HandlePixels float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5,
		Pitch:           0.4,
		FOV:             math.Radians(60),
		Near:            0.01,
		Far:             1000,
		HandlePixels:    80,
		MinDistance:     0.05,
		MaxDistance:     5000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	return math.Vec3{
		X: c.Center.X + c.Distance*float32(cp*gomath.Sin(float64(c.Yaw))),
		Y: c.Center.Y + c.Distance*float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Center.Z + c.Distance*float32(cp*gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for a viewport aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	far := c.Far
	// Keep the far plane beyond the orbit so large meshes are not clipped.
	if minFar := c.Distance * 4; far < minFar {
		far = minFar
	}
	return math.Perspective(c.FOV, aspect, c.Near, far)
}

// WorldToScreen projects p into pixel coordinates of a width x height
// viewport with the origin at the top-left. ok is false for points behind
// the camera.
func (c *OrbitCamera) WorldToScreen(p math.Vec3, width, height int) (x, y float32, ok bool) {
	aspect := float32(width) / float32(height)
	viewProj := c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())

	clip := viewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] < c.Near {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	x = (ndcX + 1) / 2 * float32(width)
	y = (1 - ndcY) / 2 * float32(height)
	return x, y, true
}

// Depth returns the distance of p in front of the camera along the view axis.
func (c *OrbitCamera) Depth(p math.Vec3) float32 {
	return -c.ViewMatrix().TransformVec3(p).Z
}

// HandleSize returns the world-space length that spans HandlePixels on a
// viewport of the given height at the depth of p, so handles sized by it
// keep a constant on-screen size. Points behind the camera get 0.
func (c *OrbitCamera) HandleSize(p math.Vec3, viewportHeight int) float32 {
	depth := c.Depth(p)
	if depth <= 0 || viewportHeight <= 0 {
		return 0
	}
	visible := 2 * depth * float32(gomath.Tan(float64(c.FOV)/2))
	return visible * c.HandlePixels / float32(viewportHeight)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// FitToBounds centers the camera on the box and backs off far enough for the
// whole box to be visible.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)

	radius := hi.Sub(lo).Length() / 2
	if radius < 1e-3 {
		radius = 1
	}
	c.Distance = radius / float32(gomath.Sin(float64(c.FOV)/2)) * 1.1
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}
