package inspector

import (
	"image/color"

	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

// drawCall records one call made on recordingSurface.
type drawCall struct {
	kind   string // marker, line, label
	a, b   math.Vec3
	radius float32
	dash   float32
	color  color.RGBA
	text   string
	style  *LabelStyle
}

// recordingSurface records draw calls. HandleSize returns handle for every point.
type recordingSurface struct {
	handle float32
	calls  []drawCall
}

func (s *recordingSurface) HandleSize(math.Vec3) float32 { return s.handle }

func (s *recordingSurface) DrawMarker(center math.Vec3, radius float32, c color.RGBA) {
	s.calls = append(s.calls, drawCall{kind: "marker", a: center, radius: radius, color: c})
}

func (s *recordingSurface) DrawDottedLine(a, b math.Vec3, dash float32, c color.RGBA) {
	s.calls = append(s.calls, drawCall{kind: "line", a: a, b: b, dash: dash, color: c})
}

func (s *recordingSurface) DrawLabel(at math.Vec3, text string, style *LabelStyle) {
	s.calls = append(s.calls, drawCall{kind: "label", a: at, text: text, style: style})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// twoTriangleMesh is the unit quad split along its diagonal.
func twoTriangleMesh() *scene.Mesh {
	return &scene.Mesh{
		Name:      "quad",
		Vertices:  []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}},
		UV:        []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Triangles: []int{0, 1, 2, 2, 1, 3},
	}
}

// gridMesh builds a mesh with n faces, each face i using vertices i, i+1, i+2.
func gridMesh(n int) *scene.Mesh {
	m := &scene.Mesh{Name: "strip"}
	for i := 0; i < n+2; i++ {
		m.Vertices = append(m.Vertices, math.Vec3{X: float32(i), Y: float32(i % 2)})
		m.UV = append(m.UV, math.Vec2{X: float32(i) / float32(n+1), Y: float32(i % 2)})
	}
	for i := 0; i < n; i++ {
		m.Triangles = append(m.Triangles, i, i+1, i+2)
	}
	return m
}

// staticSelection is a SelectionQuery with a settable object.
type staticSelection struct {
	obj *scene.Object
}

func (s *staticSelection) ActiveObject() *scene.Object { return s.obj }
