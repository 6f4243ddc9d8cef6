// Package scene holds the scene graph the inspector selects from: objects
// with transforms, mesh components, shared mesh resources and the active
// selection.
package scene

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// Mesh is an indexed triangle mesh. It is shared between components and
// treated as read-only once loaded.
type Mesh struct {
	Name      string
	Vertices  []math.Vec3 // local space
	UV        []math.Vec2 // index-aligned with Vertices
	Triangles []int       // three vertex indices per face
}

// FaceCount returns the number of triangles in the mesh.
func (m *Mesh) FaceCount() int {
	if m == nil {
		return 0
	}
	return len(m.Triangles) / 3
}

// Bounds returns the local-space axis-aligned bounds of the vertices.
// ok is false for a mesh without vertices.
func (m *Mesh) Bounds() (lo, hi math.Vec3, ok bool) {
	if m == nil || len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi, true
}

// Validate checks the index buffer against the vertex and UV buffers and
// returns every violation found, combined into one error.
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("mesh is nil")
	}

	var err error
	if len(m.Triangles)%3 != 0 {
		err = multierr.Append(err, fmt.Errorf("mesh %q: triangle index count %d is not a multiple of 3", m.Name, len(m.Triangles)))
	}
	if len(m.UV) != len(m.Vertices) {
		err = multierr.Append(err, fmt.Errorf("mesh %q: %d uvs for %d vertices", m.Name, len(m.UV), len(m.Vertices)))
	}
	for i, idx := range m.Triangles {
		if idx < 0 || idx >= len(m.Vertices) || idx >= len(m.UV) {
			err = multierr.Append(err, fmt.Errorf("mesh %q: triangles[%d] = %d out of range", m.Name, i, idx))
		}
	}
	return err
}
