package inspector

import (
	"fmt"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// Corner names a triangle slot. The overlay colors slots red, green, blue.
type Corner int

const (
	CornerRed Corner = iota
	CornerGreen
	CornerBlue
)

func (c Corner) String() string {
	switch c {
	case CornerRed:
		return "Red"
	case CornerGreen:
		return "Green"
	case CornerBlue:
		return "Blue"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Vertex is one resolved corner of a face.
type Vertex struct {
	Index int
	Local math.Vec3
	World math.Vec3
	UV    math.Vec2
}

// FaceGeometry is a resolved face. It reflects the placement at the time of
// the Resolve call and should not be kept across frames.
type FaceGeometry struct {
	Face     int
	Vertices [3]Vertex
}

// Resolve reads face from the bound mesh and maps its corners to world space.
func Resolve(b *Binding, face int) (*FaceGeometry, error) {
	if b == nil {
		return nil, ErrNoBinding
	}
	count := b.FaceCount()
	if count == 0 {
		return nil, ErrEmptyMesh
	}
	if face < 0 || face >= count {
		return nil, fmt.Errorf("resolve face %d of %d: %w", face, count, ErrOutOfRange)
	}

	mesh := b.Mesh()
	g := &FaceGeometry{Face: face}
	for i := range g.Vertices {
		idx := mesh.Triangles[face*3+i]
		local := mesh.Vertices[idx]
		g.Vertices[i] = Vertex{
			Index: idx,
			Local: local,
			World: b.ToWorld(local),
			UV:    mesh.UV[idx],
		}
	}
	return g, nil
}
