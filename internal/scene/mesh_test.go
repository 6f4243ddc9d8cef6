package scene

import (
	"testing"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshdebug/pkg/math"
)

func quadMesh() *Mesh {
	return &Mesh{
		Name:      "quad",
		Vertices:  []math.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		UV:        []math.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Triangles: []int{0, 1, 2, 2, 1, 3},
	}
}

func TestMeshFaceCount(t *testing.T) {
	if got := quadMesh().FaceCount(); got != 2 {
		t.Errorf("expected 2 faces, got %d", got)
	}
	var nilMesh *Mesh
	if got := nilMesh.FaceCount(); got != 0 {
		t.Errorf("expected 0 faces for nil mesh, got %d", got)
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Mesh)
		wantErr int
	}{
		{"valid", func(m *Mesh) {}, 0},
		{"empty triangles", func(m *Mesh) { m.Triangles = nil }, 0},
		{"partial triangle", func(m *Mesh) { m.Triangles = append(m.Triangles, 0) }, 1},
		{"index past vertices", func(m *Mesh) { m.Triangles[5] = 4 }, 1},
		{"negative index", func(m *Mesh) { m.Triangles[0] = -1 }, 1},
		{"uv misaligned", func(m *Mesh) { m.UV = m.UV[:3] }, 2}, // count mismatch + index 3 has no uv
		{"everything wrong", func(m *Mesh) {
			m.Triangles = []int{0, 9}
			m.UV = nil
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := quadMesh()
			tt.mutate(m)
			err := m.Validate()
			if got := len(multierr.Errors(err)); got != tt.wantErr {
				t.Errorf("expected %d errors, got %d (%v)", tt.wantErr, got, err)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	lo, hi, ok := quadMesh().Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty mesh")
	}
	if lo != (math.Vec3{}) || hi != (math.Vec3{X: 1, Y: 1}) {
		t.Errorf("unexpected bounds %v..%v", lo, hi)
	}
	if _, _, ok := (&Mesh{}).Bounds(); ok {
		t.Error("expected no bounds for empty mesh")
	}
}
