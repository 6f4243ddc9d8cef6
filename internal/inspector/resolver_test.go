package inspector

import (
	"errors"
	"testing"

	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

func bindMesh(t *testing.T, m *scene.Mesh, place func(o *scene.Object)) *Binding {
	t.Helper()
	obj := scene.NewObject("obj")
	if place != nil {
		place(obj)
	}
	obj.SetMeshFilter(m)
	b, err := NewBinder(nil).Bind(obj)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	return b
}

func TestResolveMatchesTriangleBuffer(t *testing.T) {
	m := gridMesh(6)
	b := bindMesh(t, m, nil)

	for f := 0; f < m.FaceCount(); f++ {
		g, err := Resolve(b, f)
		if err != nil {
			t.Fatalf("face %d: %v", f, err)
		}
		if g.Face != f {
			t.Errorf("expected face %d, got %d", f, g.Face)
		}
		for i, v := range g.Vertices {
			idx := m.Triangles[3*f+i]
			if v.Index != idx {
				t.Errorf("face %d corner %d: expected index %d, got %d", f, i, idx, v.Index)
			}
			if v.UV != m.UV[idx] {
				t.Errorf("face %d corner %d: expected uv %v, got %v", f, i, m.UV[idx], v.UV)
			}
			if v.Local != m.Vertices[idx] {
				t.Errorf("face %d corner %d: expected local %v, got %v", f, i, m.Vertices[idx], v.Local)
			}
		}
	}
}

func TestResolveAppliesLiveTransform(t *testing.T) {
	var obj *scene.Object
	b := bindMesh(t, twoTriangleMesh(), func(o *scene.Object) {
		obj = o
		o.Transform.Position = math.Vec3{Z: 2}
	})

	g, _ := Resolve(b, 1)
	if got, want := g.Vertices[2].World, (math.Vec3{X: 1, Y: 1, Z: 2}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Moving the object between calls is picked up without rebinding.
	obj.Transform.Position = math.Vec3{Z: -1}
	g, _ = Resolve(b, 1)
	if got, want := g.Vertices[2].World, (math.Vec3{X: 1, Y: 1, Z: -1}); got != want {
		t.Errorf("expected %v after move, got %v", want, got)
	}
}

func TestResolveErrors(t *testing.T) {
	b := bindMesh(t, twoTriangleMesh(), nil)
	empty := bindMesh(t, &scene.Mesh{}, nil)

	tests := []struct {
		name    string
		binding *Binding
		face    int
		wantErr error
	}{
		{"no binding", nil, 0, ErrNoBinding},
		{"empty mesh", empty, 0, ErrEmptyMesh},
		{"negative", b, -1, ErrOutOfRange},
		{"past end", b, 2, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Resolve(tt.binding, tt.face)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if g != nil {
				t.Error("expected no geometry")
			}
		})
	}
}
