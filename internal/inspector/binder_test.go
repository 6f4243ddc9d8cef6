package inspector

import (
	"errors"
	"testing"

	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

func TestBindPrefersStaticSource(t *testing.T) {
	staticMesh := twoTriangleMesh()
	skinnedMesh := gridMesh(5)

	root := scene.NewObject("root")
	root.SetSkinnedMesh(skinnedMesh)
	child := scene.NewObject("child")
	child.SetMeshFilter(staticMesh)
	root.AddChild(child)

	b, err := NewBinder(nil).Bind(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind != SourceStatic {
		t.Errorf("expected static source, got %v", b.Kind)
	}
	if b.Mesh() != staticMesh {
		t.Error("expected the descendant's static mesh")
	}
	if b.Target != root {
		t.Error("expected binding target to be the selected object")
	}
}

func TestBindFallsBackToSkinned(t *testing.T) {
	root := scene.NewObject("root")
	child := scene.NewObject("child")
	child.SetSkinnedMesh(gridMesh(4))
	root.AddChild(child)

	b, err := NewBinder(nil).Bind(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind != SourceSkinned {
		t.Errorf("expected skinned source, got %v", b.Kind)
	}
	if b.FaceCount() != 4 {
		t.Errorf("expected 4 faces, got %d", b.FaceCount())
	}
}

func TestBindUsesSourceTransform(t *testing.T) {
	root := scene.NewObject("root")
	root.Transform.Position = math.Vec3{X: 100}
	child := scene.NewObject("child")
	child.Transform.Position = math.Vec3{Y: 5}
	child.SetMeshFilter(twoTriangleMesh())
	root.AddChild(child)

	b, err := NewBinder(nil).Bind(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The mesh lives on child, so child's placement applies.
	if got, want := b.ToWorld(math.Vec3{}), (math.Vec3{X: 100, Y: 5}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBindFailures(t *testing.T) {
	bare := scene.NewObject("bare")
	bare.AddChild(scene.NewObject("leaf"))

	broken := scene.NewObject("broken")
	broken.SetMeshFilter(&scene.Mesh{Vertices: []math.Vec3{{}}, UV: []math.Vec2{{}}, Triangles: []int{0, 0, 3}})

	nilMesh := scene.NewObject("nilmesh")
	nilMesh.SetMeshFilter(nil)

	tests := []struct {
		name    string
		target  *scene.Object
		wantErr error
	}{
		{"nil target", nil, ErrNoMeshFound},
		{"no components", bare, ErrNoMeshFound},
		{"malformed mesh", broken, ErrMalformedMesh},
		{"component without mesh", nilMesh, ErrNoMeshFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binder := NewBinder(nil)
			ok := scene.NewObject("ok")
			ok.SetMeshFilter(twoTriangleMesh())
			if _, err := binder.Bind(ok); err != nil {
				t.Fatalf("setup bind failed: %v", err)
			}

			b, err := binder.Bind(tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if b != nil {
				t.Error("expected no binding")
			}
			if binder.Current() != nil {
				t.Error("expected previous binding to be discarded")
			}
		})
	}
}

func TestBindReplacesPrevious(t *testing.T) {
	binder := NewBinder(nil)

	a := scene.NewObject("a")
	a.SetMeshFilter(twoTriangleMesh())
	b := scene.NewObject("b")
	b.SetMeshFilter(gridMesh(9))

	first, _ := binder.Bind(a)
	second, _ := binder.Bind(b)

	if first == second {
		t.Error("expected a fresh binding")
	}
	if binder.Current() != second {
		t.Error("expected current binding to be the latest")
	}
}

func TestSourceKindString(t *testing.T) {
	if SourceStatic.String() != "static" || SourceSkinned.String() != "skinned" {
		t.Errorf("unexpected names %q %q", SourceStatic, SourceSkinned)
	}
	if got := SourceKind(7).String(); got != "SourceKind(7)" {
		t.Errorf("unexpected fallback name %q", got)
	}
}
