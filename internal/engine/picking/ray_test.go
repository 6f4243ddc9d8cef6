package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/meshdebug/internal/engine/camera"
	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

func frontCamera() *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.Pitch, cam.Yaw, cam.Distance = 0, 0, 10
	return cam
}

func TestScreenToRayCenter(t *testing.T) {
	r := ScreenToRay(frontCamera(), 400, 300, 800, 600)

	if r.Origin != (math.Vec3{Z: 10}) {
		t.Errorf("expected origin (0,0,10), got %v", r.Origin)
	}
	if gomath.Abs(float64(r.Direction.Z+1)) > 1e-5 {
		t.Errorf("expected direction -Z, got %v", r.Direction)
	}
}

func TestScreenToRayMatchesProjection(t *testing.T) {
	cam := frontCamera()
	target := math.Vec3{X: 1.5, Y: -0.75}

	x, y, ok := cam.WorldToScreen(target, 800, 600)
	if !ok {
		t.Fatal("expected target visible")
	}
	r := ScreenToRay(cam, x, y, 800, 600)

	// The ray must pass through the target at its depth.
	p := r.At((r.Origin.Z - target.Z) / -r.Direction.Z)
	if p.Distance(target) > 1e-3 {
		t.Errorf("expected ray through %v, got %v", target, p)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a, b, c := math.Vec3{X: -1, Y: -1}, math.Vec3{X: 1, Y: -1}, math.Vec3{Y: 1}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
		t    float32
	}{
		{"front", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}, true, 5},
		{"back side", Ray{Origin: math.Vec3{Z: -2}, Direction: math.Vec3{Z: 1}}, true, 2},
		{"miss", Ray{Origin: math.Vec3{X: 3, Z: 5}, Direction: math.Vec3{Z: -1}}, false, 0},
		{"behind", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"parallel", Ray{Origin: math.Vec3{Z: 1}, Direction: math.Vec3{X: 1}}, false, 0},
	}

	for _, tt := range tests {
		got, hit := tt.ray.IntersectTriangle(a, b, c)
		if hit != tt.hit {
			t.Errorf("%s: expected hit=%v, got %v", tt.name, tt.hit, hit)
			continue
		}
		if hit && gomath.Abs(float64(got-tt.t)) > 1e-5 {
			t.Errorf("%s: expected t=%v, got %v", tt.name, tt.t, got)
		}
	}
}

func TestIntersectAABB(t *testing.T) {
	lo, hi := math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}

	if got, hit := (Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}).IntersectAABB(lo, hi); !hit || got != 4 {
		t.Errorf("expected hit at 4, got %v (hit=%v)", got, hit)
	}
	if got, hit := (Ray{Direction: math.Vec3{Z: -1}}).IntersectAABB(lo, hi); !hit || got != 1 {
		t.Errorf("expected exit at 1 from inside, got %v (hit=%v)", got, hit)
	}
	if _, hit := (Ray{Origin: math.Vec3{X: 5, Z: 5}, Direction: math.Vec3{Z: -1}}).IntersectAABB(lo, hi); hit {
		t.Error("expected miss")
	}
}

func TestPickFace(t *testing.T) {
	// Two quads stacked along Z; the nearer one must win.
	mesh := &scene.Mesh{
		Vertices: []math.Vec3{
			{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		},
		Triangles: []int{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7},
	}
	cam := frontCamera()

	x, y, _ := cam.WorldToScreen(math.Vec3{X: 0.5, Y: 0.5, Z: 1}, 800, 600)
	face, ok := PickFace(ScreenToRay(cam, x, y, 800, 600), mesh, nil)
	if !ok || face != 3 {
		t.Errorf("expected face 3, got %d (ok=%v)", face, ok)
	}

	shift := func(p math.Vec3) math.Vec3 { return p.Add(math.Vec3{X: 10}) }
	if _, ok := PickFace(ScreenToRay(cam, x, y, 800, 600), mesh, shift); ok {
		t.Error("expected miss after moving the mesh away")
	}
	if _, ok := PickFace(Ray{Direction: math.Vec3{Z: -1}}, &scene.Mesh{}, nil); ok {
		t.Error("expected no pick on empty mesh")
	}
}
