// Package picking casts rays from the screen into the scene to find the
// mesh face under the cursor.
package picking

import (
	gomath "math"

	"github.com/Faultbox/meshdebug/internal/engine/camera"
	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

const epsilon = 1e-7

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates on a width x height viewport into
// a world-space ray leaving the camera.
func ScreenToRay(cam *camera.OrbitCamera, screenX, screenY float32, width, height int) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/float32(width) - 1
	ndcY := 1 - 2*screenY/float32(height) // Flip Y

	eye := cam.Position()
	forward := cam.Center.Sub(eye).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	tanHalf := float32(gomath.Tan(float64(cam.FOV) / 2))
	aspect := float32(width) / float32(height)

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))

	return Ray{Origin: eye, Direction: dir.Normalize()}
}

// IntersectTriangle tests the ray against triangle abc from either side.
// Returns the distance to the hit and whether it lies in front of the origin.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if gomath.Abs(float64(det)) < epsilon {
		return 0, false // Ray parallel to triangle
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	if t <= 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(lo, hi math.Vec3) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	bmin := [3]float32{lo.X, lo.Y, lo.Z}
	bmax := [3]float32{hi.X, hi.Y, hi.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return 0, false
			}
			continue
		}
		t1 := (bmin[axis] - origin[axis]) / dir[axis]
		t2 := (bmax[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// PickFace returns the nearest face of mesh hit by the ray, with local
// positions mapped through toWorld. ok is false when nothing is hit.
func PickFace(r Ray, mesh *scene.Mesh, toWorld func(math.Vec3) math.Vec3) (face int, ok bool) {
	faces := mesh.FaceCount()
	if faces == 0 {
		return 0, false
	}

	world := make([]math.Vec3, len(mesh.Vertices))
	lo := math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32}
	hi := lo.Scale(-1)
	for i, v := range mesh.Vertices {
		if toWorld != nil {
			v = toWorld(v)
		}
		world[i] = v
		lo, hi = lo.Min(v), hi.Max(v)
	}
	if _, hit := r.IntersectAABB(lo, hi); !hit {
		return 0, false
	}

	nearest := float32(gomath.MaxFloat32)
	for f := 0; f < faces; f++ {
		a := world[mesh.Triangles[f*3]]
		b := world[mesh.Triangles[f*3+1]]
		c := world[mesh.Triangles[f*3+2]]
		if t, hit := r.IntersectTriangle(a, b, c); hit && t < nearest {
			nearest, face, ok = t, f, true
		}
	}
	return face, ok
}
