package scene

import (
	"strings"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// Transform places an object relative to its parent.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// IdentityTransform returns a transform with no translation, rotation or scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Matrix returns the local-to-parent matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.Rotation, t.Scale)
}

// MeshFilter references a static mesh drawn with the owner's transform.
type MeshFilter struct {
	Mesh  *Mesh
	owner *Object
}

// SharedMesh returns the referenced mesh.
func (f *MeshFilter) SharedMesh() *Mesh { return f.Mesh }

// TransformPoint maps a mesh-local point to world space.
func (f *MeshFilter) TransformPoint(p math.Vec3) math.Vec3 { return f.owner.TransformPoint(p) }

// SkinnedMeshRenderer references a deformable mesh. Only the bind pose is
// inspected; bones are not evaluated.
type SkinnedMeshRenderer struct {
	Mesh  *Mesh
	owner *Object
}

// SharedMesh returns the referenced mesh.
func (r *SkinnedMeshRenderer) SharedMesh() *Mesh { return r.Mesh }

// TransformPoint maps a mesh-local point to world space.
func (r *SkinnedMeshRenderer) TransformPoint(p math.Vec3) math.Vec3 { return r.owner.TransformPoint(p) }

// Object is a node of the scene graph.
type Object struct {
	Name      string
	Transform Transform
	Parent    *Object
	Children  []*Object

	MeshFilter  *MeshFilter
	SkinnedMesh *SkinnedMeshRenderer
}

// NewObject creates an object with an identity transform.
func NewObject(name string) *Object {
	return &Object{Name: name, Transform: IdentityTransform()}
}

// AddChild attaches child under o.
func (o *Object) AddChild(child *Object) {
	child.Parent = o
	o.Children = append(o.Children, child)
}

// SetMeshFilter attaches a static mesh component.
func (o *Object) SetMeshFilter(m *Mesh) {
	o.MeshFilter = &MeshFilter{Mesh: m, owner: o}
}

// SetSkinnedMesh attaches a skinned mesh component.
func (o *Object) SetSkinnedMesh(m *Mesh) {
	o.SkinnedMesh = &SkinnedMeshRenderer{Mesh: m, owner: o}
}

// LocalToWorld returns the matrix mapping this object's local space to world
// space. It is recomputed on every call so moved parents are picked up.
func (o *Object) LocalToWorld() math.Mat4 {
	m := o.Transform.Matrix()
	for p := o.Parent; p != nil; p = p.Parent {
		m = p.Transform.Matrix().Mul(m)
	}
	return m
}

// TransformPoint maps a local-space point to world space.
func (o *Object) TransformPoint(p math.Vec3) math.Vec3 {
	return o.LocalToWorld().TransformVec3(p)
}

// Path returns the slash-separated names from the root to o.
func (o *Object) Path() string {
	if o.Parent == nil {
		return o.Name
	}
	return o.Parent.Path() + "/" + o.Name
}

// FindInChildren returns the first object, o itself first and then its
// descendants depth-first, for which match returns true.
func (o *Object) FindInChildren(match func(*Object) bool) *Object {
	if o == nil {
		return nil
	}
	if match(o) {
		return o
	}
	for _, c := range o.Children {
		if found := c.FindInChildren(match); found != nil {
			return found
		}
	}
	return nil
}

// child returns the direct child with the given name.
func (o *Object) child(name string) *Object {
	for _, c := range o.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Scene is a loaded set of root objects and the meshes they share.
type Scene struct {
	Meshes map[string]*Mesh
	Roots  []*Object
}

// Find resolves an object by slash-separated path ("root/arm/hand") or, when
// no path matches, by the first object with that name.
func (s *Scene) Find(name string) *Object {
	if name == "" {
		return nil
	}

	parts := strings.Split(name, "/")
	for _, root := range s.Roots {
		if root.Name != parts[0] {
			continue
		}
		obj := root
		for _, part := range parts[1:] {
			if obj = obj.child(part); obj == nil {
				break
			}
		}
		if obj != nil {
			return obj
		}
	}

	for _, root := range s.Roots {
		if obj := root.FindInChildren(func(o *Object) bool { return o.Name == name }); obj != nil {
			return obj
		}
	}
	return nil
}

// Objects returns every object in depth-first order.
func (s *Scene) Objects() []*Object {
	var out []*Object
	for _, root := range s.Roots {
		root.FindInChildren(func(o *Object) bool {
			out = append(out, o)
			return false
		})
	}
	return out
}

// MeshObjects returns the objects that carry a mesh component directly.
func (s *Scene) MeshObjects() []*Object {
	var out []*Object
	for _, o := range s.Objects() {
		if o.MeshFilter != nil || o.SkinnedMesh != nil {
			out = append(out, o)
		}
	}
	return out
}
