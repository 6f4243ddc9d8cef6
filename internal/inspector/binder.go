// Package inspector steps through the triangles of a selected mesh and draws
// a world-space overlay for the current one.
package inspector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

// MeshSource is anything that supplies a mesh together with the transform
// placing it in the world.
type MeshSource interface {
	SharedMesh() *scene.Mesh
	TransformPoint(p math.Vec3) math.Vec3
}

// SourceKind identifies which variant a binding was resolved from.
type SourceKind int

const (
	SourceStatic SourceKind = iota
	SourceSkinned
)

func (k SourceKind) String() string {
	switch k {
	case SourceStatic:
		return "static"
	case SourceSkinned:
		return "skinned"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

type sourceVariant struct {
	kind SourceKind
	find func(target *scene.Object) (MeshSource, bool)
}

// sourceVariants lists the lookups in preference order.
var sourceVariants = []sourceVariant{
	{SourceStatic, staticSource},
	{SourceSkinned, skinnedSource},
}

func staticSource(target *scene.Object) (MeshSource, bool) {
	obj := target.FindInChildren(func(o *scene.Object) bool { return o.MeshFilter != nil })
	if obj == nil {
		return nil, false
	}
	return obj.MeshFilter, true
}

func skinnedSource(target *scene.Object) (MeshSource, bool) {
	obj := target.FindInChildren(func(o *scene.Object) bool { return o.SkinnedMesh != nil })
	if obj == nil {
		return nil, false
	}
	return obj.SkinnedMesh, true
}

// Binding ties a selected object to the mesh found on it and the transform
// used to place that mesh. It is valid until the next Bind.
type Binding struct {
	Target *scene.Object
	Kind   SourceKind

	source MeshSource
	mesh   *scene.Mesh
}

// Mesh returns the bound mesh.
func (b *Binding) Mesh() *scene.Mesh { return b.mesh }

// FaceCount returns the number of faces of the bound mesh.
func (b *Binding) FaceCount() int { return b.mesh.FaceCount() }

// ToWorld maps a mesh-local point to world space with the current placement.
func (b *Binding) ToWorld(p math.Vec3) math.Vec3 { return b.source.TransformPoint(p) }

// Binder resolves selection targets into bindings. It holds at most one
// binding at a time.
type Binder struct {
	current *Binding
	log     *zap.Logger
}

// NewBinder creates a binder with no active binding.
func NewBinder(log *zap.Logger) *Binder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Binder{log: log}
}

// Current returns the active binding, or nil.
func (b *Binder) Current() *Binding {
	return b.current
}

// Bind discards the current binding and tries to bind target. A static mesh
// anywhere under target wins over a skinned one.
func (b *Binder) Bind(target *scene.Object) (*Binding, error) {
	b.current = nil

	if target == nil {
		return nil, fmt.Errorf("nothing selected: %w", ErrNoMeshFound)
	}

	for _, v := range sourceVariants {
		src, ok := v.find(target)
		if !ok {
			continue
		}
		mesh := src.SharedMesh()
		if mesh == nil {
			continue
		}
		if err := mesh.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", target.Name, ErrMalformedMesh, err)
		}

		b.current = &Binding{Target: target, Kind: v.kind, source: src, mesh: mesh}
		b.log.Debug("bound mesh",
			zap.String("target", target.Path()),
			zap.Stringer("source", v.kind),
			zap.String("mesh", mesh.Name),
			zap.Int("faces", mesh.FaceCount()),
		)
		return b.current, nil
	}

	return nil, fmt.Errorf("%s: %w", target.Name, ErrNoMeshFound)
}
