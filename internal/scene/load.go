package scene

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// sceneFile is the on-disk YAML layout.
type sceneFile struct {
	Meshes  map[string]meshFile `yaml:"meshes"`
	Objects []objectFile        `yaml:"objects"`
}

type meshFile struct {
	Vertices  [][3]float32 `yaml:"vertices"`
	UV        [][2]float32 `yaml:"uv"`
	Triangles []int        `yaml:"triangles"`
}

type objectFile struct {
	Name        string       `yaml:"name"`
	Position    [3]float32   `yaml:"position"`
	Rotation    [3]float32   `yaml:"rotation"` // Euler degrees
	Scale       *[3]float32  `yaml:"scale"`
	MeshFilter  string       `yaml:"mesh_filter"`
	SkinnedMesh string       `yaml:"skinned_mesh"`
	Children    []objectFile `yaml:"children"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML. Every mesh is validated and every mesh
// reference resolved; all problems are reported together.
func Parse(data []byte) (*Scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	s := &Scene{Meshes: make(map[string]*Mesh, len(f.Meshes))}

	var errs error
	for name, mf := range f.Meshes {
		m := mf.toMesh(name)
		if err := m.Validate(); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		s.Meshes[name] = m
	}

	for i := range f.Objects {
		obj, err := s.buildObject(&f.Objects[i], f.Meshes)
		errs = multierr.Append(errs, err)
		s.Roots = append(s.Roots, obj)
	}

	if errs != nil {
		return nil, errs
	}
	return s, nil
}

func (mf meshFile) toMesh(name string) *Mesh {
	m := &Mesh{
		Name:      name,
		Vertices:  make([]math.Vec3, len(mf.Vertices)),
		UV:        make([]math.Vec2, len(mf.UV)),
		Triangles: mf.Triangles,
	}
	for i, v := range mf.Vertices {
		m.Vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	for i, uv := range mf.UV {
		m.UV[i] = math.Vec2{X: uv[0], Y: uv[1]}
	}
	return m
}

func (s *Scene) buildObject(of *objectFile, declared map[string]meshFile) (*Object, error) {
	obj := NewObject(of.Name)
	obj.Transform.Position = math.Vec3{X: of.Position[0], Y: of.Position[1], Z: of.Position[2]}
	obj.Transform.Rotation = math.QuatFromEuler(of.Rotation[0], of.Rotation[1], of.Rotation[2])
	if of.Scale != nil {
		obj.Transform.Scale = math.Vec3{X: of.Scale[0], Y: of.Scale[1], Z: of.Scale[2]}
	}

	var errs error
	if of.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("object without a name"))
	}

	lookup := func(name string) *Mesh {
		if m, ok := s.Meshes[name]; ok {
			return m
		}
		// Invalid meshes were already reported by Parse.
		if _, ok := declared[name]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("object %q: unknown mesh %q", of.Name, name))
		}
		return nil
	}

	if of.MeshFilter != "" {
		if m := lookup(of.MeshFilter); m != nil {
			obj.SetMeshFilter(m)
		}
	}
	if of.SkinnedMesh != "" {
		if m := lookup(of.SkinnedMesh); m != nil {
			obj.SetSkinnedMesh(m)
		}
	}

	for i := range of.Children {
		child, err := s.buildObject(&of.Children[i], declared)
		errs = multierr.Append(errs, err)
		obj.AddChild(child)
	}
	return obj, errs
}
