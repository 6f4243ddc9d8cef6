package inspector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshdebug/pkg/math"
)

// NoMeshMessage is shown when the selection has nothing to inspect.
const NoMeshMessage = "Current selection contains no mesh"

// VertexSummary is the readout of one face corner.
type VertexSummary struct {
	Corner Corner
	Index  int
	UV     math.Vec2
}

// Label returns the row caption, e.g. "Red vertex".
func (v VertexSummary) Label() string {
	return v.Corner.String() + " vertex"
}

// String formats the row value as "Index: 2, UV: (0, 1)".
func (v VertexSummary) String() string {
	return fmt.Sprintf("Index: %d, UV: %s", v.Index, FormatUV(v.UV))
}

// FormatUV formats a texture coordinate as "(u, v)" with the shortest
// representation of each component.
func FormatUV(uv math.Vec2) string {
	return "(" + formatFloat(uv.X) + ", " + formatFloat(uv.Y) + ")"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// Summary is the textual readout of the inspector state.
type Summary struct {
	HasMesh     bool
	Target      string
	FaceCount   int
	CurrentFace int
	Vertices    [3]VertexSummary
	// Err is set when the current face could not be resolved.
	Err error
}

func newSummary(b *Binding, st State, g *FaceGeometry, err error) Summary {
	if b == nil {
		return Summary{}
	}
	s := Summary{
		HasMesh:     true,
		Target:      b.Target.Path(),
		FaceCount:   st.FaceCount,
		CurrentFace: st.CurrentFace,
		Err:         err,
	}
	if g != nil {
		for i, v := range g.Vertices {
			s.Vertices[i] = VertexSummary{Corner: Corner(i), Index: v.Index, UV: v.UV}
		}
	}
	return s
}

// Lines renders the summary as label/value rows.
func (s Summary) Lines() []string {
	if !s.HasMesh {
		return []string{NoMeshMessage}
	}
	lines := []string{
		fmt.Sprintf("%-16s%s", "Selection", s.Target),
		fmt.Sprintf("%-16s%d", "Number of faces", s.FaceCount),
		fmt.Sprintf("%-16s%d", "Current face", s.CurrentFace),
	}
	if s.Err != nil {
		return append(lines, s.Err.Error())
	}
	for _, v := range s.Vertices {
		lines = append(lines, fmt.Sprintf("%-16s%s", v.Label(), v))
	}
	return lines
}

func (s Summary) String() string {
	return strings.Join(s.Lines(), "\n")
}
