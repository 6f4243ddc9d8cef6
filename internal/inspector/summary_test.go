package inspector

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/meshdebug/pkg/math"
)

func TestFormatUV(t *testing.T) {
	tests := []struct {
		uv   math.Vec2
		want string
	}{
		{math.Vec2{X: 0, Y: 0}, "(0, 0)"},
		{math.Vec2{X: 1, Y: 0}, "(1, 0)"},
		{math.Vec2{X: 0.5, Y: 0.25}, "(0.5, 0.25)"},
		{math.Vec2{X: 0.1, Y: -2}, "(0.1, -2)"},
	}
	for _, tt := range tests {
		if got := FormatUV(tt.uv); got != tt.want {
			t.Errorf("FormatUV(%v) = %q, want %q", tt.uv, got, tt.want)
		}
	}
}

func TestVertexSummaryString(t *testing.T) {
	v := VertexSummary{Corner: CornerGreen, Index: 7, UV: math.Vec2{X: 1, Y: 0.5}}
	if got := v.Label(); got != "Green vertex" {
		t.Errorf("unexpected label %q", got)
	}
	if got := v.String(); got != "Index: 7, UV: (1, 0.5)" {
		t.Errorf("unexpected value %q", got)
	}
}

func TestSummaryLinesNoMesh(t *testing.T) {
	lines := Summary{}.Lines()
	if len(lines) != 1 || lines[0] != NoMeshMessage {
		t.Errorf("expected only the no-mesh message, got %v", lines)
	}
}

func TestSummaryLinesWithError(t *testing.T) {
	s := Summary{HasMesh: true, Target: "ghost", Err: ErrEmptyMesh}
	out := s.String()
	if !strings.Contains(out, ErrEmptyMesh.Error()) {
		t.Errorf("expected error line, got %q", out)
	}
	if strings.Contains(out, "Red vertex") {
		t.Errorf("expected no vertex rows, got %q", out)
	}
	if !errors.Is(s.Err, ErrEmptyMesh) {
		t.Error("expected error to be kept")
	}
}
