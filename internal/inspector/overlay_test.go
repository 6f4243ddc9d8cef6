package inspector

import (
	"image/color"
	"testing"

	"github.com/Faultbox/meshdebug/pkg/math"
)

func sampleGeometry() *FaceGeometry {
	return &FaceGeometry{
		Face: 1,
		Vertices: [3]Vertex{
			{Index: 2, World: math.Vec3{X: 0, Y: 1}},
			{Index: 1, World: math.Vec3{X: 1}},
			{Index: 3, World: math.Vec3{X: 1, Y: 1}},
		},
	}
}

func TestOverlayRenderNilGeometry(t *testing.T) {
	s := &recordingSurface{handle: 1}
	NewOverlay(DefaultOverlayConfig()).Render(s, nil)
	if len(s.calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(s.calls))
	}

	// A nil surface must not panic either.
	NewOverlay(DefaultOverlayConfig()).Render(nil, sampleGeometry())
}

func TestOverlayRenderDrawCalls(t *testing.T) {
	s := &recordingSurface{handle: 10}
	o := NewOverlay(DefaultOverlayConfig())
	g := sampleGeometry()
	o.Render(s, g)

	if len(s.calls) != 9 {
		t.Fatalf("expected 9 draw calls, got %d", len(s.calls))
	}
	if s.count("marker") != 3 || s.count("line") != 3 || s.count("label") != 3 {
		t.Fatalf("expected 3 of each kind, got %+v", s.calls)
	}

	wantColors := []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	for i := 0; i < 3; i++ {
		m := s.calls[i]
		if m.kind != "marker" {
			t.Fatalf("call %d: expected marker, got %s", i, m.kind)
		}
		if m.a != g.Vertices[i].World {
			t.Errorf("marker %d at %v, expected %v", i, m.a, g.Vertices[i].World)
		}
		if m.color != wantColors[i] {
			t.Errorf("marker %d color %v, expected %v", i, m.color, wantColors[i])
		}
		// 0.2 * handle size is the diameter.
		if m.radius != 1 {
			t.Errorf("marker %d radius %v, expected 1", i, m.radius)
		}
	}

	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for i, e := range edges {
		l := s.calls[3+i]
		if l.kind != "line" {
			t.Fatalf("call %d: expected line, got %s", 3+i, l.kind)
		}
		if l.a != g.Vertices[e[0]].World || l.b != g.Vertices[e[1]].World {
			t.Errorf("edge %d: got %v-%v", i, l.a, l.b)
		}
		if l.dash != 5 {
			t.Errorf("edge %d: expected dash 5, got %v", i, l.dash)
		}
	}

	for i, want := range []string{"2", "1", "3"} {
		l := s.calls[6+i]
		if l.text != want {
			t.Errorf("label %d: expected %q, got %q", i, want, l.text)
		}
		if l.a != g.Vertices[i].World {
			t.Errorf("label %d at %v, expected %v", i, l.a, g.Vertices[i].World)
		}
	}
}

func TestOverlayLabelStyleBuiltOnce(t *testing.T) {
	o := NewOverlay(DefaultOverlayConfig())
	s := &recordingSurface{handle: 1}

	for i := 0; i < 5; i++ {
		o.Render(s, sampleGeometry())
	}
	if o.styleBuilds != 1 {
		t.Errorf("expected style to be built once, got %d", o.styleBuilds)
	}

	first := s.calls[6].style
	for _, c := range s.calls {
		if c.kind == "label" && c.style != first {
			t.Fatal("expected every label to share one style")
		}
	}

	style := o.LabelStyle()
	if style.Width != 40 || style.Height != 20 || style.FontSize != 12 {
		t.Errorf("unexpected style size %+v", style)
	}
	if style.Alignment != AlignMiddleCenter || style.Clip {
		t.Errorf("expected centered overflowing labels, got %+v", style)
	}
}

func TestOverlaySetConfigRebuildsStyle(t *testing.T) {
	o := NewOverlay(DefaultOverlayConfig())
	o.LabelStyle()

	cfg := o.Config()
	cfg.DashSize = 8
	o.SetConfig(cfg)
	o.LabelStyle()
	if o.styleBuilds != 1 {
		t.Errorf("expected non-label change to keep the style, got %d builds", o.styleBuilds)
	}

	cfg.Label.FontSize = 18
	o.SetConfig(cfg)
	if got := o.LabelStyle().FontSize; got != 18 {
		t.Errorf("expected font size 18, got %v", got)
	}
	if o.styleBuilds != 2 {
		t.Errorf("expected a rebuild after label change, got %d builds", o.styleBuilds)
	}
}
