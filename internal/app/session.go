// Package app ties the scene, selection, inspector and canvas together into
// a debugging session driven by the REPL or the interactive viewer.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/meshdebug/internal/config"
	"github.com/Faultbox/meshdebug/internal/engine/camera"
	"github.com/Faultbox/meshdebug/internal/engine/canvas"
	"github.com/Faultbox/meshdebug/internal/engine/picking"
	"github.com/Faultbox/meshdebug/internal/inspector"
	"github.com/Faultbox/meshdebug/internal/scene"
	"github.com/Faultbox/meshdebug/pkg/math"
)

var (
	// ErrUnknownObject is returned when a selection name matches nothing.
	ErrUnknownObject = errors.New("unknown object")
	// ErrNothingPicked is returned when no face lies under a pick position.
	ErrNothingPicked = errors.New("no face under cursor")
)

// Session is one inspection session over a loaded scene.
type Session struct {
	cfg        *config.Config
	log        *zap.Logger
	scene      *scene.Scene
	selection  *scene.Selection
	insp       *inspector.Inspector
	cam        *camera.OrbitCamera
	canvas     *canvas.Canvas
	background color.RGBA

	bindErr  error
	dirty    bool
	repaints int
}

// NewSession creates a session over sc using cfg. Nothing is selected until
// Select is called.
func NewSession(cfg *config.Config, sc *scene.Scene, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	overlay, err := cfg.Overlay.InspectorOverlay()
	if err != nil {
		return nil, fmt.Errorf("overlay config: %w", err)
	}
	bg, err := config.ParseColor(cfg.Output.Background)
	if err != nil {
		return nil, fmt.Errorf("output background: %w", err)
	}

	cam := newCamera(cfg.Camera)
	cv, err := canvas.New(cfg.Output.Width, cfg.Output.Height, cam)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		log:        log,
		scene:      sc,
		selection:  scene.NewSelection(),
		cam:        cam,
		canvas:     cv,
		background: bg,
		dirty:      true,
	}
	s.insp = inspector.New(s.selection,
		inspector.WithLogger(log.Named("inspector")),
		inspector.WithOverlayConfig(overlay),
		inspector.WithRepaint(s.requestRepaint),
	)
	s.selection.OnChange(s.onSelectionChange)

	return s, nil
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.FOV = math.Radians(cfg.FOVDeg)
	cam.Yaw = math.Radians(cfg.YawDeg)
	cam.Pitch = math.Radians(cfg.PitchDeg)
	if cfg.Distance > 0 {
		cam.Distance = cfg.Distance
	}
	if cfg.HandlePixels > 0 {
		cam.HandlePixels = cfg.HandlePixels
	}
	return cam
}

// Scene returns the inspected scene.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Inspector returns the session inspector.
func (s *Session) Inspector() *inspector.Inspector { return s.insp }

// Camera returns the view camera.
func (s *Session) Camera() *camera.OrbitCamera { return s.cam }

// Canvas returns the drawing surface.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// Dirty reports whether a repaint was requested since the last Render.
func (s *Session) Dirty() bool { return s.dirty }

// Repaints returns how many repaints were requested so far.
func (s *Session) Repaints() int { return s.repaints }

// Invalidate marks the frame dirty after a camera change.
func (s *Session) Invalidate() { s.dirty = true }

func (s *Session) requestRepaint() {
	s.repaints++
	s.dirty = true
}

func (s *Session) onSelectionChange() {
	s.bindErr = s.insp.OnSelectionChange()
	if s.bindErr == nil && s.cfg.Camera.Distance <= 0 {
		s.frameSelection()
	}
}

// frameSelection fits the camera to the world bounds of the bound mesh.
func (s *Session) frameSelection() {
	b := s.insp.Binding()
	if b == nil || len(b.Mesh().Vertices) == 0 {
		return
	}
	lo := b.ToWorld(b.Mesh().Vertices[0])
	hi := lo
	for _, v := range b.Mesh().Vertices[1:] {
		w := b.ToWorld(v)
		lo, hi = lo.Min(w), hi.Max(w)
	}
	s.cam.FitToBounds(lo, hi)
}

// Select makes the object found by name the active selection. The error
// reports why the new selection could not be bound; the selection still
// changes in that case.
func (s *Session) Select(name string) error {
	obj := s.scene.Find(name)
	if obj == nil {
		return fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	return s.SelectObject(obj)
}

// SelectObject makes obj the active selection. Selecting the active object
// again rebinds it, returning to face 0.
func (s *Session) SelectObject(obj *scene.Object) error {
	s.bindErr = nil
	if obj == s.selection.ActiveObject() {
		s.onSelectionChange()
		return s.bindErr
	}
	s.selection.Select(obj)
	return s.bindErr
}

// CycleSelection selects the next object carrying a mesh, in scene order.
func (s *Session) CycleSelection() error {
	objs := s.scene.MeshObjects()
	if len(objs) == 0 {
		return inspector.ErrNoMeshFound
	}
	next := 0
	active := s.selection.ActiveObject()
	for i, o := range objs {
		if o == active {
			next = (i + 1) % len(objs)
			break
		}
	}
	return s.SelectObject(objs[next])
}

// PickAt jumps to the face under canvas pixel (x, y).
func (s *Session) PickAt(x, y float32) (inspector.State, error) {
	b := s.insp.Binding()
	if b == nil {
		return s.insp.State(), inspector.ErrNoBinding
	}
	ray := picking.ScreenToRay(s.cam, x, y, s.canvas.Width(), s.canvas.Height())
	face, ok := picking.PickFace(ray, b.Mesh(), b.ToWorld)
	if !ok {
		return s.insp.State(), ErrNothingPicked
	}
	return s.insp.JumpTo(face)
}

// Render draws the current frame: optional wireframe, then the overlay.
func (s *Session) Render() error {
	s.canvas.Begin(s.background)
	if b := s.insp.Binding(); b != nil && s.cfg.Output.Wireframe {
		s.canvas.DrawWireframe(b.Mesh(), b.ToWorld)
	}
	s.insp.OnRenderTick(s.canvas)
	s.dirty = false
	return s.canvas.Err()
}

// Snapshot renders a frame and writes it as PNG, or BMP for a .bmp path. An
// empty path is replaced by a name derived from the selection and face
// inside the output dir.
func (s *Session) Snapshot(path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.cfg.Output.Dir, s.snapshotName())
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := s.Render(); err != nil {
		s.log.Warn("frame rendered with errors", zap.Error(err))
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = s.saveBMP(path)
	default:
		err = s.canvas.SavePNG(path)
	}
	if err != nil {
		return "", err
	}
	s.log.Info("snapshot written", zap.String("path", path))
	return path, nil
}

func (s *Session) saveBMP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, s.canvas.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func (s *Session) snapshotName() string {
	name := "none"
	if b := s.insp.Binding(); b != nil {
		name = strings.ReplaceAll(b.Target.Path(), "/", "_")
	}
	return fmt.Sprintf("%s_face%03d.png", name, s.insp.State().CurrentFace)
}
