package inspector

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdebug/internal/scene"
)

// SelectionQuery reports the externally selected object.
type SelectionQuery interface {
	ActiveObject() *scene.Object
}

// Inspector owns the binder, the navigator and the overlay, and maps
// selection, render and navigation events onto them. It is not safe for
// concurrent use; drive it from one goroutine.
type Inspector struct {
	selection SelectionQuery
	binder    *Binder
	nav       Navigator
	overlay   *Overlay
	log       *zap.Logger
	repaint   func()
}

// New creates an inspector reading the selection from sel. Call
// OnSelectionChange to perform the initial bind.
func New(sel SelectionQuery, opts ...Option) *Inspector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Inspector{
		selection: sel,
		binder:    NewBinder(o.log),
		overlay:   NewOverlay(o.overlay),
		log:       o.log,
		repaint:   o.repaint,
	}
}

// Overlay returns the overlay renderer.
func (i *Inspector) Overlay() *Overlay { return i.overlay }

// Binding returns the active binding, or nil.
func (i *Inspector) Binding() *Binding { return i.binder.Current() }

// State returns the navigator position.
func (i *Inspector) State() State { return i.nav.State() }

// OnSelectionChange rebinds to the current selection and resets navigation
// to face 0 before returning, so no later call observes a stale face index.
// A selection without a usable mesh leaves the inspector unbound and returns
// the reason.
func (i *Inspector) OnSelectionChange() error {
	var target *scene.Object
	if i.selection != nil {
		target = i.selection.ActiveObject()
	}

	b, err := i.binder.Bind(target)
	if err != nil {
		i.nav.Reset(0)
		if errors.Is(err, ErrMalformedMesh) {
			i.log.Warn("selection rejected", zap.Error(err))
		} else {
			i.log.Debug("selection has no mesh", zap.Error(err))
		}
		i.repaint()
		return err
	}

	i.nav.Reset(b.FaceCount())
	if b.FaceCount() == 0 {
		i.log.Info("selected mesh is empty", zap.String("target", b.Target.Path()))
	}
	i.repaint()
	return nil
}

// Geometry resolves the current face against the live transform.
func (i *Inspector) Geometry() (*FaceGeometry, error) {
	return Resolve(i.binder.Current(), i.nav.State().CurrentFace)
}

// OnRenderTick draws the overlay for the current face onto s. With no
// binding or an empty mesh nothing is drawn.
func (i *Inspector) OnRenderTick(s Surface) {
	g, err := i.Geometry()
	if err != nil {
		return
	}
	i.overlay.Render(s, g)
}

// Summary returns the readout for the current face.
func (i *Inspector) Summary() Summary {
	g, err := i.Geometry()
	return newSummary(i.binder.Current(), i.nav.State(), g, err)
}

// Next steps to the following face.
func (i *Inspector) Next() (State, error) {
	return i.command("next", i.nav.Next)
}

// Previous steps to the preceding face.
func (i *Inspector) Previous() (State, error) {
	return i.command("previous", i.nav.Previous)
}

// JumpTo moves to face. Rejected jumps keep the current face and return an
// error wrapping ErrOutOfRange or ErrEmptyMesh.
func (i *Inspector) JumpTo(face int) (State, error) {
	return i.command("jump", func() (State, error) { return i.nav.JumpTo(face) })
}

func (i *Inspector) command(name string, run func() (State, error)) (State, error) {
	if i.binder.Current() == nil {
		return i.nav.State(), ErrNoBinding
	}

	before := i.nav.State()
	st, err := run()
	if err != nil {
		i.log.Debug("command rejected", zap.String("command", name), zap.Error(err))
		return st, err
	}
	if st != before {
		i.repaint()
	}
	return st, nil
}
