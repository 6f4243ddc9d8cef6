package scene

// Selection tracks the active object and notifies listeners when it changes.
type Selection struct {
	active    *Object
	listeners []func()
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// ActiveObject returns the selected object, or nil.
func (s *Selection) ActiveObject() *Object {
	return s.active
}

// Select makes obj the active object. Listeners run synchronously, in
// registration order, only when the selection actually changes.
func (s *Selection) Select(obj *Object) {
	if s.active == obj {
		return
	}
	s.active = obj
	for _, fn := range s.listeners {
		fn()
	}
}

// OnChange registers a listener for selection changes.
func (s *Selection) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}
