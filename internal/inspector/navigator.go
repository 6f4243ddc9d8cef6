package inspector

import "fmt"

// State is the navigator position reported back to the UI.
type State struct {
	CurrentFace int
	FaceCount   int
}

func (s State) String() string {
	return fmt.Sprintf("face %d/%d", s.CurrentFace, s.FaceCount)
}

// Navigator holds the current face index with wraparound stepping.
// Invariant: 0 <= current < count when count > 0, otherwise current == 0.
type Navigator struct {
	current int
	count   int
}

// Reset moves to face 0 of a mesh with faceCount faces.
func (n *Navigator) Reset(faceCount int) {
	n.current = 0
	n.count = max(faceCount, 0)
}

// State returns the current position.
func (n *Navigator) State() State {
	return State{CurrentFace: n.current, FaceCount: n.count}
}

// Next steps forward, wrapping from the last face to the first.
func (n *Navigator) Next() (State, error) {
	if n.count == 0 {
		return n.State(), ErrEmptyMesh
	}
	n.current = (n.current + 1) % n.count
	return n.State(), nil
}

// Previous steps back, wrapping from the first face to the last.
func (n *Navigator) Previous() (State, error) {
	if n.count == 0 {
		return n.State(), ErrEmptyMesh
	}
	n.current = ((n.current-1)%n.count + n.count) % n.count
	return n.State(), nil
}

// JumpTo moves to face. Out-of-range requests leave the state unchanged and
// return an error wrapping ErrOutOfRange.
func (n *Navigator) JumpTo(face int) (State, error) {
	if n.count == 0 {
		return n.State(), ErrEmptyMesh
	}
	if face < 0 || face >= n.count {
		return n.State(), fmt.Errorf("jump to %d of %d faces: %w", face, n.count, ErrOutOfRange)
	}
	n.current = face
	return n.State(), nil
}
