package inspector

import "errors"

// Inspector errors. None of them is fatal: the inspector stays usable and
// the UI shows the matching message.
var (
	// ErrNoMeshFound means the selection carries neither a static nor a skinned mesh.
	ErrNoMeshFound = errors.New("selection contains no mesh")
	// ErrMalformedMesh means the selected mesh breaks its index invariants.
	ErrMalformedMesh = errors.New("malformed mesh")
	// ErrEmptyMesh means the bound mesh has no faces.
	ErrEmptyMesh = errors.New("mesh has no faces")
	// ErrOutOfRange means a face index outside [0, faceCount).
	ErrOutOfRange = errors.New("face index out of range")
	// ErrNoBinding means geometry was requested with no active selection.
	ErrNoBinding = errors.New("no active binding")
)
