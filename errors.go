package drawgl

import "errors"

// Errors returned by the Drawer when validation is enabled.
// They are wrapped with details about the offending buffer.
var (
	ErrCoordsShape  = errors.New("drawgl: invalid coordinate buffer shape")
	ErrElemsShape   = errors.New("drawgl: invalid element buffer shape")
	ErrIndexRange   = errors.New("drawgl: element index out of range")
	ErrNormalsShape = errors.New("drawgl: invalid normal buffer shape")
	ErrColorsShape  = errors.New("drawgl: invalid color buffer shape")
	ErrAlphaRange   = errors.New("drawgl: alpha out of range [0, 1]")

	// ErrPickingUnsupported is returned by the pick methods when the
	// backend does not implement Namer.
	ErrPickingUnsupported = errors.New("drawgl: backend does not support picking")
)
