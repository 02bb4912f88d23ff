package domain

import "errors"

var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrAnimationCancelled = errors.New("camera animation cancelled")
	ErrNoCameraPosition   = errors.New("camera position unavailable")
	ErrSessionNotAttached = errors.New("session not attached to an event")
	ErrUnsupportedFitting = errors.New("unsupported fitting mode")
)
