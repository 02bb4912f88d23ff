package mapview

import (
	"context"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/mapview_mocks.go -package=mocks

// MoveReason classifies what started a camera movement.
type MoveReason int

const (
	MoveReasonGesture MoveReason = iota
	MoveReasonAnimation
	MoveReasonAPI
)

func (r MoveReason) String() string {
	switch r {
	case MoveReasonGesture:
		return "gesture"
	case MoveReasonAnimation:
		return "animation"
	case MoveReasonAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Adapter is the boundary to the native map surface. The host implements it;
// the engine only pushes constraint commands through it and subscribes to its
// camera lifecycle events. Animation calls block until the native animation
// finishes or is cancelled and return domain.ErrAnimationCancelled in the
// latter case.
type Adapter interface {
	VisibleRegion() valueobject.BoundingBox
	Width() float64
	Height() float64
	CameraPosition() (valueobject.Position, bool)

	SetConstraintBounds(bounds valueobject.BoundingBox) error
	SetMinZoomPreference(zoom float64)
	SetMaxZoomPreference(zoom float64)
	MinZoomLevel() float64

	// MoveCamera repositions instantly, without animation.
	MoveCamera(target valueobject.Position) error
	AnimateCamera(ctx context.Context, target valueobject.Position, zoom *float64) error
	AnimateCameraToBounds(ctx context.Context, bounds valueobject.BoundingBox, padding int) error

	AddOnCameraMoveStartedListener(fn func(reason MoveReason))
	AddOnCameraMoveListener(fn func())
	AddOnCameraIdleListener(fn func())

	// ZoomToFit is the native camera-for-bounds computation.
	ZoomToFit(bounds valueobject.BoundingBox, width, height float64) float64
}
