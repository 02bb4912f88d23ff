package simulation

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/mapview"
	"github.com/drwave-www/mapbounds/internal/domain"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

const (
	tileSize        = 256.0
	absoluteMinZoom = 0.0
)

// Adapter is a deterministic software map surface implementing the adapter
// contract with plate-carrée pixel math on 256-pixel tiles. It models a host
// without a pre-commit camera-bounds hook: constraint bounds are stored but
// not enforced during gestures, which is exactly the case the reactive
// gesture clamp exists for.
//
// Camera events are delivered synchronously from the methods that cause
// them, standing in for the host event loop; events a native map would
// deliver on a later loop tick (the idle after a programmatic push) are
// queued and released by Tick.
type Adapter struct {
	logger *zap.Logger

	width  float64
	height float64

	center    valueobject.Position
	zoom      float64
	hasCamera bool

	constraintBounds *valueobject.BoundingBox
	minZoomPref      float64
	maxZoomPref      float64

	moveStarted []func(mapview.MoveReason)
	move        []func()
	idle        []func()

	pendingIdles int
}

var _ mapview.Adapter = (*Adapter)(nil)

func New(width, height float64, logger *zap.Logger) *Adapter {
	return &Adapter{
		logger:      logger,
		width:       width,
		height:      height,
		minZoomPref: absoluteMinZoom,
		maxZoomPref: 22,
	}
}

func (a *Adapter) Width() float64  { return a.width }
func (a *Adapter) Height() float64 { return a.height }

func (a *Adapter) CameraPosition() (valueobject.Position, bool) {
	return a.center, a.hasCamera
}

func (a *Adapter) Zoom() float64 { return a.zoom }

// VisibleRegion derives the geographic rectangle from center, zoom and the
// surface dimensions. Before any camera placement the whole world is
// reported, like a native view before layout.
func (a *Adapter) VisibleRegion() valueobject.BoundingBox {
	if !a.hasCamera {
		return valueobject.BoundingBox{
			Southwest: valueobject.Position{Lat: -90, Lng: -180},
			Northeast: valueobject.Position{Lat: 90, Lng: 180},
		}
	}
	scale := tileSize * math.Pow(2, a.zoom)
	lngSpan := 360 * a.width / scale
	latSpan := 180 * a.height / scale
	// At low zooms the derived spans exceed the world; the corners stay
	// clamped so the region is always a valid box.
	return valueobject.BoundingBox{
		Southwest: valueobject.Position{
			Lat: math.Max(-90, a.center.Lat-latSpan/2),
			Lng: math.Max(-180, a.center.Lng-lngSpan/2),
		},
		Northeast: valueobject.Position{
			Lat: math.Min(90, a.center.Lat+latSpan/2),
			Lng: math.Min(180, a.center.Lng+lngSpan/2),
		},
	}
}

// ZoomToFit is the inverse of VisibleRegion: the largest zoom at which the
// bounds still fit the given surface dimensions on both axes.
func (a *Adapter) ZoomToFit(bounds valueobject.BoundingBox, width, height float64) float64 {
	zoomLng := math.Log2(360 / bounds.Width() * width / tileSize)
	zoomLat := math.Log2(180 / bounds.Height() * height / tileSize)
	return math.Min(zoomLng, zoomLat)
}

func (a *Adapter) SetConstraintBounds(bounds valueobject.BoundingBox) error {
	if !bounds.IsValid() {
		return domain.ErrInvalidBoundingBox
	}
	b := bounds
	a.constraintBounds = &b
	a.logger.Debug("constraint bounds pushed",
		zap.Float64("sw_lat", bounds.Southwest.Lat),
		zap.Float64("sw_lng", bounds.Southwest.Lng),
		zap.Float64("ne_lat", bounds.Northeast.Lat),
		zap.Float64("ne_lng", bounds.Northeast.Lng),
	)
	// A native map fires camera idle for every programmatic setBounds,
	// one loop tick later.
	a.pendingIdles++
	return nil
}

func (a *Adapter) ConstraintBounds() (valueobject.BoundingBox, bool) {
	if a.constraintBounds == nil {
		return valueobject.BoundingBox{}, false
	}
	return *a.constraintBounds, true
}

func (a *Adapter) SetMinZoomPreference(zoom float64) {
	a.minZoomPref = zoom
	a.logger.Debug("min zoom preference pushed", zap.Float64("zoom", zoom))
}

func (a *Adapter) SetMaxZoomPreference(zoom float64) { a.maxZoomPref = zoom }
func (a *Adapter) MinZoomLevel() float64             { return absoluteMinZoom }

func (a *Adapter) MinZoomPreference() float64 { return a.minZoomPref }
func (a *Adapter) MaxZoomPreference() float64 { return a.maxZoomPref }

// MoveCamera repositions instantly and fires no event synchronously, so a
// clamp correction cannot retrigger itself within one move.
func (a *Adapter) MoveCamera(target valueobject.Position) error {
	if !target.IsValid() {
		return domain.ErrInvalidPosition
	}
	a.center = target
	a.hasCamera = true
	return nil
}

func (a *Adapter) AnimateCamera(ctx context.Context, target valueobject.Position, zoom *float64) error {
	if err := ctx.Err(); err != nil {
		return domain.ErrAnimationCancelled
	}
	a.fireMoveStarted(mapview.MoveReasonAnimation)
	a.center = target
	a.hasCamera = true
	if zoom != nil {
		a.zoom = a.clampZoom(*zoom)
	}
	a.fireIdle()
	return nil
}

func (a *Adapter) AnimateCameraToBounds(ctx context.Context, bounds valueobject.BoundingBox, padding int) error {
	if err := ctx.Err(); err != nil {
		return domain.ErrAnimationCancelled
	}
	a.fireMoveStarted(mapview.MoveReasonAnimation)
	a.center = bounds.Center()
	a.hasCamera = true
	a.zoom = a.ZoomToFit(bounds, a.width-2*float64(padding), a.height-2*float64(padding))
	a.fireIdle()
	return nil
}

func (a *Adapter) AddOnCameraMoveStartedListener(fn func(reason mapview.MoveReason)) {
	a.moveStarted = append(a.moveStarted, fn)
}

func (a *Adapter) AddOnCameraMoveListener(fn func()) {
	a.move = append(a.move, fn)
}

func (a *Adapter) AddOnCameraIdleListener(fn func()) {
	a.idle = append(a.idle, fn)
}

// BeginGesture starts a user pan/pinch, as the native gesture recognizer
// would report it.
func (a *Adapter) BeginGesture() {
	a.fireMoveStarted(mapview.MoveReasonGesture)
}

// DragTo moves the camera center during a gesture and delivers the move
// event. No constraint is enforced here; that is the clamp's job.
func (a *Adapter) DragTo(target valueobject.Position) {
	a.center = target
	a.hasCamera = true
	a.fireMove()
}

// PinchTo changes the zoom during a gesture, honoring the pushed zoom
// preferences the way a native surface does, and delivers the move event.
func (a *Adapter) PinchTo(zoom float64) {
	a.zoom = a.clampZoom(zoom)
	a.fireMove()
}

// EndGesture finishes the gesture and delivers the camera idle event.
func (a *Adapter) EndGesture() {
	a.fireIdle()
}

// Tick plays one host event-loop turn, delivering idle events queued by
// programmatic pushes.
func (a *Adapter) Tick() {
	for a.pendingIdles > 0 {
		a.pendingIdles--
		a.fireIdle()
	}
}

func (a *Adapter) clampZoom(zoom float64) float64 {
	return math.Min(math.Max(zoom, a.minZoomPref), a.maxZoomPref)
}

func (a *Adapter) fireMoveStarted(reason mapview.MoveReason) {
	for _, fn := range a.moveStarted {
		fn(reason)
	}
}

func (a *Adapter) fireMove() {
	for _, fn := range a.move {
		fn()
	}
}

func (a *Adapter) fireIdle() {
	for _, fn := range a.idle {
		fn()
	}
}
