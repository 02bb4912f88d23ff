package gesture

import (
	"math"

	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/mapview"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
)

// Controller clamps the camera center during user gestures so the viewport
// never leaves the event area. Corrections are instant repositions with no
// animation: the edge must feel like a stiff wall, not a rubber band. The
// clamp never re-checks synchronously after a correction; the next move
// event does.
type Controller struct {
	adapter    mapview.Adapter
	areaBounds func() valueobject.BoundingBox
	tolerances config.Tolerances
	logger     *zap.Logger

	inProgress bool
	lastValid  *valueobject.Position
	registered bool
}

// NewController builds a controller reading the confined area through
// areaBounds, so a mid-session reset is picked up without rewiring.
func NewController(adapter mapview.Adapter, areaBounds func() valueobject.BoundingBox, tolerances config.Tolerances, logger *zap.Logger) *Controller {
	return &Controller{
		adapter:    adapter,
		areaBounds: areaBounds,
		tolerances: tolerances,
		logger:     logger,
	}
}

// Register subscribes the controller to the adapter's camera events, once.
func (c *Controller) Register() {
	if c.registered {
		return
	}
	c.adapter.AddOnCameraMoveStartedListener(c.onMoveStarted)
	c.adapter.AddOnCameraMoveListener(c.onMove)
	c.adapter.AddOnCameraIdleListener(c.onIdle)
	c.registered = true
}

func (c *Controller) onMoveStarted(reason mapview.MoveReason) {
	if reason == mapview.MoveReasonGesture {
		c.inProgress = true
		return
	}
	// Programmatic motion: back to idle, remember where the camera is.
	c.inProgress = false
	c.recordPosition()
}

func (c *Controller) onMove() {
	if !c.inProgress {
		return
	}

	area := c.areaBounds()
	viewport := c.adapter.VisibleRegion()
	if area.Covers(viewport) {
		c.recordPosition()
		return
	}

	center, ok := c.adapter.CameraPosition()
	if !ok {
		if c.lastValid == nil {
			return
		}
		center = *c.lastValid
	}

	clamped := ClampCenter(center, viewport, area)
	if math.Abs(clamped.Lat-center.Lat) <= c.tolerances.ClampEpsilon &&
		math.Abs(clamped.Lng-center.Lng) <= c.tolerances.ClampEpsilon {
		return
	}

	if err := c.adapter.MoveCamera(clamped); err != nil {
		c.logger.Warn("camera clamp reposition failed", zap.Error(err))
		return
	}
	c.logger.Debug("camera clamped to area edge",
		zap.Float64("from_lat", center.Lat),
		zap.Float64("from_lng", center.Lng),
		zap.Float64("to_lat", clamped.Lat),
		zap.Float64("to_lng", clamped.Lng),
	)
}

func (c *Controller) onIdle() {
	if !c.inProgress {
		return
	}
	c.inProgress = false
	c.recordPosition()
}

func (c *Controller) recordPosition() {
	if pos, ok := c.adapter.CameraPosition(); ok {
		p := pos
		c.lastValid = &p
	}
}

// GestureInProgress reports whether a user gesture is currently being
// tracked.
func (c *Controller) GestureInProgress() bool {
	return c.inProgress
}

// ClampCenter restricts the camera center so a viewport of the given size
// stays inside the area: per axis the valid range is the area shrunk by half
// the viewport extent. An inverted range means the viewport outgrew the area
// on that axis and the center degenerates to the area's centroid.
func ClampCenter(center valueobject.Position, viewport, area valueobject.BoundingBox) valueobject.Position {
	halfLat := viewport.Height() / 2
	halfLng := viewport.Width() / 2
	return valueobject.Position{
		Lat: clampAxis(center.Lat, area.Southwest.Lat+halfLat, area.Northeast.Lat-halfLat, area.Center().Lat),
		Lng: clampAxis(center.Lng, area.Southwest.Lng+halfLng, area.Northeast.Lng-halfLng, area.Center().Lng),
	}
}

func clampAxis(v, lo, hi, centroid float64) float64 {
	if lo > hi {
		return centroid
	}
	return math.Min(math.Max(v, lo), hi)
}
