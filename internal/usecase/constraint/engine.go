package constraint

import (
	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/mapview"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
	"github.com/drwave-www/mapbounds/internal/usecase/minzoom"
	"github.com/drwave-www/mapbounds/internal/usecase/viewpad"
)

// minZoomLock is the one-time-computed minimum zoom. The transition is only
// permitted from the unlocked state; recomputing on every cycle would loosen
// the minimum a little each time (the zoom-out spiral).
type minZoomLock struct {
	locked bool
	zoom   float64
}

func (l *minZoomLock) lock(zoom float64) {
	if l.locked {
		return
	}
	l.locked = true
	l.zoom = zoom
}

// Engine keeps the camera-center constraint on the adapter in sync with the
// event area: it derives padded bounds from the current viewport, pushes
// them, and re-applies on camera idle when the viewport changed meaningfully.
// All methods run on the host's map event loop; the engine holds no locks.
type Engine struct {
	adapter    mapview.Adapter
	padding    *viewpad.Calculator
	zoom       *minzoom.Calculator
	suppress   *Suppression
	tolerances config.Tolerances
	logger     *zap.Logger

	eventBounds valueobject.BoundingBox
	mode        valueobject.FittingMode

	lastApplied    *valueobject.BoundingBox
	lastPadding    valueobject.VisibleRegionPadding
	minZoom        minZoomLock
	idleRegistered bool
	skipNextIdle   bool
}

func NewEngine(
	adapter mapview.Adapter,
	padding *viewpad.Calculator,
	zoom *minzoom.Calculator,
	suppress *Suppression,
	eventBounds valueobject.BoundingBox,
	mode valueobject.FittingMode,
	tolerances config.Tolerances,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		adapter:     adapter,
		padding:     padding,
		zoom:        zoom,
		suppress:    suppress,
		eventBounds: eventBounds,
		mode:        mode,
		tolerances:  tolerances,
		logger:      logger,
	}
}

// ApplyConstraints recomputes the padded bounds for the current viewport and
// pushes them to the adapter. Failures are logged and swallowed: a missed
// push is recovered on the next idle cycle, a crash into the host UI is not.
func (e *Engine) ApplyConstraints() {
	e.ensureIdleListener()

	viewport := e.adapter.VisibleRegion()
	padding := e.padding.Padding(e.mode, viewport)
	padded := PaddedBounds(e.eventBounds, padding, e.tolerances.PaddingClampRatio)

	if !padded.IsValid() {
		e.logger.Warn("padded bounds invalid, skipping this application cycle",
			zap.Any("padded", padded),
			zap.Any("padding", padding),
		)
		return
	}

	if e.lastApplied != nil && Similar(*e.lastApplied, padded, e.tolerances.BoundsSimilarity) {
		e.logger.Debug("constraint bounds unchanged, skipping push")
		return
	}

	if err := e.adapter.SetConstraintBounds(padded); err != nil {
		e.logger.Warn("constraint push failed, retrying on next idle", zap.Error(err))
		return
	}

	applied := padded
	e.lastApplied = &applied
	e.lastPadding = padding
	// The adapter fires an idle event for the setBounds we just issued;
	// recomputing on it would loop forever.
	e.skipNextIdle = true

	e.lockMinZoom()

	e.logger.Debug("constraint bounds applied",
		zap.Float64("sw_lat", padded.Southwest.Lat),
		zap.Float64("sw_lng", padded.Southwest.Lng),
		zap.Float64("ne_lat", padded.Northeast.Lat),
		zap.Float64("ne_lng", padded.Northeast.Lng),
	)
}

// lockMinZoom computes the minimum zoom once per lifecycle, always from the
// original event bounds: padded bounds shrink as the user zooms out, and
// fitting those would drift the minimum looser on every recalculation. The
// preference is only pushed in WindowFit; AreaFit disables gestures and the
// exact fit must not be fought by a zoom floor.
func (e *Engine) lockMinZoom() {
	if e.minZoom.locked {
		return
	}
	zoom := e.zoom.MinZoom(
		e.mode,
		e.eventBounds,
		e.adapter.Width(),
		e.adapter.Height(),
		e.adapter.MinZoomLevel(),
		e.adapter.ZoomToFit,
	)
	e.minZoom.lock(zoom)
	if e.mode == valueobject.WindowFit {
		e.adapter.SetMinZoomPreference(zoom)
	}
	e.logger.Info("minimum zoom locked",
		zap.Float64("zoom", zoom),
		zap.Stringer("mode", e.mode),
	)
}

func (e *Engine) ensureIdleListener() {
	if e.idleRegistered {
		return
	}
	e.adapter.AddOnCameraIdleListener(e.onCameraIdle)
	e.idleRegistered = true
}

func (e *Engine) onCameraIdle() {
	if e.skipNextIdle {
		e.skipNextIdle = false
		return
	}
	if e.suppress.Suppressed() {
		return
	}
	padding := e.padding.Padding(e.mode, e.adapter.VisibleRegion())
	if !paddingChanged(e.lastPadding, padding, e.tolerances.PaddingChangeThreshold) {
		return
	}
	e.ApplyConstraints()
}

// Reset re-initializes the engine for a different event area. Attaching the
// same geographic area again keeps the min-zoom lock; only a genuinely new
// area may unlock it.
func (e *Engine) Reset(eventBounds valueobject.BoundingBox, mode valueobject.FittingMode) {
	if mode == e.mode && Similar(eventBounds, e.eventBounds, e.tolerances.BoundsSimilarity) {
		return
	}
	e.eventBounds = eventBounds
	e.mode = mode
	e.lastApplied = nil
	e.lastPadding = valueobject.VisibleRegionPadding{}
	e.minZoom = minZoomLock{}
	e.skipNextIdle = false
}

// EventBounds is the original, unshrunk area the viewport must stay inside.
func (e *Engine) EventBounds() valueobject.BoundingBox {
	return e.eventBounds
}

func (e *Engine) Mode() valueobject.FittingMode {
	return e.mode
}

// CalculatedMinZoom returns the locked minimum zoom, if computed yet.
func (e *Engine) CalculatedMinZoom() (float64, bool) {
	return e.minZoom.zoom, e.minZoom.locked
}
