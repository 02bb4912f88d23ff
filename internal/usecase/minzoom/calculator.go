package minzoom

import (
	"math"

	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

// ZoomToFitFunc is the native camera-for-bounds computation supplied by the
// map adapter.
type ZoomToFitFunc func(bounds valueobject.BoundingBox, width, height float64) float64

// Calculator derives the minimum zoom that satisfies a fitting mode's
// policy. It is a pure function of its inputs; lock-once semantics live in
// the constraint engine.
type Calculator struct {
	logger *zap.Logger
}

func NewCalculator(logger *zap.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// MinZoom returns the minimum zoom for the given mode, event bounds and
// screen dimensions. Degenerate geometry falls back to the adapter's
// absolute minimum instead of failing: the view may simply not be laid out
// yet and the next idle cycle retries.
func (c *Calculator) MinZoom(
	mode valueobject.FittingMode,
	eventBounds valueobject.BoundingBox,
	screenWidth, screenHeight, fallback float64,
	zoomToFit ZoomToFitFunc,
) float64 {
	if degenerate(eventBounds, screenWidth, screenHeight) {
		c.logger.Warn("degenerate geometry, falling back to adapter minimum zoom",
			zap.Float64("screen_width", screenWidth),
			zap.Float64("screen_height", screenHeight),
			zap.Float64("event_width", eventBounds.Width()),
			zap.Float64("event_height", eventBounds.Height()),
			zap.Float64("fallback", fallback),
		)
		return fallback
	}

	switch mode {
	case valueobject.AreaFit:
		return zoomToFit(eventBounds, screenWidth, screenHeight)
	case valueobject.WindowFit:
		return zoomToFit(WindowFitBounds(eventBounds, screenWidth, screenHeight), screenWidth, screenHeight)
	default:
		c.logger.Warn("unknown fitting mode, falling back to adapter minimum zoom",
			zap.Stringer("mode", mode))
		return fallback
	}
}

// TargetZoom is the initial zoom for WindowFit placement: the larger of the
// width-constrained and height-constrained fits, so both dimensions fit the
// viewport simultaneously.
func (c *Calculator) TargetZoom(
	eventBounds valueobject.BoundingBox,
	screenWidth, screenHeight, fallback float64,
	zoomToFit ZoomToFitFunc,
) float64 {
	if degenerate(eventBounds, screenWidth, screenHeight) {
		c.logger.Warn("degenerate geometry, using adapter minimum zoom as target",
			zap.Float64("fallback", fallback))
		return fallback
	}
	screenAspect := screenWidth / screenHeight
	widthFit := zoomToFit(fitWidthBounds(eventBounds, screenAspect), screenWidth, screenHeight)
	heightFit := zoomToFit(fitHeightBounds(eventBounds, screenAspect), screenWidth, screenHeight)
	return math.Max(widthFit, heightFit)
}

// WindowFitBounds builds a synthetic bounds matching the screen's aspect
// ratio exactly, so fitting it fills the viewport without showing anything
// outside the event area. The constraining dimension is kept in full; the
// other is shrunk around the event's center.
func WindowFitBounds(eventBounds valueobject.BoundingBox, screenWidth, screenHeight float64) valueobject.BoundingBox {
	eventAspect := eventBounds.Width() / eventBounds.Height()
	screenAspect := screenWidth / screenHeight
	if eventAspect > screenAspect {
		// Area is wider than the screen: height constrains.
		return fitHeightBounds(eventBounds, screenAspect)
	}
	return fitWidthBounds(eventBounds, screenAspect)
}

// fitHeightBounds keeps the event's full height and narrows the width to
// height*screenAspect around the longitude center.
func fitHeightBounds(eventBounds valueobject.BoundingBox, screenAspect float64) valueobject.BoundingBox {
	halfWidth := eventBounds.Height() * screenAspect / 2
	centerLng := eventBounds.Center().Lng
	return valueobject.BoundingBox{
		Southwest: valueobject.Position{Lat: eventBounds.Southwest.Lat, Lng: centerLng - halfWidth},
		Northeast: valueobject.Position{Lat: eventBounds.Northeast.Lat, Lng: centerLng + halfWidth},
	}
}

// fitWidthBounds keeps the event's full width and narrows the height to
// width/screenAspect around the latitude center.
func fitWidthBounds(eventBounds valueobject.BoundingBox, screenAspect float64) valueobject.BoundingBox {
	halfHeight := eventBounds.Width() / screenAspect / 2
	centerLat := eventBounds.Center().Lat
	return valueobject.BoundingBox{
		Southwest: valueobject.Position{Lat: centerLat - halfHeight, Lng: eventBounds.Southwest.Lng},
		Northeast: valueobject.Position{Lat: centerLat + halfHeight, Lng: eventBounds.Northeast.Lng},
	}
}

func degenerate(eventBounds valueobject.BoundingBox, screenWidth, screenHeight float64) bool {
	return screenWidth <= 0 || screenHeight <= 0 ||
		eventBounds.Width() <= 0 || eventBounds.Height() <= 0
}
