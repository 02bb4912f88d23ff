package viewpad

import (
	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
)

// Calculator derives the inward padding applied to event bounds so that the
// camera center stays at least half a viewport away from every edge.
type Calculator struct {
	tolerances config.Tolerances
	logger     *zap.Logger
}

func NewCalculator(tolerances config.Tolerances, logger *zap.Logger) *Calculator {
	return &Calculator{tolerances: tolerances, logger: logger}
}

// Padding returns zero for AreaFit (the area renders edge to edge) and half
// the viewport's geographic span per axis for WindowFit. A viewport spanning
// more than the configured maximum on either axis means the native map is
// not laid out yet; zero is returned so the caller retries on the next idle.
func (c *Calculator) Padding(mode valueobject.FittingMode, viewport valueobject.BoundingBox) valueobject.VisibleRegionPadding {
	if mode == valueobject.AreaFit {
		return valueobject.VisibleRegionPadding{}
	}

	latSpan := viewport.Height()
	lngSpan := viewport.Width()
	if latSpan > c.tolerances.MaxViewportSpan || lngSpan > c.tolerances.MaxViewportSpan {
		c.logger.Debug("viewport not yet initialized, deferring padding",
			zap.Float64("lat_span", latSpan),
			zap.Float64("lng_span", lngSpan),
		)
		return valueobject.VisibleRegionPadding{}
	}

	return valueobject.VisibleRegionPadding{Lat: latSpan / 2, Lng: lngSpan / 2}
}
