package constraint

import (
	"math"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

// PaddedBounds shrinks the event bounds inward by the padding, clamping each
// component to clampRatio of the event span on that axis first. With the
// ratio below 0.5 the result keeps a non-empty valid center region even when
// the viewport is almost as large as the event area.
func PaddedBounds(eventBounds valueobject.BoundingBox, padding valueobject.VisibleRegionPadding, clampRatio float64) valueobject.BoundingBox {
	latPad := math.Min(padding.Lat, clampRatio*eventBounds.Height())
	lngPad := math.Min(padding.Lng, clampRatio*eventBounds.Width())
	return eventBounds.Inset(latPad, lngPad)
}

// Similar reports whether two bounds are close enough to count as the same
// constraint push: the summed absolute corner difference stays within the
// tolerance on both axes. This is what breaks the recalculate-apply-idle
// loop that native setBounds-triggered idle callbacks would otherwise feed.
// The limit carries a sliver of relative slack: summed coordinate differences
// that nominally equal the tolerance can land a few ulps above it depending
// on where on the globe the corners sit, and those must still debounce.
func Similar(a, b valueobject.BoundingBox, tolerance float64) bool {
	limit := tolerance * (1 + 1e-9)
	latDiff := math.Abs(a.Southwest.Lat-b.Southwest.Lat) + math.Abs(a.Northeast.Lat-b.Northeast.Lat)
	lngDiff := math.Abs(a.Southwest.Lng-b.Southwest.Lng) + math.Abs(a.Northeast.Lng-b.Northeast.Lng)
	return latDiff <= limit && lngDiff <= limit
}

func paddingChanged(prev, next valueobject.VisibleRegionPadding, threshold float64) bool {
	return axisChanged(prev.Lat, next.Lat, threshold) || axisChanged(prev.Lng, next.Lng, threshold)
}

func axisChanged(prev, next, threshold float64) bool {
	if prev == 0 {
		return next != 0
	}
	return math.Abs(next-prev)/math.Abs(prev) > threshold
}
