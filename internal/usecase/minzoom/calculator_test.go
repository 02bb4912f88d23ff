package minzoom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/usecase/minzoom"
)

func box(swLat, swLng, neLat, neLng float64) valueobject.BoundingBox {
	return valueobject.NewBoundingBox(
		valueobject.NewPosition(swLat, swLng),
		valueobject.NewPosition(neLat, neLng),
	)
}

func TestCalculator_MinZoom(t *testing.T) {
	calc := minzoom.NewCalculator(zap.NewNop())

	t.Run("area fit delegates with the full event bounds", func(t *testing.T) {
		event := box(38.69, -9.23, 38.80, -9.09)

		var fitted valueobject.BoundingBox
		zoom := calc.MinZoom(valueobject.AreaFit, event, 375, 812, 0,
			func(b valueobject.BoundingBox, w, h float64) float64 {
				fitted = b
				return 11.5
			})

		assert.Equal(t, 11.5, zoom)
		assert.Equal(t, event, fitted)
	})

	t.Run("window fit uses the aspect-matched synthetic bounds", func(t *testing.T) {
		event := box(38.70, -9.20, 38.80, -9.15)

		var fitted valueobject.BoundingBox
		calc.MinZoom(valueobject.WindowFit, event, 375, 812, 0,
			func(b valueobject.BoundingBox, w, h float64) float64 {
				fitted = b
				return 13
			})

		assert.Equal(t, minzoom.WindowFitBounds(event, 375, 812), fitted)
	})

	t.Run("degenerate screen falls back without calling the delegate", func(t *testing.T) {
		event := box(38.69, -9.23, 38.80, -9.09)

		zoom := calc.MinZoom(valueobject.WindowFit, event, 0, 812, 2.5,
			func(valueobject.BoundingBox, float64, float64) float64 {
				t.Fatal("delegate must not be called for degenerate geometry")
				return 0
			})

		assert.Equal(t, 2.5, zoom)
	})

	t.Run("degenerate event area falls back", func(t *testing.T) {
		flat := box(38.70, -9.20, 38.70, -9.09)

		zoom := calc.MinZoom(valueobject.AreaFit, flat, 375, 812, 1.0,
			func(valueobject.BoundingBox, float64, float64) float64 { return 17 })

		assert.Equal(t, 1.0, zoom)
	})
}

func TestWindowFitBounds_DimensionSelection(t *testing.T) {
	// 0.10 degrees of latitude by 0.05 of longitude on a portrait screen:
	// the area is wider than the screen relative to its height, so the
	// synthetic bounds keep the full height and narrow the width.
	event := box(38.70, -9.20, 38.80, -9.15)

	synthetic := minzoom.WindowFitBounds(event, 375, 812)

	assert.InDelta(t, event.Height(), synthetic.Height(), 1e-12)
	assert.Less(t, synthetic.Width(), event.Width())

	screenAspect := 375.0 / 812.0
	assert.InDelta(t, event.Height()*screenAspect, synthetic.Width(), 1e-12)
	assert.InDelta(t, event.Center().Lng, synthetic.Center().Lng, 1e-12)
}

func TestWindowFitBounds_TallArea(t *testing.T) {
	// A very tall, thin area on a landscape screen: width constrains.
	event := box(38.0, -9.20, 39.0, -9.15)

	synthetic := minzoom.WindowFitBounds(event, 812, 375)

	assert.InDelta(t, event.Width(), synthetic.Width(), 1e-12)
	assert.Less(t, synthetic.Height(), event.Height())
	assert.InDelta(t, event.Center().Lat, synthetic.Center().Lat, 1e-12)
}

func TestCalculator_TargetZoom(t *testing.T) {
	calc := minzoom.NewCalculator(zap.NewNop())
	event := box(38.70, -9.20, 38.80, -9.15)

	t.Run("picks the larger of the two constrained fits", func(t *testing.T) {
		zoom := calc.TargetZoom(event, 375, 812, 0,
			func(b valueobject.BoundingBox, w, h float64) float64 {
				// Narrower synthetic bounds fit at higher zoom.
				return 20 - b.Width()*100
			})

		widthKept := 20 - event.Width()*100
		assert.Greater(t, zoom, widthKept)
	})

	t.Run("degenerate geometry falls back", func(t *testing.T) {
		zoom := calc.TargetZoom(event, 375, 0, 3.0,
			func(valueobject.BoundingBox, float64, float64) float64 { return 17 })
		assert.Equal(t, 3.0, zoom)
	})
}
