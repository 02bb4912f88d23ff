package placement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/simulation"
	"github.com/drwave-www/mapbounds/internal/domain/entity"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
	"github.com/drwave-www/mapbounds/internal/usecase/constraint"
	"github.com/drwave-www/mapbounds/internal/usecase/minzoom"
	"github.com/drwave-www/mapbounds/internal/usecase/placement"
	"github.com/drwave-www/mapbounds/internal/usecase/viewpad"
)

var lisbon = valueobject.NewBoundingBox(
	valueobject.NewPosition(38.69, -9.23),
	valueobject.NewPosition(38.80, -9.09),
)

func newCoordinator(surface *simulation.Adapter, bounds valueobject.BoundingBox, mode valueobject.FittingMode) (*placement.Coordinator, *constraint.Engine, *constraint.Suppression) {
	logger := zap.NewNop()
	tolerances := config.Default().Tolerances
	suppress := constraint.NewSuppression()
	zoomCalc := minzoom.NewCalculator(logger)
	engine := constraint.NewEngine(
		surface,
		viewpad.NewCalculator(tolerances, logger),
		zoomCalc,
		suppress,
		bounds,
		mode,
		tolerances,
		logger,
	)
	return placement.NewCoordinator(surface, engine, zoomCalc, suppress, logger), engine, suppress
}

func TestCoordinator_PlaceAreaFit(t *testing.T) {
	surface := simulation.New(375, 812, zap.NewNop())
	event := entity.NewEvent("area fit event", lisbon, valueobject.AreaFit, 18)
	coordinator, engine, suppress := newCoordinator(surface, lisbon, valueobject.AreaFit)

	require.NoError(t, coordinator.Place(context.Background(), event))

	t.Run("camera sits at the exact fit", func(t *testing.T) {
		center, ok := surface.CameraPosition()
		require.True(t, ok)
		assert.Equal(t, lisbon.Center(), center)
		assert.Equal(t, surface.ZoomToFit(lisbon, 375, 812), surface.Zoom())
	})

	t.Run("constraints hold the full event bounds", func(t *testing.T) {
		pushed, ok := surface.ConstraintBounds()
		require.True(t, ok)
		assert.Equal(t, lisbon, pushed)
	})

	t.Run("min zoom locks at the just-achieved fit without a preference push", func(t *testing.T) {
		locked, ok := engine.CalculatedMinZoom()
		require.True(t, ok)
		assert.Equal(t, surface.Zoom(), locked)
		assert.Equal(t, surface.MinZoomLevel(), surface.MinZoomPreference())
	})

	t.Run("max zoom comes from the event", func(t *testing.T) {
		assert.Equal(t, 18.0, surface.MaxZoomPreference())
	})

	t.Run("suppression is cleared", func(t *testing.T) {
		assert.False(t, suppress.Suppressed())
	})
}

func TestCoordinator_PlaceWindowFit(t *testing.T) {
	surface := simulation.New(375, 812, zap.NewNop())
	event := entity.NewEvent("window fit event", lisbon, valueobject.WindowFit, 18)
	coordinator, engine, suppress := newCoordinator(surface, lisbon, valueobject.WindowFit)

	require.NoError(t, coordinator.Place(context.Background(), event))

	t.Run("min zoom is locked and pushed before interaction", func(t *testing.T) {
		locked, ok := engine.CalculatedMinZoom()
		require.True(t, ok)
		assert.Equal(t, locked, surface.MinZoomPreference())
		assert.Greater(t, locked, 0.0)
	})

	t.Run("camera animates to the centroid at the tighter fit", func(t *testing.T) {
		center, ok := surface.CameraPosition()
		require.True(t, ok)
		assert.Equal(t, lisbon.Center(), center)

		minimum, _ := engine.CalculatedMinZoom()
		assert.GreaterOrEqual(t, surface.Zoom(), minimum)
	})

	t.Run("viewport does not outgrow the event area", func(t *testing.T) {
		viewport := surface.VisibleRegion()
		assert.LessOrEqual(t, viewport.Height(), lisbon.Height()+1e-9)
		assert.LessOrEqual(t, viewport.Width(), lisbon.Width()+1e-9)
	})

	t.Run("idle after placement shrinks the center range", func(t *testing.T) {
		surface.Tick()

		pushed, ok := surface.ConstraintBounds()
		require.True(t, ok)
		assert.True(t, lisbon.Covers(pushed))
		assert.Less(t, pushed.Width(), lisbon.Width())
		assert.Less(t, pushed.Height(), lisbon.Height())
	})

	t.Run("suppression is cleared", func(t *testing.T) {
		assert.False(t, suppress.Suppressed())
	})

	t.Run("max zoom comes from the event", func(t *testing.T) {
		assert.Equal(t, 18.0, surface.MaxZoomPreference())
	})
}

func TestCoordinator_CancelledAnimation(t *testing.T) {
	surface := simulation.New(375, 812, zap.NewNop())
	event := entity.NewEvent("cancelled event", lisbon, valueobject.WindowFit, 18)
	coordinator, _, suppress := newCoordinator(surface, lisbon, valueobject.WindowFit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, coordinator.Place(ctx, event))

	t.Run("camera never moved", func(t *testing.T) {
		_, ok := surface.CameraPosition()
		assert.False(t, ok)
	})

	t.Run("suppression is cleared on the cancel path", func(t *testing.T) {
		assert.False(t, suppress.Suppressed())
	})

	t.Run("max zoom is left untouched", func(t *testing.T) {
		assert.Equal(t, 22.0, surface.MaxZoomPreference())
	})
}
