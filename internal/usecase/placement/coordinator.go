package placement

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/mapview"
	"github.com/drwave-www/mapbounds/internal/domain"
	"github.com/drwave-www/mapbounds/internal/domain/entity"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/usecase/constraint"
	"github.com/drwave-www/mapbounds/internal/usecase/minzoom"
)

// Coordinator drives the initial camera placement for an event. Each policy
// wraps its animation in a suppression scope so the engine's corrective
// pushes stay quiet while the camera is in programmatic flight; the
// constraints already pushed to the adapter keep holding throughout.
// Concurrent placements are not supported; callers serialize.
type Coordinator struct {
	adapter  mapview.Adapter
	engine   *constraint.Engine
	zoom     *minzoom.Calculator
	suppress *constraint.Suppression
	logger   *zap.Logger
}

func NewCoordinator(
	adapter mapview.Adapter,
	engine *constraint.Engine,
	zoom *minzoom.Calculator,
	suppress *constraint.Suppression,
	logger *zap.Logger,
) *Coordinator {
	return &Coordinator{
		adapter:  adapter,
		engine:   engine,
		zoom:     zoom,
		suppress: suppress,
		logger:   logger,
	}
}

// Place runs the policy matching the event's fitting mode. A cancelled
// animation is not an error: the suppression scope is cleared and the next
// idle or gesture event re-synchronizes state.
func (c *Coordinator) Place(ctx context.Context, event *entity.Event) error {
	switch event.Mode {
	case valueobject.AreaFit:
		return c.placeAreaFit(ctx, event)
	case valueobject.WindowFit:
		return c.placeWindowFit(ctx, event)
	default:
		return fmt.Errorf("placing camera for mode %s: %w", event.Mode, domain.ErrUnsupportedFitting)
	}
}

// placeAreaFit animates the camera to the exact fit of the event bounds,
// then applies constraints (locking the minimum zoom at the just-achieved
// fit) and caps the maximum zoom.
func (c *Coordinator) placeAreaFit(ctx context.Context, event *entity.Event) error {
	err := func() error {
		c.suppress.Suppress()
		defer c.suppress.Resume()
		return c.adapter.AnimateCameraToBounds(ctx, event.Bounds, 0)
	}()
	if err != nil {
		if errors.Is(err, domain.ErrAnimationCancelled) {
			c.logger.Debug("area fit animation cancelled")
			return nil
		}
		return fmt.Errorf("animating to event bounds: %w", err)
	}

	c.engine.ApplyConstraints()
	c.adapter.SetMaxZoomPreference(event.MaxZoom)
	return nil
}

// placeWindowFit applies constraints before moving anything, so the minimum
// zoom holds before the user can interact, then animates to the event
// centroid at the larger of the two aspect-constrained fits.
func (c *Coordinator) placeWindowFit(ctx context.Context, event *entity.Event) error {
	c.engine.ApplyConstraints()

	targetZoom := c.zoom.TargetZoom(
		event.Bounds,
		c.adapter.Width(),
		c.adapter.Height(),
		c.adapter.MinZoomLevel(),
		c.adapter.ZoomToFit,
	)

	err := func() error {
		c.suppress.Suppress()
		defer c.suppress.Resume()
		return c.adapter.AnimateCamera(ctx, event.Bounds.Center(), &targetZoom)
	}()
	if err != nil {
		if errors.Is(err, domain.ErrAnimationCancelled) {
			c.logger.Debug("window fit animation cancelled")
			return nil
		}
		return fmt.Errorf("animating to event centroid: %w", err)
	}

	c.adapter.SetMaxZoomPreference(event.MaxZoom)
	return nil
}
