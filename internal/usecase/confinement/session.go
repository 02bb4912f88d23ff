package confinement

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/mapview"
	"github.com/drwave-www/mapbounds/internal/domain"
	"github.com/drwave-www/mapbounds/internal/domain/entity"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
	"github.com/drwave-www/mapbounds/internal/usecase/constraint"
	"github.com/drwave-www/mapbounds/internal/usecase/gesture"
	"github.com/drwave-www/mapbounds/internal/usecase/minzoom"
	"github.com/drwave-www/mapbounds/internal/usecase/placement"
	"github.com/drwave-www/mapbounds/internal/usecase/viewpad"
)

// Session owns the confinement state for one map view. Attaching an event
// wires the constraint engine, gesture clamp and placement to the adapter;
// attaching a different event area resets the per-lifecycle state, including
// the min-zoom lock.
type Session struct {
	adapter  mapview.Adapter
	cfg      *config.Config
	logger   *zap.Logger
	suppress *constraint.Suppression
	zoom     *minzoom.Calculator
	padding  *viewpad.Calculator

	engine      *constraint.Engine
	gestures    *gesture.Controller
	coordinator *placement.Coordinator
	event       *entity.Event
}

func NewSession(adapter mapview.Adapter, cfg *config.Config, logger *zap.Logger) *Session {
	return &Session{
		adapter:  adapter,
		cfg:      cfg,
		logger:   logger,
		suppress: constraint.NewSuppression(),
		zoom:     minzoom.NewCalculator(logger),
		padding:  viewpad.NewCalculator(cfg.Tolerances, logger),
	}
}

// Attach confines the map view to the event's area and places the camera
// according to the event's fitting mode.
func (s *Session) Attach(ctx context.Context, event *entity.Event) error {
	if !event.Bounds.IsValid() {
		return fmt.Errorf("attaching event %q: %w", event.Name, domain.ErrInvalidBoundingBox)
	}

	if s.engine == nil {
		s.engine = constraint.NewEngine(
			s.adapter, s.padding, s.zoom, s.suppress,
			event.Bounds, event.Mode,
			s.cfg.Tolerances, s.logger,
		)
		s.gestures = gesture.NewController(s.adapter, s.engine.EventBounds, s.cfg.Tolerances, s.logger)
		s.gestures.Register()
		s.coordinator = placement.NewCoordinator(s.adapter, s.engine, s.zoom, s.suppress, s.logger)
	} else {
		s.engine.Reset(event.Bounds, event.Mode)
	}
	s.event = event

	s.logger.Info("map session attached",
		zap.String("event_id", event.ID.String()),
		zap.String("event", event.Name),
		zap.Stringer("mode", event.Mode),
	)

	return s.coordinator.Place(ctx, event)
}

// Reapply forces a constraint recomputation, for hosts whose layout changed
// outside the camera-idle flow.
func (s *Session) Reapply() error {
	if s.engine == nil {
		return domain.ErrSessionNotAttached
	}
	s.engine.ApplyConstraints()
	return nil
}

func (s *Session) Event() *entity.Event {
	return s.event
}

func (s *Session) Engine() *constraint.Engine {
	return s.engine
}
