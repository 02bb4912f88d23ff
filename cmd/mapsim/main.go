package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drwave-www/mapbounds/internal/adapter/simulation"
	"github.com/drwave-www/mapbounds/internal/domain/entity"
	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
	"github.com/drwave-www/mapbounds/internal/infrastructure/config"
	"github.com/drwave-www/mapbounds/internal/infrastructure/observability"
	"github.com/drwave-www/mapbounds/internal/usecase/confinement"
)

var (
	flagMode   string
	flagWidth  float64
	flagHeight float64
	flagSWLat  float64
	flagSWLng  float64
	flagNELat  float64
	flagNELng  float64
)

var rootCmd = &cobra.Command{
	Use:   "mapsim",
	Short: "Scripted map session against a simulated map surface",
	Long: `mapsim attaches a confinement session to an event area on a software
map surface, then replays a scripted set of pans and zooms toward each edge,
logging every constraint push and clamp correction.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", "window", "fitting mode: window or area")
	rootCmd.Flags().Float64Var(&flagWidth, "width", 375, "surface width in points")
	rootCmd.Flags().Float64Var(&flagHeight, "height", 812, "surface height in points")
	// Defaults cover the Lisbon demo area.
	rootCmd.Flags().Float64Var(&flagSWLat, "sw-lat", 38.69, "event area southwest latitude")
	rootCmd.Flags().Float64Var(&flagSWLng, "sw-lng", -9.23, "event area southwest longitude")
	rootCmd.Flags().Float64Var(&flagNELat, "ne-lat", 38.80, "event area northeast latitude")
	rootCmd.Flags().Float64Var(&flagNELng, "ne-lng", -9.09, "event area northeast longitude")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var mode valueobject.FittingMode
	switch flagMode {
	case "window":
		mode = valueobject.WindowFit
	case "area":
		mode = valueobject.AreaFit
	default:
		return fmt.Errorf("unknown mode %q", flagMode)
	}

	bounds := valueobject.NewBoundingBox(
		valueobject.NewPosition(flagSWLat, flagSWLng),
		valueobject.NewPosition(flagNELat, flagNELng),
	)
	event := entity.NewEvent("simulated event", bounds, mode, cfg.Camera.MaxZoom)

	surface := simulation.New(flagWidth, flagHeight, logger)
	session := confinement.NewSession(surface, cfg, logger)

	if err := session.Attach(context.Background(), event); err != nil {
		return fmt.Errorf("attaching session: %w", err)
	}
	surface.Tick()

	if mode == valueobject.WindowFit {
		replayGestures(surface, bounds, logger)
	}

	center, _ := surface.CameraPosition()
	logger.Info("simulation finished",
		zap.Float64("final_lat", center.Lat),
		zap.Float64("final_lng", center.Lng),
		zap.Float64("final_zoom", surface.Zoom()),
	)
	return nil
}

// replayGestures drags the camera past every edge of the area and zooms out
// beyond the locked minimum, letting the clamp and zoom preferences push back.
func replayGestures(surface *simulation.Adapter, area valueobject.BoundingBox, logger *zap.Logger) {
	center := area.Center()
	overshoots := []valueobject.Position{
		{Lat: area.Northeast.Lat + area.Height(), Lng: center.Lng},
		{Lat: area.Southwest.Lat - area.Height(), Lng: center.Lng},
		{Lat: center.Lat, Lng: area.Northeast.Lng + area.Width()},
		{Lat: center.Lat, Lng: area.Southwest.Lng - area.Width()},
	}

	for _, target := range overshoots {
		surface.BeginGesture()
		surface.DragTo(target)
		surface.EndGesture()
		surface.Tick()

		pos, _ := surface.CameraPosition()
		logger.Info("drag replayed",
			zap.Float64("attempted_lat", target.Lat),
			zap.Float64("attempted_lng", target.Lng),
			zap.Float64("settled_lat", pos.Lat),
			zap.Float64("settled_lng", pos.Lng),
		)
	}

	surface.BeginGesture()
	surface.PinchTo(surface.MinZoomPreference() - 5)
	surface.EndGesture()
	surface.Tick()
	logger.Info("zoom-out replayed",
		zap.Float64("min_zoom", surface.MinZoomPreference()),
		zap.Float64("settled_zoom", surface.Zoom()),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
