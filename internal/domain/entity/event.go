package entity

import (
	"github.com/google/uuid"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

// Event is the geographic area a map session is confined to. Loading the
// event catalog is the host's concern; this is the unit a session attaches to.
type Event struct {
	ID      uuid.UUID
	Name    string
	Bounds  valueobject.BoundingBox
	Mode    valueobject.FittingMode
	MaxZoom float64
}

func NewEvent(name string, bounds valueobject.BoundingBox, mode valueobject.FittingMode, maxZoom float64) *Event {
	return &Event{
		ID:      uuid.New(),
		Name:    name,
		Bounds:  bounds,
		Mode:    mode,
		MaxZoom: maxZoom,
	}
}
