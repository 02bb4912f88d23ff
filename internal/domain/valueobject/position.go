package valueobject

import "math"

type Position struct {
	Lat float64
	Lng float64
}

func NewPosition(lat, lng float64) Position {
	return Position{Lat: lat, Lng: lng}
}

func (p Position) IsValid() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0) &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}
