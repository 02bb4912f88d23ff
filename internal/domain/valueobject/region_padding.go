package valueobject

// VisibleRegionPadding is the inward shrink, per axis in degrees, applied to
// event bounds to obtain the allowed camera-center range.
type VisibleRegionPadding struct {
	Lat float64
	Lng float64
}

func (p VisibleRegionPadding) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}
