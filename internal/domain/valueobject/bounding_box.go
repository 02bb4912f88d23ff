package valueobject

type BoundingBox struct {
	Southwest Position
	Northeast Position
}

func NewBoundingBox(southwest, northeast Position) BoundingBox {
	return BoundingBox{Southwest: southwest, Northeast: northeast}
}

func (bb BoundingBox) IsValid() bool {
	return bb.Southwest.IsValid() && bb.Northeast.IsValid() &&
		bb.Southwest.Lat <= bb.Northeast.Lat &&
		bb.Southwest.Lng <= bb.Northeast.Lng
}

// Width is the longitude span in degrees.
func (bb BoundingBox) Width() float64 {
	return bb.Northeast.Lng - bb.Southwest.Lng
}

// Height is the latitude span in degrees.
func (bb BoundingBox) Height() float64 {
	return bb.Northeast.Lat - bb.Southwest.Lat
}

func (bb BoundingBox) Center() Position {
	return Position{
		Lat: (bb.Southwest.Lat + bb.Northeast.Lat) / 2,
		Lng: (bb.Southwest.Lng + bb.Northeast.Lng) / 2,
	}
}

func (bb BoundingBox) Contains(p Position) bool {
	return p.Lat >= bb.Southwest.Lat && p.Lat <= bb.Northeast.Lat &&
		p.Lng >= bb.Southwest.Lng && p.Lng <= bb.Northeast.Lng
}

// Covers reports whether other lies entirely inside bb.
func (bb BoundingBox) Covers(other BoundingBox) bool {
	return bb.Contains(other.Southwest) && bb.Contains(other.Northeast)
}

// Inset shrinks the box inward by the given spans per axis. The result may
// be inverted when a pad exceeds half the corresponding span; callers that
// need a valid box must clamp first.
func (bb BoundingBox) Inset(latPad, lngPad float64) BoundingBox {
	return BoundingBox{
		Southwest: Position{Lat: bb.Southwest.Lat + latPad, Lng: bb.Southwest.Lng + lngPad},
		Northeast: Position{Lat: bb.Northeast.Lat - latPad, Lng: bb.Northeast.Lng - lngPad},
	}
}
