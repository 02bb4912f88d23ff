package constraint

// Suppression gates the engine's corrective pushes while a programmatic
// camera animation is in flight. Single-writer discipline: only the
// placement coordinator toggles it, everyone else reads.
type Suppression struct {
	suppressed bool
}

func NewSuppression() *Suppression {
	return &Suppression{}
}

func (s *Suppression) Suppress() {
	s.suppressed = true
}

func (s *Suppression) Resume() {
	s.suppressed = false
}

func (s *Suppression) Suppressed() bool {
	return s.suppressed
}
