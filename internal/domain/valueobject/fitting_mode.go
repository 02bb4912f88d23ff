package valueobject

// FittingMode selects how the camera is confined to an event area.
type FittingMode int

const (
	// AreaFit shows the entire event area edge to edge; the host normally
	// disables gestures in this mode.
	AreaFit FittingMode = iota
	// WindowFit lets the user pan and zoom while the viewport stays inside
	// the event area.
	WindowFit
)

func (m FittingMode) String() string {
	switch m {
	case AreaFit:
		return "area_fit"
	case WindowFit:
		return "window_fit"
	default:
		return "unknown"
	}
}
