package entity

// DemoStatus is the lifecycle status of a demo request.
type DemoStatus string

const (
	// StatusPlanned is the initial status set by sales intake.
	StatusPlanned DemoStatus = "planned"
	// StatusRescheduled marks a demo whose date moved; it must be placed
	// again before delivery.
	StatusRescheduled DemoStatus = "rescheduled"
	// StatusCancelled marks a withdrawn demo. Cancellation is a status, not a
	// removal; an assigned cancelled demo keeps its grid cell.
	StatusCancelled DemoStatus = "cancelled"
	// StatusGiven marks a delivered demo. Assignment fields are retained for
	// reporting.
	StatusGiven DemoStatus = "given"
)

// Known reports whether s is one of the recognized statuses. Requests with an
// unknown status are treated as read-only.
func (s DemoStatus) Known() bool {
	switch s {
	case StatusPlanned, StatusRescheduled, StatusCancelled, StatusGiven:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle permits moving from s to target.
// The only transition the scheduling engine performs on its own is
// rescheduled -> planned, on successful placement; the rest are driven by the
// upstream workflow.
func (s DemoStatus) CanTransition(target DemoStatus) bool {
	if !s.Known() || !target.Known() {
		return false
	}
	switch target {
	case StatusGiven:
		// delivery completion is legal from any known status
		return true
	case StatusRescheduled:
		return s == StatusPlanned
	case StatusPlanned:
		return s == StatusRescheduled
	case StatusCancelled:
		return s == StatusPlanned || s == StatusRescheduled
	}
	return false
}
