package field

// Scheduler is the host's per-frame callback primitive. The engine keeps at
// most one callback pending: Schedule replaces any previous one, Cancel
// drops it. A frame-driven host runs the pending callback once per frame.
type Scheduler interface {
	Schedule(tick func())
	Cancel()
}
