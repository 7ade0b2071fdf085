package traffic

import (
	"fmt"
	"testing"
)

// TestObserver is a mock observer for testing that captures all observer
// events
type TestObserver struct {
	StateChanges []StateChangeEvent
	Discharges   []DischargeEvent
	Enqueues     []EnqueueEvent
	Rejections   []RejectionEvent
	Skips        []SkipEvent
	Extensions   []ExtensionEvent
}

type StateChangeEvent struct {
	From TrafficState
	To   TrafficState
	Step uint32
}

type DischargeEvent struct {
	Vehicle Vehicle
	Wait    uint32
	Step    uint32
}

type EnqueueEvent struct {
	Vehicle Vehicle
	Road    Direction
	Lane    Lane
}

type RejectionEvent struct {
	VehicleID string
	Err       error
}

type SkipEvent struct {
	Phase Phase
	Skips uint32
}

type ExtensionEvent struct {
	State     TrafficState
	Extension uint32
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		StateChanges: make([]StateChangeEvent, 0),
		Discharges:   make([]DischargeEvent, 0),
		Enqueues:     make([]EnqueueEvent, 0),
		Rejections:   make([]RejectionEvent, 0),
		Skips:        make([]SkipEvent, 0),
		Extensions:   make([]ExtensionEvent, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnStateChange(from TrafficState, to TrafficState, step uint32) {
	o.StateChanges = append(o.StateChanges, StateChangeEvent{From: from, To: to, Step: step})
}

func (o *TestObserver) OnVehicleDischarged(v Vehicle, wait uint32, step uint32) {
	o.Discharges = append(o.Discharges, DischargeEvent{Vehicle: v, Wait: wait, Step: step})
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnVehicleEnqueued(v Vehicle, road Direction, lane Lane) {
	o.Enqueues = append(o.Enqueues, EnqueueEvent{Vehicle: v, Road: road, Lane: lane})
}

func (o *TestObserver) OnVehicleRejected(vehicleID string, err error) {
	o.Rejections = append(o.Rejections, RejectionEvent{VehicleID: vehicleID, Err: err})
}

func (o *TestObserver) OnPhaseSkipped(phase Phase, skips uint32) {
	o.Skips = append(o.Skips, SkipEvent{Phase: phase, Skips: skips})
}

func (o *TestObserver) OnGreenExtended(state TrafficState, extension uint32) {
	o.Extensions = append(o.Extensions, ExtensionEvent{State: state, Extension: extension})
}

// Reset clears all captured events
func (o *TestObserver) Reset() {
	o.StateChanges = o.StateChanges[:0]
	o.Discharges = o.Discharges[:0]
	o.Enqueues = o.Enqueues[:0]
	o.Rejections = o.Rejections[:0]
	o.Skips = o.Skips[:0]
	o.Extensions = o.Extensions[:0]
}

// AssertState fails the test if the controller is not in the expected state
func AssertState(t *testing.T, c *Controller, expected TrafficState) {
	t.Helper()
	if c.State() != expected {
		t.Errorf("Expected state %s, got %s (step %d)", expected, c.State(), c.CurrentStep())
	}
}

// StepN advances the controller n times and returns all discharged
// identifiers in order
func StepN(c *Controller, n int) []string {
	ids := make([]string, 0)
	for i := 0; i < n; i++ {
		res := c.Step()
		ids = append(ids, res.Discharged...)
	}
	return ids
}

// StepUntilState advances the controller until it reaches the expected
// state, failing the test after maxSteps. It returns the number of steps
// taken.
func StepUntilState(t *testing.T, c *Controller, expected TrafficState, maxSteps int) int {
	t.Helper()
	for i := 1; i <= maxSteps; i++ {
		c.Step()
		if c.State() == expected {
			return i
		}
	}
	t.Fatalf("State %s not reached within %d steps (current: %s)", expected, maxSteps, c.State())
	return 0
}

// FillLane admits n vehicles with the same movement, failing on rejection
func FillLane(t *testing.T, c *Controller, prefix string, entry, exit Direction, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%03d", prefix, i)
		if err := c.AddVehicle(id, entry, exit, c.CurrentStep()); err != nil {
			t.Fatalf("AddVehicle %q (%s -> %s) failed: %v", id, entry, exit, err)
		}
	}
}
