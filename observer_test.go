package traffic

import "testing"

func TestObserverStateChangeNotifications(t *testing.T) {
	c := NewController(TimingConfig{AllRed: 1, RedYellow: 1, GreenStraight: 1, Yellow: 1, SkipLimit: 0})
	observer := NewTestObserver()
	c.AddObserver(observer)

	StepN(c, 2)

	if len(observer.StateChanges) != 2 {
		t.Fatalf("Expected 2 state changes, got %d", len(observer.StateChanges))
	}
	first := observer.StateChanges[0]
	if first.From != StateAllRed || first.To != StateNSPrep || first.Step != 1 {
		t.Errorf("Unexpected first transition: %+v", first)
	}
	second := observer.StateChanges[1]
	if second.From != StateNSPrep || second.To != StateNSStraight || second.Step != 2 {
		t.Errorf("Unexpected second transition: %+v", second)
	}
}

func TestObserverDischargeNotifications(t *testing.T) {
	c := NewController(TimingConfig{AllRed: 1, RedYellow: 1, GreenStraight: 2, Yellow: 1, SkipLimit: 2})
	observer := NewTestObserver()
	c.AddObserver(observer)

	if err := c.AddVehicle("veh-1", South, North, 0); err != nil {
		t.Fatalf("AddVehicle failed: %v", err)
	}
	StepN(c, 2)

	if len(observer.Discharges) != 1 {
		t.Fatalf("Expected 1 discharge event, got %d", len(observer.Discharges))
	}
	ev := observer.Discharges[0]
	if ev.Vehicle.ID != "veh-1" || ev.Step != 2 || ev.Wait != 2 {
		t.Errorf("Unexpected discharge event: %+v", ev)
	}
}

func TestObserverRemoval(t *testing.T) {
	c := NewController(DefaultTimingConfig())
	observer := NewTestObserver()
	c.AddObserver(observer)
	c.RemoveObserver(observer)

	if err := c.AddVehicle("veh-1", North, South, 0); err != nil {
		t.Fatalf("AddVehicle failed: %v", err)
	}
	StepN(c, 5)

	if len(observer.Enqueues) != 0 || len(observer.StateChanges) != 0 {
		t.Error("Removed observer should receive no events")
	}
}

type panickyObserver struct {
	BaseObserver
}

func (o *panickyObserver) OnStateChange(from TrafficState, to TrafficState, step uint32) {
	panic("observer failure")
}

func TestObserverPanicIsolation(t *testing.T) {
	c := NewController(TimingConfig{AllRed: 1, RedYellow: 1, GreenStraight: 1, Yellow: 1, SkipLimit: 0})
	c.AddObserver(&panickyObserver{})
	observer := NewTestObserver()
	c.AddObserver(observer)

	// A panicking observer must not break the step, nor starve the others
	res := c.Step()
	if res.State != StateNSPrep {
		t.Errorf("Step should survive an observer panic, got state %s", res.State)
	}
	if len(observer.StateChanges) != 1 {
		t.Errorf("Later observers should still be notified, got %d events", len(observer.StateChanges))
	}
}

func TestBaseObserverSatisfiesExtendedInterface(t *testing.T) {
	var _ ExtendedObserver = &struct{ BaseObserver }{}

	// Embedding BaseObserver lets a partial observer pick its hooks
	c := NewController(DefaultTimingConfig())
	c.AddObserver(&BaseObserver{})
	if err := c.AddVehicle("veh-1", West, North, 0); err != nil {
		t.Fatalf("AddVehicle failed: %v", err)
	}
	StepN(c, 3)
}

func TestLoggingObserverLevelFilter(t *testing.T) {
	var captured []string
	o := NewLoggingObserver(LogWarning, "test")
	o.SetFormatter(func(level LogLevel, format string, args ...interface{}) string {
		captured = append(captured, format)
		return ""
	})

	o.OnStateChange(StateAllRed, StateNSPrep, 1) // info, filtered
	o.OnVehicleRejected("veh-1", NewUTurnError("veh-1", North))

	if len(captured) != 1 {
		t.Errorf("Expected only the warning formatted, got %d messages", len(captured))
	}
}
