package traffic

// StepResult represents the outcome of advancing the controller by one step
type StepResult struct {
	// Step is the global step count after the advance
	Step uint32
	// State is the controller state after the advance
	State TrafficState
	// Lights is the signal indication per (road, lane) after the advance
	Lights LightMatrix
	// Discharged lists the identifiers of vehicles released this step, in
	// fixed road-ascending then lane-ascending order
	Discharged []string
}

// DischargedCount returns the number of vehicles released this step
func (r StepResult) DischargedCount() int {
	return len(r.Discharged)
}

// Controller is one intersection's signal controller. It owns the eight
// lane queues, the current state with its timers, the per-phase starvation
// counters and the light matrix. All waiting is modeled as discrete steps;
// no operation blocks or performs I/O.
//
// A Controller is not safe for concurrent use. Callers needing concurrency
// serialize access externally, one operation at a time.
type Controller struct {
	state      TrafficState
	step       uint32
	stateTimer uint32
	timing     TimingConfig
	queues     [RoadCount][LanesPerRoad]VehicleQueue
	lights     LightMatrix
	skips      [PhaseCount]uint32
	extension  uint32
	observers  *ObserverManager
}

// NewController creates a controller initialized with the given timing plan
func NewController(cfg TimingConfig) *Controller {
	c := &Controller{
		observers: NewObserverManager(),
	}
	c.Init(cfg)
	return c
}

// Init resets the controller for a new session: all queues emptied, lights
// red, state back to all-red, every timer and counter zeroed. Registered
// observers survive the reset. An all-zero timing plan is legal and simply
// cycles as fast as the step clock allows.
func (c *Controller) Init(cfg TimingConfig) {
	c.timing = cfg
	c.state = StateAllRed
	c.step = 0
	c.stateTimer = 0
	c.extension = 0

	for road := 0; road < RoadCount; road++ {
		for lane := 0; lane < LanesPerRoad; lane++ {
			c.queues[road][lane].Init()
		}
	}
	for p := 0; p < PhaseCount; p++ {
		c.skips[p] = 0
	}

	c.lights.setLightsForState(c.state)
}

// AddVehicle validates and routes a vehicle into the lane queue its
// movement requires. It returns a typed error and leaves the controller
// unchanged when the direction pair is invalid, the movement is a U-turn,
// or the routed queue is full. The identifier is truncated to VehicleIDLen.
func (c *Controller) AddVehicle(id string, entry, exit Direction, arrivalStep uint32) error {
	if !entry.Valid() || !exit.Valid() {
		err := NewInvalidDirectionError(id, entry, exit)
		c.observers.NotifyVehicleRejected(id, err)
		return err
	}
	if entry == exit {
		err := NewUTurnError(id, entry)
		c.observers.NotifyVehicleRejected(id, err)
		return err
	}

	if len(id) > VehicleIDLen {
		id = id[:VehicleIDLen]
	}

	lane := LaneFor(entry, exit)
	v := Vehicle{
		ID:          id,
		Entry:       entry,
		Exit:        exit,
		ArrivalStep: arrivalStep,
	}

	if !c.queues[entry][lane].Enqueue(v) {
		err := NewCapacityError(entry, lane, id)
		c.observers.NotifyVehicleRejected(id, err)
		return err
	}

	c.observers.NotifyVehicleEnqueued(v, entry, lane)
	return nil
}

// Step advances the intersection by exactly one tick: the step counter and
// in-state timer move forward, the next state is computed (applying phase
// skipping and green extension), the lights are recomputed, and eligible
// vehicles are discharged. Step always succeeds.
func (c *Controller) Step() StepResult {
	c.step++
	c.stateTimer++

	next := c.nextState()

	// A green phase about to end stays green while demand persists, up to
	// MaxExtension extra steps.
	if next != c.state && c.state.IsGreen() {
		if c.shouldExtendGreen() && c.extension < c.timing.MaxExtension {
			c.extension++
			c.observers.NotifyGreenExtended(c.state, c.extension)
			next = c.state
		}
	}

	if next != c.state {
		from := c.state
		c.state = next
		c.stateTimer = 0
		c.extension = 0
		c.observers.NotifyStateChange(from, next, c.step)
	}

	c.lights.setLightsForState(c.state)
	discharged := c.processDischarges()

	return StepResult{
		Step:       c.step,
		State:      c.state,
		Lights:     c.lights,
		Discharged: discharged,
	}
}

// nextState computes the successor of the current state once its gating
// duration has elapsed. Rule 1 moves prep states to green and green states
// to yellow straight from the table. Rule 2 runs when leaving a yellow
// state or all-red: it scans the four phases in cyclic order, skipping
// empty ones while counting each skip, and forces a phase whose skip count
// has reached the configured limit. Starvation counters mutate during the
// scan, matching the observable skip accounting.
func (c *Controller) nextState() TrafficState {
	next, duration := transitionFor(c.state, c.timing)

	if c.stateTimer < duration {
		return c.state
	}

	// Rule 1: static transitions
	if !c.state.IsYellow() && c.state != StateAllRed {
		return next
	}

	// Rule 2: phase selection
	candidate := phaseAfter(c.state)
	for checked := 0; checked < PhaseCount; checked++ {
		if !c.phaseEmpty(candidate) || c.skips[candidate] >= c.timing.SkipLimit {
			c.skips[candidate] = 0
			return candidate.PrepState()
		}

		c.skips[candidate]++
		c.observers.NotifyPhaseSkipped(candidate, c.skips[candidate])
		candidate = candidate.Next()
	}

	// Intersection completely empty, retreat to all-red
	return StateAllRed
}

// phaseEmpty reports whether both approaches feeding a phase hold no
// vehicles in its lane
func (c *Controller) phaseEmpty(p Phase) bool {
	r1, r2 := p.Roads()
	lane := p.Lane()
	return c.queues[r1][lane].IsEmpty() && c.queues[r2][lane].IsEmpty()
}

// shouldExtendGreen reports whether any lane currently lit full green holds
// at least ExtThreshold vehicles
func (c *Controller) shouldExtendGreen() bool {
	for road := 0; road < RoadCount; road++ {
		for lane := 0; lane < LanesPerRoad; lane++ {
			if c.lights[road][lane] != LightGreen {
				continue
			}
			if uint32(c.queues[road][lane].Size()) >= c.timing.ExtThreshold {
				return true
			}
		}
	}
	return false
}

// processDischarges releases at most one vehicle per lane showing a green
// or right-arrow light. Right-arrow lanes peek first and only release a
// vehicle whose exit is a right turn relative to its road; anything else
// stays queued. Iteration order is fixed (road ascending, lane ascending)
// and determines the output order.
func (c *Controller) processDischarges() []string {
	ids := make([]string, 0, RoadCount*LanesPerRoad)

	for road := Direction(0); road < RoadCount; road++ {
		for lane := Lane(0); lane < LanesPerRoad; lane++ {
			color := c.lights[road][lane]
			q := &c.queues[road][lane]

			if q.IsEmpty() || !color.AllowsDischarge() {
				continue
			}

			if color == LightRightArrowGreen {
				front, _ := q.Peek()
				if front.Exit != RightTurnTarget(road) {
					continue
				}
			}

			v, wait, _ := q.Dequeue(c.step)
			ids = append(ids, v.ID)
			c.observers.NotifyVehicleDischarged(v, wait, c.step)
		}
	}

	return ids
}

// State returns the current controller state
func (c *Controller) State() TrafficState {
	return c.state
}

// CurrentStep returns the global step count
func (c *Controller) CurrentStep() uint32 {
	return c.step
}

// ElapsedInState returns the steps spent in the current state since the
// last transition
func (c *Controller) ElapsedInState() uint32 {
	return c.stateTimer
}

// QueueSize returns the number of vehicles queued on a (road, lane) pair,
// 0 for out-of-range inputs
func (c *Controller) QueueSize(road Direction, lane Lane) int {
	if !road.Valid() || !lane.Valid() {
		return 0
	}
	return c.queues[road][lane].Size()
}

// MaxWaitTime returns the largest wait observed on a (road, lane) pair, 0
// for out-of-range inputs
func (c *Controller) MaxWaitTime(road Direction, lane Lane) uint32 {
	if !road.Valid() || !lane.Valid() {
		return 0
	}
	return c.queues[road][lane].MaxWaitTime()
}

// Lights returns the current light matrix
func (c *Controller) Lights() LightMatrix {
	return c.lights
}

// SkipCount returns how many consecutive times a phase has been skipped
// since it last ran
func (c *Controller) SkipCount(p Phase) uint32 {
	if p >= PhaseCount {
		return 0
	}
	return c.skips[p]
}

// Timing returns the active timing plan
func (c *Controller) Timing() TimingConfig {
	return c.timing
}

// AddObserver adds an observer to the controller
func (c *Controller) AddObserver(observer Observer) {
	c.observers.AddObserver(observer)
}

// RemoveObserver removes an observer from the controller
func (c *Controller) RemoveObserver(observer Observer) {
	c.observers.RemoveObserver(observer)
}
