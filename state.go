package traffic

import "fmt"

// TrafficState is one of the 13 controller states: an all-red anchor plus
// four macro-phases, each made of a red-yellow preparation, a green and a
// yellow state.
type TrafficState uint8

const (
	StateAllRed TrafficState = iota

	StateNSPrep
	StateNSStraight
	StateNSStraightYellow

	StateNSLeftPrep
	StateNSLeft
	StateNSLeftYellow

	StateEWPrep
	StateEWStraight
	StateEWStraightYellow

	StateEWLeftPrep
	StateEWLeft
	StateEWLeftYellow
)

// StateCount is the number of controller states
const StateCount = 13

// String returns the state name
func (s TrafficState) String() string {
	switch s {
	case StateAllRed:
		return "all_red"
	case StateNSPrep:
		return "ns_prep"
	case StateNSStraight:
		return "ns_straight"
	case StateNSStraightYellow:
		return "ns_straight_yellow"
	case StateNSLeftPrep:
		return "ns_left_prep"
	case StateNSLeft:
		return "ns_left"
	case StateNSLeftYellow:
		return "ns_left_yellow"
	case StateEWPrep:
		return "ew_prep"
	case StateEWStraight:
		return "ew_straight"
	case StateEWStraightYellow:
		return "ew_straight_yellow"
	case StateEWLeftPrep:
		return "ew_left_prep"
	case StateEWLeft:
		return "ew_left"
	case StateEWLeftYellow:
		return "ew_left_yellow"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// IsGreen reports whether the state is one of the four green phases
func (s TrafficState) IsGreen() bool {
	switch s {
	case StateNSStraight, StateNSLeft, StateEWStraight, StateEWLeft:
		return true
	default:
		return false
	}
}

// IsYellow reports whether the state is one of the four yellow phases
func (s TrafficState) IsYellow() bool {
	switch s {
	case StateNSStraightYellow, StateNSLeftYellow, StateEWStraightYellow, StateEWLeftYellow:
		return true
	default:
		return false
	}
}

// Phase identifies one of the four main green movements
type Phase uint8

const (
	PhaseNSStraight Phase = iota
	PhaseNSLeft
	PhaseEWStraight
	PhaseEWLeft
)

// PhaseCount is the number of main green movements
const PhaseCount = 4

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseNSStraight:
		return "ns_straight"
	case PhaseNSLeft:
		return "ns_left"
	case PhaseEWStraight:
		return "ew_straight"
	case PhaseEWLeft:
		return "ew_left"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Next returns the phase that follows in the fixed cyclic order
func (p Phase) Next() Phase {
	return (p + 1) % PhaseCount
}

// GreenState returns the green controller state of the phase
func (p Phase) GreenState() TrafficState {
	switch p {
	case PhaseNSStraight:
		return StateNSStraight
	case PhaseNSLeft:
		return StateNSLeft
	case PhaseEWStraight:
		return StateEWStraight
	case PhaseEWLeft:
		return StateEWLeft
	default:
		return StateAllRed
	}
}

// PrepState returns the red-yellow preparation state that precedes the
// phase's green
func (p Phase) PrepState() TrafficState {
	switch p {
	case PhaseNSStraight:
		return StateNSPrep
	case PhaseNSLeft:
		return StateNSLeftPrep
	case PhaseEWStraight:
		return StateEWPrep
	case PhaseEWLeft:
		return StateEWLeftPrep
	default:
		return StateAllRed
	}
}

// Roads returns the two opposing approaches the phase serves
func (p Phase) Roads() (Direction, Direction) {
	switch p {
	case PhaseNSStraight, PhaseNSLeft:
		return North, South
	default:
		return East, West
	}
}

// Lane returns the lane the phase discharges from
func (p Phase) Lane() Lane {
	switch p {
	case PhaseNSLeft, PhaseEWLeft:
		return LaneLeft
	default:
		return LaneStraightRight
	}
}

// PhaseOf maps a green state back to its phase. The second return is false
// for non-green states.
func PhaseOf(s TrafficState) (Phase, bool) {
	switch s {
	case StateNSStraight:
		return PhaseNSStraight, true
	case StateNSLeft:
		return PhaseNSLeft, true
	case StateEWStraight:
		return PhaseEWStraight, true
	case StateEWLeft:
		return PhaseEWLeft, true
	default:
		return 0, false
	}
}

// phaseAfter returns the first candidate phase to consider when leaving a
// yellow state or waking up from all-red
func phaseAfter(s TrafficState) Phase {
	switch s {
	case StateNSStraightYellow:
		return PhaseNSLeft
	case StateNSLeftYellow:
		return PhaseEWStraight
	case StateEWStraightYellow:
		return PhaseEWLeft
	case StateEWLeftYellow:
		return PhaseNSStraight
	default:
		return PhaseNSStraight
	}
}
