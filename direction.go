// Package traffic implements a deterministic signal controller for a single
// four-approach road intersection. The controller advances in discrete
// logical steps, owns one bounded vehicle queue per (road, lane) pair, and
// computes signal phases with demand-responsive green extension and
// starvation-avoided phase skipping. It performs no I/O and keeps no
// wall-clock time; host shells (see the protocol package) drive it through
// Init, AddVehicle, Step and QueueSize.
package traffic

import "fmt"

// Direction identifies one of the four approaches to the intersection
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

const (
	// RoadCount is the number of approaches
	RoadCount = 4
	// directionMod wraps cardinal arithmetic
	directionMod = 4
	// leftTurnDiff is the (exit-entry) mod 4 difference of a left turn
	leftTurnDiff = 1
)

// Valid reports whether the direction is one of the four cardinal values
func (d Direction) Valid() bool {
	return d < RoadCount
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Lane identifies one of the two lanes of an approach
type Lane uint8

const (
	// LaneStraightRight carries straight-through and right-turning traffic
	LaneStraightRight Lane = iota
	// LaneLeft carries left-turning traffic
	LaneLeft
)

// LanesPerRoad is the number of lanes on each approach
const LanesPerRoad = 2

// Valid reports whether the lane index is in range
func (l Lane) Valid() bool {
	return l < LanesPerRoad
}

// String returns the lane name
func (l Lane) String() string {
	switch l {
	case LaneStraightRight:
		return "straight_right"
	case LaneLeft:
		return "left"
	default:
		return fmt.Sprintf("lane(%d)", uint8(l))
	}
}

// Turn classifies the movement between an entry and an exit direction
type Turn uint8

const (
	// TurnLeft is a left turn
	TurnLeft Turn = 1
	// TurnStraight is a straight-through movement
	TurnStraight Turn = 2
	// TurnRight is a right turn
	TurnRight Turn = 3
)

// TurnBetween classifies the movement from entry to exit. It returns false
// for U-turns (entry == exit) and out-of-range directions.
func TurnBetween(entry, exit Direction) (Turn, bool) {
	if !entry.Valid() || !exit.Valid() || entry == exit {
		return 0, false
	}
	return Turn((uint8(exit) - uint8(entry) + directionMod) % directionMod), true
}

// IsLeftTurn reports whether the movement from entry to exit is a left turn
func IsLeftTurn(entry, exit Direction) bool {
	return (uint8(exit)-uint8(entry)+directionMod)%directionMod == leftTurnDiff
}

// LaneFor routes a validated (entry, exit) pair to the lane its vehicle
// queues in: left turns use the left lane, everything else the
// straight/right lane. Callers validate the pair first.
func LaneFor(entry, exit Direction) Lane {
	if IsLeftTurn(entry, exit) {
		return LaneLeft
	}
	return LaneStraightRight
}

// RightTurnTarget returns the exit direction that is a right turn relative
// to the given road
func RightTurnTarget(road Direction) Direction {
	return Direction((uint8(road) + 3) % directionMod)
}
