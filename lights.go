package traffic

import "fmt"

// LightColor is the signal indication shown to one (road, lane) pair
type LightColor uint8

const (
	LightRed LightColor = iota
	LightYellow
	LightGreen
	LightRedYellow
	LightRightArrowGreen
)

// String returns the color name
func (c LightColor) String() string {
	switch c {
	case LightRed:
		return "red"
	case LightYellow:
		return "yellow"
	case LightGreen:
		return "green"
	case LightRedYellow:
		return "red_yellow"
	case LightRightArrowGreen:
		return "right_arrow"
	default:
		return fmt.Sprintf("light(%d)", uint8(c))
	}
}

// AllowsDischarge reports whether a lane showing this color may release its
// front vehicle (for the right arrow, only right-turning traffic qualifies)
func (c LightColor) AllowsDischarge() bool {
	return c == LightGreen || c == LightRightArrowGreen
}

// LightMatrix holds the current signal indication per (road, lane) pair
type LightMatrix [RoadCount][LanesPerRoad]LightColor

// allRed sets every lane to red
func (m *LightMatrix) allRed() {
	for road := 0; road < RoadCount; road++ {
		for lane := 0; lane < LanesPerRoad; lane++ {
			m[road][lane] = LightRed
		}
	}
}

// Get returns the indication for a (road, lane) pair, red for out-of-range
// inputs
func (m LightMatrix) Get(road Direction, lane Lane) LightColor {
	if !road.Valid() || !lane.Valid() {
		return LightRed
	}
	return m[road][lane]
}

// setPhase applies one indication to both approaches of a phase's lane
func (m *LightMatrix) setPhase(p Phase, color LightColor) {
	r1, r2 := p.Roads()
	lane := p.Lane()
	m[r1][lane] = color
	m[r2][lane] = color
}

// setLightsForState recomputes the matrix for a state: everything resets to
// red, then the active phase's indications are applied. Protected-left
// greens additionally grant a right-turn arrow to the cross roads'
// straight/right lanes, allowing permissive right turns that cannot
// conflict with the protected left movement.
func (m *LightMatrix) setLightsForState(s TrafficState) {
	m.allRed()

	switch s {
	case StateAllRed:
		// nothing lit beyond red

	case StateNSPrep:
		m.setPhase(PhaseNSStraight, LightRedYellow)
	case StateNSStraight:
		m.setPhase(PhaseNSStraight, LightGreen)
	case StateNSStraightYellow:
		m.setPhase(PhaseNSStraight, LightYellow)

	case StateNSLeftPrep:
		m.setPhase(PhaseNSLeft, LightRedYellow)
	case StateNSLeft:
		m.setPhase(PhaseNSLeft, LightGreen)
		m.setPhase(PhaseEWStraight, LightRightArrowGreen)
	case StateNSLeftYellow:
		m.setPhase(PhaseNSLeft, LightYellow)

	case StateEWPrep:
		m.setPhase(PhaseEWStraight, LightRedYellow)
	case StateEWStraight:
		m.setPhase(PhaseEWStraight, LightGreen)
	case StateEWStraightYellow:
		m.setPhase(PhaseEWStraight, LightYellow)

	case StateEWLeftPrep:
		m.setPhase(PhaseEWLeft, LightRedYellow)
	case StateEWLeft:
		m.setPhase(PhaseEWLeft, LightGreen)
		m.setPhase(PhaseNSStraight, LightRightArrowGreen)
	case StateEWLeftYellow:
		m.setPhase(PhaseEWLeft, LightYellow)
	}
}
