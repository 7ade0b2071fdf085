package traffic

// transitionFor returns the table successor of a state and the configured
// duration gating that move. Rule 2 (phase selection) overrides the
// successor when leaving a yellow state or all-red; the duration still
// gates the move.
func transitionFor(s TrafficState, cfg TimingConfig) (TrafficState, uint32) {
	switch s {
	case StateAllRed:
		return StateNSPrep, cfg.AllRed

	case StateNSPrep:
		return StateNSStraight, cfg.RedYellow
	case StateNSStraight:
		return StateNSStraightYellow, cfg.GreenStraight
	case StateNSStraightYellow:
		return StateNSLeftPrep, cfg.Yellow

	case StateNSLeftPrep:
		return StateNSLeft, cfg.RedYellow
	case StateNSLeft:
		return StateNSLeftYellow, cfg.GreenLeft
	case StateNSLeftYellow:
		return StateEWPrep, cfg.Yellow

	case StateEWPrep:
		return StateEWStraight, cfg.RedYellow
	case StateEWStraight:
		return StateEWStraightYellow, cfg.GreenStraight
	case StateEWStraightYellow:
		return StateEWLeftPrep, cfg.Yellow

	case StateEWLeftPrep:
		return StateEWLeft, cfg.RedYellow
	case StateEWLeft:
		return StateEWLeftYellow, cfg.GreenLeft
	case StateEWLeftYellow:
		return StateNSPrep, cfg.Yellow

	default:
		return StateAllRed, 0
	}
}
