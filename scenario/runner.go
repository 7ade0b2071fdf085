package scenario

import "github.com/bol0o/traffic-lights-sim"

// Run drives a freshly initialized controller through a scenario and
// returns the resulting metrics. Arrivals scheduled for a step are
// admitted before that step executes; admissions rejected by a full lane
// are dropped, which shows up as lost throughput.
func Run(cfg traffic.TimingConfig, sc Scenario) Metrics {
	ctrl := traffic.NewController(cfg)

	collector := &metricsCollector{}
	ctrl.AddObserver(collector)

	byStep := make(map[uint32][]Arrival, len(sc.Arrivals))
	for _, a := range sc.Arrivals {
		byStep[a.Step] = append(byStep[a.Step], a)
	}

	for step := uint32(1); step <= sc.Steps; step++ {
		for _, a := range byStep[step] {
			_ = ctrl.AddVehicle(a.ID, a.Entry, a.Exit, step)
		}
		ctrl.Step()
	}

	return collector.metrics()
}

// GridSearch evaluates every candidate timing plan against the scenario
// and returns the one with the lowest cost together with its metrics. The
// candidate slice must be non-empty; the first candidate wins ties.
func GridSearch(sc Scenario, candidates []traffic.TimingConfig) (traffic.TimingConfig, Metrics) {
	var best traffic.TimingConfig
	var bestMetrics Metrics
	bestCost := 0.0

	for i, cfg := range candidates {
		m := Run(cfg, sc)
		if i == 0 || m.Cost() < bestCost {
			best = cfg
			bestMetrics = m
			bestCost = m.Cost()
		}
	}

	return best, bestMetrics
}

// ConfigGrid enumerates timing plans that vary the two green durations
// over the given ranges while keeping the rest of the base plan fixed
func ConfigGrid(base traffic.TimingConfig, straightGreens, leftGreens []uint32) []traffic.TimingConfig {
	grid := make([]traffic.TimingConfig, 0, len(straightGreens)*len(leftGreens))
	for _, st := range straightGreens {
		for _, lt := range leftGreens {
			cfg := base
			cfg.GreenStraight = st
			cfg.GreenLeft = lt
			grid = append(grid, cfg)
		}
	}
	return grid
}
