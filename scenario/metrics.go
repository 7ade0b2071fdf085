package scenario

import "github.com/bol0o/traffic-lights-sim"

// Metrics summarizes one simulation run
type Metrics struct {
	// Throughput is the number of vehicles discharged
	Throughput int
	// AvgWait is the mean wait in steps across all discharges
	AvgWait float64
	// MaxWait is the largest single wait observed
	MaxWait uint32
	// LeftAvgWait is the mean wait of left-turning vehicles only
	LeftAvgWait float64
}

// Cost folds the metrics into a single comparable score; lower is better.
// Average wait dominates, worst-case wait and left-turn wait weigh in at
// half and a third.
func (m Metrics) Cost() float64 {
	return m.AvgWait + 0.5*float64(m.MaxWait) + 0.3*m.LeftAvgWait
}

// metricsCollector accumulates discharge statistics through the observer
// hook
type metricsCollector struct {
	traffic.BaseObserver

	totalWait uint64
	count     int
	maxWait   uint32
	leftWait  uint64
	leftCount int
}

// OnVehicleDischarged records one discharge
func (m *metricsCollector) OnVehicleDischarged(v traffic.Vehicle, wait uint32, step uint32) {
	m.totalWait += uint64(wait)
	m.count++
	if wait > m.maxWait {
		m.maxWait = wait
	}

	if traffic.IsLeftTurn(v.Entry, v.Exit) {
		m.leftWait += uint64(wait)
		m.leftCount++
	}
}

// metrics finalizes the accumulated statistics
func (m *metricsCollector) metrics() Metrics {
	out := Metrics{
		Throughput: m.count,
		MaxWait:    m.maxWait,
	}
	if m.count > 0 {
		out.AvgWait = float64(m.totalWait) / float64(m.count)
	}
	if m.leftCount > 0 {
		out.LeftAvgWait = float64(m.leftWait) / float64(m.leftCount)
	}
	return out
}
