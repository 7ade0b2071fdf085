package traffic

import "fmt"

// Observer represents an entity that observes controller lifecycle
type Observer interface {
	// Required methods

	// OnStateChange is called when the controller moves to a new state
	OnStateChange(from TrafficState, to TrafficState, step uint32)

	// OnVehicleDischarged is called when a vehicle leaves its queue
	OnVehicleDischarged(v Vehicle, wait uint32, step uint32)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnVehicleEnqueued is called when a vehicle is admitted to a lane queue
	OnVehicleEnqueued(v Vehicle, road Direction, lane Lane)

	// OnVehicleRejected is called when a vehicle admission is refused
	OnVehicleRejected(vehicleID string, err error)

	// OnPhaseSkipped is called when phase selection passes over an empty phase
	OnPhaseSkipped(phase Phase, skips uint32)

	// OnGreenExtended is called when a green phase is prolonged by one step
	OnGreenExtended(state TrafficState, extension uint32)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnStateChange implements the required Observer method
func (o *BaseObserver) OnStateChange(from TrafficState, to TrafficState, step uint32) {
	// Default implementation - no operation
}

// OnVehicleDischarged implements the required Observer method
func (o *BaseObserver) OnVehicleDischarged(v Vehicle, wait uint32, step uint32) {
	// Default implementation - no operation
}

// OnVehicleEnqueued implements the optional ExtendedObserver method
func (o *BaseObserver) OnVehicleEnqueued(v Vehicle, road Direction, lane Lane) {
	// Default implementation - no operation
}

// OnVehicleRejected implements the optional ExtendedObserver method
func (o *BaseObserver) OnVehicleRejected(vehicleID string, err error) {
	// Default implementation - no operation
}

// OnPhaseSkipped implements the optional ExtendedObserver method
func (o *BaseObserver) OnPhaseSkipped(phase Phase, skips uint32) {
	// Default implementation - no operation
}

// OnGreenExtended implements the optional ExtendedObserver method
func (o *BaseObserver) OnGreenExtended(state TrafficState, extension uint32) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// notify runs one notification callback, isolating the controller from a
// panicking observer
func notify(fn func()) {
	defer func() {
		recover()
	}()
	fn()
}

// NotifyStateChange notifies all observers of a state transition
func (om *ObserverManager) NotifyStateChange(from TrafficState, to TrafficState, step uint32) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		observer := observer
		notify(func() {
			observer.OnStateChange(from, to, step)
		})
	}
}

// NotifyVehicleDischarged notifies all observers of a discharge
func (om *ObserverManager) NotifyVehicleDischarged(v Vehicle, wait uint32, step uint32) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		observer := observer
		notify(func() {
			observer.OnVehicleDischarged(v, wait, step)
		})
	}
}

// NotifyVehicleEnqueued notifies extended observers of an admission
func (om *ObserverManager) NotifyVehicleEnqueued(v Vehicle, road Direction, lane Lane) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			notify(func() {
				extObs.OnVehicleEnqueued(v, road, lane)
			})
		}
	}
}

// NotifyVehicleRejected notifies extended observers of a refused admission
func (om *ObserverManager) NotifyVehicleRejected(vehicleID string, err error) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			notify(func() {
				extObs.OnVehicleRejected(vehicleID, err)
			})
		}
	}
}

// NotifyPhaseSkipped notifies extended observers of a skipped phase
func (om *ObserverManager) NotifyPhaseSkipped(phase Phase, skips uint32) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			notify(func() {
				extObs.OnPhaseSkipped(phase, skips)
			})
		}
	}
}

// NotifyGreenExtended notifies extended observers of a green extension
func (om *ObserverManager) NotifyGreenExtended(state TrafficState, extension uint32) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			notify(func() {
				extObs.OnGreenExtended(state, extension)
			})
		}
	}
}

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

// LogFormatter formats log messages
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter provides default log formatting
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	levelStr := "INFO"
	switch level {
	case LogError:
		levelStr = "ERROR"
	case LogWarning:
		levelStr = "WARN"
	case LogInfo:
		levelStr = "INFO"
	case LogDebug:
		levelStr = "DEBUG"
	}

	return fmt.Sprintf("[%s] %s", levelStr, fmt.Sprintf(format, args...))
}

// LoggingObserver logs controller events
type LoggingObserver struct {
	level     LogLevel
	prefix    string
	formatter LogFormatter
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(level LogLevel, prefix string) *LoggingObserver {
	return &LoggingObserver{
		level:     level,
		prefix:    prefix,
		formatter: DefaultLogFormatter,
	}
}

// SetFormatter sets the log formatter
func (o *LoggingObserver) SetFormatter(formatter LogFormatter) {
	o.formatter = formatter
}

// log logs a message at the specified level
func (o *LoggingObserver) log(level LogLevel, format string, args ...interface{}) {
	if level > o.level {
		return
	}

	prefix := ""
	if o.prefix != "" {
		prefix = fmt.Sprintf("[%s] ", o.prefix)
	}

	fmt.Println(prefix + o.formatter(level, format, args...))
}

// OnStateChange logs state transitions
func (o *LoggingObserver) OnStateChange(from TrafficState, to TrafficState, step uint32) {
	o.log(LogInfo, "step %d: %s -> %s", step, from, to)
}

// OnVehicleDischarged logs discharges
func (o *LoggingObserver) OnVehicleDischarged(v Vehicle, wait uint32, step uint32) {
	o.log(LogDebug, "step %d: vehicle '%s' discharged after %d steps (%s -> %s)",
		step, v.ID, wait, v.Entry, v.Exit)
}

// OnVehicleEnqueued logs admissions
func (o *LoggingObserver) OnVehicleEnqueued(v Vehicle, road Direction, lane Lane) {
	o.log(LogDebug, "vehicle '%s' queued on %s/%s", v.ID, road, lane)
}

// OnVehicleRejected logs refused admissions
func (o *LoggingObserver) OnVehicleRejected(vehicleID string, err error) {
	o.log(LogWarning, "vehicle '%s' rejected: %v", vehicleID, err)
}

// OnPhaseSkipped logs skipped phases
func (o *LoggingObserver) OnPhaseSkipped(phase Phase, skips uint32) {
	o.log(LogDebug, "phase %s skipped (%d consecutive)", phase, skips)
}

// OnGreenExtended logs green extensions
func (o *LoggingObserver) OnGreenExtended(state TrafficState, extension uint32) {
	o.log(LogDebug, "green %s extended (+%d)", state, extension)
}
