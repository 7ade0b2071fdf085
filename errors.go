package traffic

import "fmt"

// ErrorCode represents specific rejection conditions in the controller
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// A direction is outside the four cardinal values
	ErrCodeInvalidDirection
	// Entry and exit direction are equal (U-turns are rejected)
	ErrCodeUTurn
	// The routed lane queue is at capacity
	ErrCodeQueueFull
	// A timing plan could not be read or parsed
	ErrCodeConfig
)

// ValidationError reports a rejected vehicle admission. The controller
// state is unchanged whenever one is returned.
type ValidationError struct {
	Code      ErrorCode
	VehicleID string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.VehicleID, e.Message)
}

// NewInvalidDirectionError creates a rejection for an out-of-range entry or
// exit direction
func NewInvalidDirectionError(vehicleID string, entry, exit Direction) *ValidationError {
	return &ValidationError{
		Code:      ErrCodeInvalidDirection,
		VehicleID: vehicleID,
		Message:   fmt.Sprintf("direction pair (%d, %d) out of range", uint8(entry), uint8(exit)),
	}
}

// NewUTurnError creates a rejection for an entry equal to its exit
func NewUTurnError(vehicleID string, road Direction) *ValidationError {
	return &ValidationError{
		Code:      ErrCodeUTurn,
		VehicleID: vehicleID,
		Message:   fmt.Sprintf("u-turn on %s not permitted", road),
	}
}

// CapacityError reports a full lane queue. Callers own the backpressure
// decision; the controller never evicts a queued vehicle to make room.
type CapacityError struct {
	Road      Direction
	Lane      Lane
	VehicleID string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("queue full [%s/%s]: vehicle '%s' rejected", e.Road, e.Lane, e.VehicleID)
}

// NewCapacityError creates a queue-full rejection
func NewCapacityError(road Direction, lane Lane, vehicleID string) *CapacityError {
	return &CapacityError{
		Road:      road,
		Lane:      lane,
		VehicleID: vehicleID,
	}
}

// ConfigError reports a timing plan that could not be loaded
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error [%s]: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a timing plan load failure
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{
		Path: path,
		Err:  err,
	}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsCapacityError checks if an error is a CapacityError
func IsCapacityError(err error) bool {
	_, ok := err.(*CapacityError)
	return ok
}

// IsConfigError checks if an error is a ConfigError
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *ValidationError:
		return e.Code
	case *CapacityError:
		return ErrCodeQueueFull
	case *ConfigError:
		return ErrCodeConfig
	default:
		return ErrCodeNone
	}
}
