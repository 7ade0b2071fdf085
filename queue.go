package traffic

const (
	// QueueCapacity is the fixed number of vehicles a lane queue can hold
	QueueCapacity = 50
	// VehicleIDLen is the maximum vehicle identifier length in bytes;
	// longer identifiers are truncated on ingestion
	VehicleIDLen = 32
)

// Vehicle is one queued road user
type Vehicle struct {
	ID          string
	Entry       Direction
	Exit        Direction
	ArrivalStep uint32
}

// VehicleQueue is a bounded circular FIFO of vehicles for one (road, lane)
// pair. The zero value is an empty queue. It tracks the largest wait time
// observed across all dequeues.
type VehicleQueue struct {
	vehicles [QueueCapacity]Vehicle
	head     uint16
	tail     uint16
	count    uint16
	maxWait  uint32
}

// Init resets the queue to empty and clears the wait-time statistic
func (q *VehicleQueue) Init() {
	*q = VehicleQueue{}
}

// Enqueue appends a vehicle at the tail. It returns false without mutation
// when the queue is full. The vehicle ID is truncated to VehicleIDLen.
func (q *VehicleQueue) Enqueue(v Vehicle) bool {
	if q.IsFull() {
		return false
	}

	if len(v.ID) > VehicleIDLen {
		v.ID = v.ID[:VehicleIDLen]
	}

	q.vehicles[q.tail] = v
	q.tail = (q.tail + 1) % QueueCapacity
	q.count++
	return true
}

// Dequeue removes and returns the front vehicle together with its wait time
// at currentStep. It returns false without mutation when the queue is
// empty. Wait time never goes negative even if the caller's step counter
// lags the recorded arrival, and the max-wait statistic only ever grows.
func (q *VehicleQueue) Dequeue(currentStep uint32) (Vehicle, uint32, bool) {
	if q.IsEmpty() {
		return Vehicle{}, 0, false
	}

	v := q.vehicles[q.head]

	var wait uint32
	if currentStep >= v.ArrivalStep {
		wait = currentStep - v.ArrivalStep
		if wait > q.maxWait {
			q.maxWait = wait
		}
	}

	q.head = (q.head + 1) % QueueCapacity
	q.count--
	return v, wait, true
}

// Peek returns the front vehicle without removing it. It returns false when
// the queue is empty.
func (q *VehicleQueue) Peek() (Vehicle, bool) {
	if q.IsEmpty() {
		return Vehicle{}, false
	}
	return q.vehicles[q.head], true
}

// IsEmpty reports whether the queue holds no vehicles
func (q *VehicleQueue) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether the queue is at capacity
func (q *VehicleQueue) IsFull() bool {
	return q.count >= QueueCapacity
}

// Size returns the number of queued vehicles
func (q *VehicleQueue) Size() int {
	return int(q.count)
}

// MaxWaitTime returns the largest wait time observed on dequeue so far
func (q *VehicleQueue) MaxWaitTime() uint32 {
	return q.maxWait
}
