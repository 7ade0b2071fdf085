// Package protocol implements the binary host framing for the intersection
// controller: a 1-byte command header followed by a fixed-size payload,
// with a fixed-size step response followed by a variable-length block of
// discharged vehicle identifiers. All multi-byte integers travel
// little-endian. The same frames work over a process pipe and a UART link;
// the core never sees a byte of it.
package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bol0o/traffic-lights-sim"
)

// Command is the opcode sent from the host to the controller shell
type Command uint8

const (
	// CmdConfig re-initializes the controller with a timing plan
	CmdConfig Command = 0
	// CmdAddVehicle queues a vehicle
	CmdAddVehicle Command = 1
	// CmdStep advances the controller one tick and returns a StepResponse
	CmdStep Command = 2
	// CmdStop terminates the command loop
	CmdStop Command = 99
)

// ConfigPayload is the wire form of a timing plan (32 bytes)
type ConfigPayload struct {
	GreenStraight uint32
	GreenLeft     uint32
	Yellow        uint32
	AllRed        uint32
	RedYellow     uint32
	ExtThreshold  uint32
	MaxExtension  uint32
	SkipLimit     uint32
}

// TimingConfig converts the payload to the core's configuration type
func (p ConfigPayload) TimingConfig() traffic.TimingConfig {
	return traffic.TimingConfig{
		GreenStraight: p.GreenStraight,
		GreenLeft:     p.GreenLeft,
		Yellow:        p.Yellow,
		AllRed:        p.AllRed,
		RedYellow:     p.RedYellow,
		ExtThreshold:  p.ExtThreshold,
		MaxExtension:  p.MaxExtension,
		SkipLimit:     p.SkipLimit,
	}
}

// NewConfigPayload converts a timing plan to its wire form
func NewConfigPayload(cfg traffic.TimingConfig) ConfigPayload {
	return ConfigPayload{
		GreenStraight: cfg.GreenStraight,
		GreenLeft:     cfg.GreenLeft,
		Yellow:        cfg.Yellow,
		AllRed:        cfg.AllRed,
		RedYellow:     cfg.RedYellow,
		ExtThreshold:  cfg.ExtThreshold,
		MaxExtension:  cfg.MaxExtension,
		SkipLimit:     cfg.SkipLimit,
	}
}

// AddVehiclePayload is the wire form of a vehicle admission (38 bytes).
// The identifier is zero-padded to its fixed length.
type AddVehiclePayload struct {
	VehicleID   [traffic.VehicleIDLen]byte
	Entry       uint8
	Exit        uint8
	ArrivalStep uint32
}

// ID returns the identifier with trailing zero padding stripped
func (p AddVehiclePayload) ID() string {
	return string(bytes.TrimRight(p.VehicleID[:], "\x00"))
}

// NewAddVehiclePayload builds a wire admission, truncating the identifier
// to the fixed length
func NewAddVehiclePayload(id string, entry, exit traffic.Direction, arrivalStep uint32) AddVehiclePayload {
	p := AddVehiclePayload{
		Entry:       uint8(entry),
		Exit:        uint8(exit),
		ArrivalStep: arrivalStep,
	}
	copy(p.VehicleID[:], id)
	return p
}

// StepResponse is the fixed-size head of a step reply (11 bytes). When
// VehiclesOut is non-zero it is immediately followed by VehiclesOut blocks
// of VehicleIDLen bytes holding the discharged identifiers in discharge
// order.
type StepResponse struct {
	Step            uint32
	State           uint8
	LightNSStraight uint8
	LightNSLeft     uint8
	LightEWStraight uint8
	LightEWLeft     uint8
	VehiclesOut     uint16
}

// NewStepResponse builds the fixed-size head from a step result
func NewStepResponse(res traffic.StepResult) StepResponse {
	return StepResponse{
		Step:            res.Step,
		State:           uint8(res.State),
		LightNSStraight: uint8(res.Lights.Get(traffic.North, traffic.LaneStraightRight)),
		LightNSLeft:     uint8(res.Lights.Get(traffic.North, traffic.LaneLeft)),
		LightEWStraight: uint8(res.Lights.Get(traffic.East, traffic.LaneStraightRight)),
		LightEWLeft:     uint8(res.Lights.Get(traffic.East, traffic.LaneLeft)),
		VehiclesOut:     uint16(res.DischargedCount()),
	}
}

// ReadCommand reads the 1-byte command header
func ReadCommand(r io.Reader) (Command, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Command(b[0]), nil
}

// WriteCommand writes the 1-byte command header
func WriteCommand(w io.Writer, cmd Command) error {
	_, err := w.Write([]byte{byte(cmd)})
	return err
}

// ReadConfig reads a ConfigPayload
func ReadConfig(r io.Reader) (ConfigPayload, error) {
	var p ConfigPayload
	err := binary.Read(r, binary.LittleEndian, &p)
	return p, err
}

// WriteConfig writes a ConfigPayload
func WriteConfig(w io.Writer, p ConfigPayload) error {
	return binary.Write(w, binary.LittleEndian, p)
}

// ReadAddVehicle reads an AddVehiclePayload
func ReadAddVehicle(r io.Reader) (AddVehiclePayload, error) {
	var p AddVehiclePayload
	err := binary.Read(r, binary.LittleEndian, &p)
	return p, err
}

// WriteAddVehicle writes an AddVehiclePayload
func WriteAddVehicle(w io.Writer, p AddVehiclePayload) error {
	return binary.Write(w, binary.LittleEndian, p)
}

// WriteStepResponse writes the fixed-size head followed by the discharged
// identifier block
func WriteStepResponse(w io.Writer, res traffic.StepResult) error {
	if err := binary.Write(w, binary.LittleEndian, NewStepResponse(res)); err != nil {
		return err
	}

	for _, id := range res.Discharged {
		var block [traffic.VehicleIDLen]byte
		copy(block[:], id)
		if _, err := w.Write(block[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadStepResponse reads a full step reply including the identifier block
func ReadStepResponse(r io.Reader) (StepResponse, []string, error) {
	var resp StepResponse
	if err := binary.Read(r, binary.LittleEndian, &resp); err != nil {
		return StepResponse{}, nil, err
	}

	ids := make([]string, 0, resp.VehiclesOut)
	for i := 0; i < int(resp.VehiclesOut); i++ {
		var block [traffic.VehicleIDLen]byte
		if _, err := io.ReadFull(r, block[:]); err != nil {
			return resp, ids, err
		}
		ids = append(ids, string(bytes.TrimRight(block[:], "\x00")))
	}
	return resp, ids, nil
}
