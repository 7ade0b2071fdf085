package protocol_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bol0o/traffic-lights-sim"
	"github.com/bol0o/traffic-lights-sim/protocol"
)

func TestConfigPayloadWireFormat(t *testing.T) {
	var buf bytes.Buffer
	err := protocol.WriteConfig(&buf, protocol.NewConfigPayload(traffic.DefaultTimingConfig()))
	assert.NoError(t, err)

	expected := []byte{
		0x0a, 0x00, 0x00, 0x00, // green_st = 10
		0x05, 0x00, 0x00, 0x00, // green_lt = 5
		0x02, 0x00, 0x00, 0x00, // yellow = 2
		0x03, 0x00, 0x00, 0x00, // all_red = 3
		0x04, 0x00, 0x00, 0x00, // red_yellow = 4
		0x03, 0x00, 0x00, 0x00, // ext_threshold = 3
		0x0a, 0x00, 0x00, 0x00, // max_ext = 10
		0x02, 0x00, 0x00, 0x00, // skip_limit = 2
	}
	assert.Equal(t, expected, buf.Bytes())

	p, err := protocol.ReadConfig(&buf)
	assert.NoError(t, err)
	assert.Equal(t, traffic.DefaultTimingConfig(), p.TimingConfig())
}

func TestAddVehiclePayloadWireFormat(t *testing.T) {
	p := protocol.NewAddVehiclePayload("car-7", traffic.North, traffic.South, 7)

	var buf bytes.Buffer
	err := protocol.WriteAddVehicle(&buf, p)
	assert.NoError(t, err)
	assert.Equal(t, traffic.VehicleIDLen+2+4, buf.Len())

	raw := buf.Bytes()
	assert.Equal(t, []byte("car-7"), raw[:5])
	assert.Equal(t, bytes.Repeat([]byte{0}, traffic.VehicleIDLen-5), raw[5:traffic.VehicleIDLen])
	assert.Equal(t, uint8(0), raw[traffic.VehicleIDLen])
	assert.Equal(t, uint8(2), raw[traffic.VehicleIDLen+1])
	assert.Equal(t, []byte{7, 0, 0, 0}, raw[traffic.VehicleIDLen+2:])

	decoded, err := protocol.ReadAddVehicle(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "car-7", decoded.ID())
	assert.Equal(t, uint32(7), decoded.ArrivalStep)
}

func TestAddVehiclePayloadTruncatesID(t *testing.T) {
	long := strings.Repeat("z", traffic.VehicleIDLen+5)
	p := protocol.NewAddVehiclePayload(long, traffic.East, traffic.West, 0)
	assert.Equal(t, long[:traffic.VehicleIDLen], p.ID())
}

func TestStepResponseRoundTrip(t *testing.T) {
	res := traffic.StepResult{
		Step:       42,
		State:      traffic.StateNSStraight,
		Discharged: []string{"car-1", "car-2"},
	}
	var buf bytes.Buffer
	err := protocol.WriteStepResponse(&buf, res)
	assert.NoError(t, err)
	assert.Equal(t, 11+2*traffic.VehicleIDLen, buf.Len())

	resp, ids, err := protocol.ReadStepResponse(&buf)
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), resp.Step)
	assert.Equal(t, uint8(traffic.StateNSStraight), resp.State)
	assert.Equal(t, uint16(2), resp.VehiclesOut)
	assert.Equal(t, []string{"car-1", "car-2"}, ids)
}

func TestStepResponseLightEncoding(t *testing.T) {
	c := traffic.NewController(traffic.TimingConfig{AllRed: 1, RedYellow: 1, GreenLeft: 3, SkipLimit: 5})
	assert.NoError(t, c.AddVehicle("nl", traffic.North, traffic.East, 0))

	c.Step() // ns left prep
	res := c.Step()
	assert.Equal(t, traffic.StateNSLeft, res.State)

	resp := protocol.NewStepResponse(res)
	assert.Equal(t, uint8(traffic.LightGreen), resp.LightNSLeft)
	assert.Equal(t, uint8(traffic.LightRightArrowGreen), resp.LightEWStraight)
	assert.Equal(t, uint8(traffic.LightRed), resp.LightNSStraight)
	assert.Equal(t, uint8(traffic.LightRed), resp.LightEWLeft)
}

func TestLoopSession(t *testing.T) {
	cfg := traffic.TimingConfig{
		GreenStraight: 2,
		GreenLeft:     1,
		Yellow:        1,
		AllRed:        1,
		RedYellow:     1,
		ExtThreshold:  100,
		MaxExtension:  0,
		SkipLimit:     2,
	}

	var input bytes.Buffer
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdConfig))
	assert.NoError(t, protocol.WriteConfig(&input, protocol.NewConfigPayload(cfg)))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdAddVehicle))
	assert.NoError(t, protocol.WriteAddVehicle(&input,
		protocol.NewAddVehiclePayload("car", traffic.North, traffic.South, 0)))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStep))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStep))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStop))

	var output bytes.Buffer
	loop := protocol.NewLoop(traffic.NewController(traffic.TimingConfig{}), &input, &output)
	assert.NoError(t, loop.Run())

	// First step: red-yellow preparation for the demanded phase
	resp, ids, err := protocol.ReadStepResponse(&output)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), resp.Step)
	assert.Equal(t, uint8(traffic.StateNSPrep), resp.State)
	assert.Equal(t, uint8(traffic.LightRedYellow), resp.LightNSStraight)
	assert.Equal(t, uint16(0), resp.VehiclesOut)
	assert.Empty(t, ids)

	// Second step: green, and the queued vehicle leaves
	resp, ids, err = protocol.ReadStepResponse(&output)
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), resp.Step)
	assert.Equal(t, uint8(traffic.StateNSStraight), resp.State)
	assert.Equal(t, uint8(traffic.LightGreen), resp.LightNSStraight)
	assert.Equal(t, []string{"car"}, ids)

	assert.Equal(t, 0, output.Len())
}

func TestLoopRejectedAdmissionContinues(t *testing.T) {
	var input bytes.Buffer
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdAddVehicle))
	assert.NoError(t, protocol.WriteAddVehicle(&input,
		protocol.NewAddVehiclePayload("uturn", traffic.North, traffic.North, 0)))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStep))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStop))

	var output bytes.Buffer
	var logged []string
	loop := protocol.NewLoop(traffic.NewController(traffic.DefaultTimingConfig()), &input, &output)
	loop.SetLogf(func(format string, args ...interface{}) {
		logged = append(logged, format)
	})

	assert.NoError(t, loop.Run())
	assert.Len(t, logged, 1)

	resp, _, err := protocol.ReadStepResponse(&output)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), resp.Step)
}

func TestLoopUnknownCommand(t *testing.T) {
	var input bytes.Buffer
	assert.NoError(t, protocol.WriteCommand(&input, protocol.Command(42)))
	assert.NoError(t, protocol.WriteCommand(&input, protocol.CmdStop))

	var logged []string
	loop := protocol.NewLoop(traffic.NewController(traffic.DefaultTimingConfig()), &input, &bytes.Buffer{})
	loop.SetLogf(func(format string, args ...interface{}) {
		logged = append(logged, format)
	})

	assert.NoError(t, loop.Run())
	assert.Len(t, logged, 1)
}

func TestLoopEndOfInput(t *testing.T) {
	loop := protocol.NewLoop(traffic.NewController(traffic.DefaultTimingConfig()),
		&bytes.Buffer{}, &bytes.Buffer{})
	assert.NoError(t, loop.Run())
}
