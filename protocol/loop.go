package protocol

import (
	"errors"
	"fmt"
	"io"

	"github.com/bol0o/traffic-lights-sim"
)

// Loop is the host-side command loop: read a header, dispatch to the
// controller, write the response. One command is processed at a time, which
// is the serialization the core requires.
type Loop struct {
	ctrl *traffic.Controller
	r    io.Reader
	w    io.Writer
	logf func(format string, args ...interface{})
}

// NewLoop creates a command loop driving the given controller over the
// given transport
func NewLoop(ctrl *traffic.Controller, r io.Reader, w io.Writer) *Loop {
	return &Loop{
		ctrl: ctrl,
		r:    r,
		w:    w,
		logf: func(format string, args ...interface{}) {},
	}
}

// SetLogf installs a diagnostic sink for rejected admissions and unknown
// opcodes
func (l *Loop) SetLogf(logf func(format string, args ...interface{})) {
	if logf != nil {
		l.logf = logf
	}
}

// Run processes commands until CmdStop or end of input. Config and
// add-vehicle commands produce no reply; step commands reply with a
// StepResponse and the discharged identifier block. A rejected admission
// is diagnosed but does not stop the loop; the backpressure decision
// belongs to the host.
func (l *Loop) Run() error {
	for {
		cmd, err := ReadCommand(l.r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		switch cmd {
		case CmdConfig:
			p, err := ReadConfig(l.r)
			if err != nil {
				return fmt.Errorf("read config payload: %w", err)
			}
			l.ctrl.Init(p.TimingConfig())

		case CmdAddVehicle:
			p, err := ReadAddVehicle(l.r)
			if err != nil {
				return fmt.Errorf("read add-vehicle payload: %w", err)
			}
			if err := l.ctrl.AddVehicle(p.ID(), traffic.Direction(p.Entry), traffic.Direction(p.Exit), p.ArrivalStep); err != nil {
				l.logf("add vehicle: %v", err)
			}

		case CmdStep:
			res := l.ctrl.Step()
			if err := WriteStepResponse(l.w, res); err != nil {
				return fmt.Errorf("write step response: %w", err)
			}

		case CmdStop:
			return nil

		default:
			l.logf("unknown command: %d", cmd)
		}
	}
}
