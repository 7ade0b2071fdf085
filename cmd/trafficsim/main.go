// trafficsim is the PC host shell for the intersection controller: it
// speaks the binary command protocol on stdin/stdout so a driver process
// can configure the controller, feed vehicles and step the simulation.
// Diagnostics go to stderr.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/bol0o/traffic-lights-sim"
	"github.com/bol0o/traffic-lights-sim/protocol"
)

func main() {
	configPath := flag.String("config", "", "optional YAML timing plan used until the host sends CMD_CONFIG")
	verbose := flag.Bool("v", false, "log state transitions to stderr")
	flag.Parse()

	logger := log.New(os.Stderr, "trafficsim: ", 0)

	cfg := traffic.DefaultTimingConfig()
	if *configPath != "" {
		loaded, err := traffic.LoadTimingConfig(*configPath)
		if err != nil {
			logger.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	ctrl := traffic.NewController(cfg)
	if *verbose {
		ctrl.AddObserver(&stderrObserver{logger: logger})
	}

	loop := protocol.NewLoop(ctrl, os.Stdin, os.Stdout)
	loop.SetLogf(logger.Printf)

	if err := loop.Run(); err != nil {
		logger.Fatalf("command loop: %v", err)
	}
}

// stderrObserver mirrors state transitions to stderr without touching the
// protocol stream on stdout
type stderrObserver struct {
	traffic.BaseObserver
	logger *log.Logger
}

func (o *stderrObserver) OnStateChange(from, to traffic.TrafficState, step uint32) {
	o.logger.Printf("step %d: %s -> %s", step, from, to)
}
