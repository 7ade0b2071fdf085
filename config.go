package traffic

import (
	"os"

	"gopkg.in/yaml.v3"
)

// TimingConfig is the immutable-per-session set of named durations, all in
// discrete steps. Zero is legal for every field: a zero duration makes the
// state eligible to transition on the very next step, never a deadlock.
type TimingConfig struct {
	// GreenStraight is the nominal green time of the straight/right phases
	GreenStraight uint32 `yaml:"green_st"`
	// GreenLeft is the nominal green time of the protected-left phases
	GreenLeft uint32 `yaml:"green_lt"`
	// Yellow is the yellow interval after every green
	Yellow uint32 `yaml:"yellow"`
	// AllRed is the clearance interval of the startup all-red state
	AllRed uint32 `yaml:"all_red"`
	// RedYellow is the preparation interval before every green
	RedYellow uint32 `yaml:"red_yellow"`
	// ExtThreshold is the queue length that triggers a green extension
	ExtThreshold uint32 `yaml:"ext_threshold"`
	// MaxExtension caps the extra steps granted to one green phase
	MaxExtension uint32 `yaml:"max_ext"`
	// SkipLimit is the maximum consecutive times an empty phase may be
	// skipped before it is forced to run
	SkipLimit uint32 `yaml:"skip_limit"`
}

// DefaultTimingConfig returns the stock timing plan
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		GreenStraight: 10,
		GreenLeft:     5,
		Yellow:        2,
		AllRed:        3,
		RedYellow:     4,
		ExtThreshold:  3,
		MaxExtension:  10,
		SkipLimit:     2,
	}
}

// LoadTimingConfig reads a timing plan from a YAML file. Fields absent from
// the file stay zero, which is a legal configuration.
func LoadTimingConfig(path string) (TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TimingConfig{}, NewConfigError(path, err)
	}

	var cfg TimingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TimingConfig{}, NewConfigError(path, err)
	}
	return cfg, nil
}
