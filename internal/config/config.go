package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeed            = 1
	DefaultStateDim        = 16
	DefaultInputDim        = 2
	DefaultOutputDim       = 2
	DefaultMagnitudeBase   = 0.2
	DefaultMagnitudeExpMin = 3.0
	DefaultMagnitudeExpMax = 5.0
	DefaultFreqExpMin      = -2.0
	DefaultFreqExpMax      = 0.0
	DefaultPhaseSpan       = 2.0
	DefaultHorizon         = 1000
	DefaultKickIndex       = 4
	DefaultOutputWindow    = 350
)

type Config struct {
	Seed            int64             `yaml:"seed"`
	StateDim        int               `yaml:"state_dim"`
	InputDim        int               `yaml:"input_dim"`
	OutputDim       int               `yaml:"output_dim"`
	MagnitudeBase   float64           `yaml:"magnitude_base"`
	MagnitudeExpMin float64           `yaml:"magnitude_exp_min"`
	MagnitudeExpMax float64           `yaml:"magnitude_exp_max"`
	FreqExpMin      float64           `yaml:"freq_exp_min"`
	FreqExpMax      float64           `yaml:"freq_exp_max"`
	PhaseSpan       float64           `yaml:"phase_span"`
	Diagnostics     DiagnosticsConfig `yaml:"diagnostics"`
}

type DiagnosticsConfig struct {
	Horizon      int `yaml:"horizon"`
	KickIndex    int `yaml:"kick_index"`
	OutputWindow int `yaml:"output_window"`
}

func DefaultConfig() *Config {
	return &Config{
		Seed:            DefaultSeed,
		StateDim:        DefaultStateDim,
		InputDim:        DefaultInputDim,
		OutputDim:       DefaultOutputDim,
		MagnitudeBase:   DefaultMagnitudeBase,
		MagnitudeExpMin: DefaultMagnitudeExpMin,
		MagnitudeExpMax: DefaultMagnitudeExpMax,
		FreqExpMin:      DefaultFreqExpMin,
		FreqExpMax:      DefaultFreqExpMax,
		PhaseSpan:       DefaultPhaseSpan,
		Diagnostics: DiagnosticsConfig{
			Horizon:      DefaultHorizon,
			KickIndex:    DefaultKickIndex,
			OutputWindow: DefaultOutputWindow,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Modes is the number of complex-conjugate eigenvalue pairs.
func (c *Config) Modes() int {
	return c.StateDim / 2
}

// Validate reports the first parameter that would produce an unstable or
// malformed system.
func (c *Config) Validate() error {
	switch {
	case c.StateDim < 2 || c.StateDim%2 != 0:
		return fmt.Errorf("state_dim must be a positive even number, got %d", c.StateDim)
	case c.InputDim < 1:
		return fmt.Errorf("input_dim must be positive, got %d", c.InputDim)
	case c.OutputDim < 1:
		return fmt.Errorf("output_dim must be positive, got %d", c.OutputDim)
	case c.MagnitudeBase <= 0 || c.MagnitudeBase >= 1:
		return fmt.Errorf("magnitude_base must lie in (0,1), got %g", c.MagnitudeBase)
	case c.MagnitudeExpMin <= 0 || c.MagnitudeExpMax < c.MagnitudeExpMin:
		return fmt.Errorf("magnitude exponents must satisfy 0 < min <= max, got [%g, %g]", c.MagnitudeExpMin, c.MagnitudeExpMax)
	case c.FreqExpMax < c.FreqExpMin:
		return fmt.Errorf("frequency exponents must satisfy min <= max, got [%g, %g]", c.FreqExpMin, c.FreqExpMax)
	case c.PhaseSpan < 0:
		return fmt.Errorf("phase_span must be non-negative, got %g", c.PhaseSpan)
	case c.Diagnostics.Horizon < 1:
		return fmt.Errorf("diagnostics.horizon must be positive, got %d", c.Diagnostics.Horizon)
	case c.Diagnostics.KickIndex < 0 || c.Diagnostics.KickIndex >= c.StateDim:
		return fmt.Errorf("diagnostics.kick_index %d outside state of dimension %d", c.Diagnostics.KickIndex, c.StateDim)
	case c.Diagnostics.OutputWindow < 1:
		return fmt.Errorf("diagnostics.output_window must be positive, got %d", c.Diagnostics.OutputWindow)
	}
	return nil
}
