package config

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"small": withOverrides(func(c *Config) {
		c.StateDim = 4
		c.Diagnostics.KickIndex = 1
	}),
	"slow": withOverrides(func(c *Config) {
		c.MagnitudeExpMin = 5.0
		c.MagnitudeExpMax = 7.0
		c.FreqExpMin = -3.0
		c.FreqExpMax = -1.0
		c.Diagnostics.Horizon = 4000
		c.Diagnostics.OutputWindow = 2000
	}),
	"fast": withOverrides(func(c *Config) {
		c.MagnitudeExpMin = 1.0
		c.MagnitudeExpMax = 2.0
		c.FreqExpMin = -1.0
		c.FreqExpMax = 0.5
		c.Diagnostics.Horizon = 200
		c.Diagnostics.OutputWindow = 100
	}),
	"wide": withOverrides(func(c *Config) {
		c.StateDim = 32
		c.InputDim = 4
		c.OutputDim = 4
	}),
}

func withOverrides(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil when it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
