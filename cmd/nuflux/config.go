package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nu-flux/nuflux"
)

// config holds the CLI's run parameters.
type config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// OutPrefix is prepended to the generated export file name.
	OutPrefix string `koanf:"out_prefix"`

	// Samples is the number of energy grid points to export.
	Samples int `koanf:"samples"`

	// Model parameters; see nuflux.ModelConfig.
	ZMin            float64 `koanf:"z_min"`
	ZMax            float64 `koanf:"z_max"`
	Alpha           float64 `koanf:"alpha"`
	SourceIndex     float64 `koanf:"source_index"`
	NeutrinoMass    float64 `koanf:"neutrino_mass"`
	RelicDensity    float64 `koanf:"relic_density"`
	Emissivity      float64 `koanf:"emissivity"`
	EnergyMin       float64 `koanf:"energy_min"`
	EnergyMax       float64 `koanf:"energy_max"`
	ZDecay          bool    `koanf:"z_decay"`
	EnergyWeighting bool    `koanf:"energy_weighting"`

	// Cosmology.
	H      float64 `koanf:"h"`
	OmegaM float64 `koanf:"omega_m"`
	OmegaL float64 `koanf:"omega_l"`
	OmegaK float64 `koanf:"omega_k"`
}

// defaults returns the Eberle 2004 run configuration.
func defaults() *config {
	return &config{
		LogLevel:        "info",
		OutPrefix:       "nuflux",
		Samples:         10000,
		ZMin:            0,
		ZMax:            20,
		Alpha:           1,
		SourceIndex:     1,
		NeutrinoMass:    1,
		RelicDensity:    1e-5,
		Emissivity:      3e6,
		EnergyMin:       1e15,
		EnergyMax:       5e22,
		ZDecay:          true,
		EnergyWeighting: true,
		H:               0.678,
		OmegaM:          0.308,
		OmegaL:          0.692,
		OmegaK:          0,
	}
}

// loadConfig builds a config by layering defaults, an optional YAML file,
// and environment variables. Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) from path, or NUFLUX_CONFIG when path is empty
//  3. env (prefix NUFLUX_)
func loadConfig(path string) (*config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("NUFLUX_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment variables: NUFLUX_Z_MAX, NUFLUX_NEUTRINO_MASS, ...
	// Keys keep their underscores to match the koanf tags.
	envProvider := env.Provider("NUFLUX_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nuflux_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Samples < 2 {
		return nil, fmt.Errorf("samples = %d, want at least 2", cfg.Samples)
	}
	if cfg.OutPrefix == "" {
		return nil, fmt.Errorf("out_prefix must not be empty")
	}
	return &cfg, nil
}

// modelConfig maps the CLI configuration onto the library's ModelConfig.
func (c *config) modelConfig() nuflux.ModelConfig {
	return nuflux.ModelConfig{
		ZMin:         c.ZMin,
		ZMax:         c.ZMax,
		Alpha:        c.Alpha,
		SourceIndex:  c.SourceIndex,
		NeutrinoMass: c.NeutrinoMass,
		RelicDensity: c.RelicDensity,
		Emissivity:   c.Emissivity,
		EnergyMin:    c.EnergyMin,
		EnergyMax:    c.EnergyMax,
		Cosmology: nuflux.Cosmology{
			H:      c.H,
			OmegaM: c.OmegaM,
			OmegaL: c.OmegaL,
			OmegaK: c.OmegaK,
		},
		DisableZDecay:          !c.ZDecay,
		DisableEnergyWeighting: !c.EnergyWeighting,
	}
}
