// Package config loads simulator settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/globesim/internal/logging"
	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/philipparndt/globesim/pkg/geometry"
	"github.com/philipparndt/globesim/pkg/heart"
	"github.com/philipparndt/globesim/pkg/scene"
	"gopkg.in/yaml.v3"
)

// Config is the full settings file
type Config struct {
	Heart    HeartConfig    `yaml:"heart"`
	Catheter CatheterConfig `yaml:"catheter"`
	AutoMap  AutoMapConfig  `yaml:"automap"`
	Render   RenderConfig   `yaml:"render"`
	Log      logging.Config `yaml:"log"`
}

// HeartConfig describes the heart sphere and signal falloff
type HeartConfig struct {
	Radius      float64 `yaml:"radius"`
	MaxDistance float64 `yaml:"max_distance"`
}

// CatheterConfig holds the start position and contact threshold
type CatheterConfig struct {
	Start            [3]float64 `yaml:"start"`
	ContactThreshold float64    `yaml:"contact_threshold"`
}

// AutoMapConfig describes the automatic sweep
type AutoMapConfig struct {
	Steps     int           `yaml:"steps"`
	Delay     time.Duration `yaml:"delay"`
	Radius    float64       `yaml:"radius"`
	CenterZ   float64       `yaml:"center_z"`
	Amplitude float64       `yaml:"amplitude"`
}

// RenderConfig sets the tessellation of the scene
type RenderConfig struct {
	HeartDivisions     int     `yaml:"heart_divisions"`
	HubRadius          float64 `yaml:"hub_radius"`
	HubDivisions       int     `yaml:"hub_divisions"`
	ElectrodeRadius    float64 `yaml:"electrode_radius"`
	ElectrodeDivisions int     `yaml:"electrode_divisions"`
	TubeDiameter       float64 `yaml:"tube_diameter"`
	TubeDivisions      int     `yaml:"tube_divisions"`
}

// Default returns the built-in settings
func Default() Config {
	start := catheter.StartPosition
	path := catheter.DefaultPath()
	opts := scene.DefaultOptions()

	return Config{
		Heart: HeartConfig{
			Radius:      heart.DefaultRadius,
			MaxDistance: heart.DefaultMaxDistance,
		},
		Catheter: CatheterConfig{
			Start:            [3]float64{start.X, start.Y, start.Z},
			ContactThreshold: catheter.DefaultContactThreshold,
		},
		AutoMap: AutoMapConfig{
			Steps:     catheter.DefaultAutoMapSteps,
			Delay:     catheter.DefaultAutoMapDelay,
			Radius:    path.Radius,
			CenterZ:   path.CenterZ,
			Amplitude: path.Amplitude,
		},
		Render: RenderConfig{
			HeartDivisions:     opts.HeartDivisions,
			HubRadius:          opts.HubRadius,
			HubDivisions:       opts.HubDivisions,
			ElectrodeRadius:    opts.ElectrodeRadius,
			ElectrodeDivisions: opts.ElectrodeDivisions,
			TubeDiameter:       opts.TubeDiameter,
			TubeDivisions:      opts.TubeDivisions,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every setting that is out of range
func (c Config) Validate() error {
	var errs []error
	if c.Heart.Radius <= 0 {
		errs = append(errs, fmt.Errorf("heart.radius must be positive, got %v", c.Heart.Radius))
	}
	if c.Heart.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("heart.max_distance must be positive, got %v", c.Heart.MaxDistance))
	}
	if c.Catheter.ContactThreshold < 0 || c.Catheter.ContactThreshold > 1 {
		errs = append(errs, fmt.Errorf("catheter.contact_threshold must be in [0,1], got %v", c.Catheter.ContactThreshold))
	}
	if c.AutoMap.Steps <= 0 {
		errs = append(errs, fmt.Errorf("automap.steps must be positive, got %d", c.AutoMap.Steps))
	}
	if c.AutoMap.Delay < 0 {
		errs = append(errs, fmt.Errorf("automap.delay must not be negative, got %v", c.AutoMap.Delay))
	}
	r := c.Render
	if r.HeartDivisions < 1 || r.HubDivisions < 1 || r.ElectrodeDivisions < 1 || r.TubeDivisions < 1 {
		errs = append(errs, errors.New("render divisions must be at least 1"))
	}
	if r.HubRadius <= 0 || r.ElectrodeRadius <= 0 || r.TubeDiameter <= 0 {
		errs = append(errs, errors.New("render sizes must be positive"))
	}
	return errors.Join(errs...)
}

// Field returns the heart field described by the config
func (c Config) Field() heart.Field {
	return heart.Field{Radius: c.Heart.Radius, MaxDistance: c.Heart.MaxDistance}
}

// Start returns the configured start position of the hub
func (c Config) Start() geometry.Vector3 {
	return geometry.NewVector3(c.Catheter.Start[0], c.Catheter.Start[1], c.Catheter.Start[2])
}

// NewSimulator builds a simulator with the configured field, placed at Start
func (c Config) NewSimulator() *catheter.Simulator {
	sim := catheter.NewWithField(c.Field())
	if start := c.Start(); start != sim.Hub() {
		sim.MoveTo(start)
	}
	return sim
}

// AutoMapper builds the configured sweep
func (c Config) AutoMapper() *catheter.AutoMapper {
	a := catheter.NewAutoMapper()
	a.Steps = c.AutoMap.Steps
	a.Delay = c.AutoMap.Delay
	a.Path = catheter.Path{
		Radius:    c.AutoMap.Radius,
		CenterZ:   c.AutoMap.CenterZ,
		Amplitude: c.AutoMap.Amplitude,
	}
	return a
}

// SceneOptions returns the configured tessellation
func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		HeartDivisions:     c.Render.HeartDivisions,
		HubRadius:          c.Render.HubRadius,
		HubDivisions:       c.Render.HubDivisions,
		ElectrodeRadius:    c.Render.ElectrodeRadius,
		ElectrodeDivisions: c.Render.ElectrodeDivisions,
		TubeDiameter:       c.Render.TubeDiameter,
		TubeDivisions:      c.Render.TubeDivisions,
	}
}
