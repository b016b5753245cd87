// Package config loads renderer settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Render holds the settings shared by every renderer. Command-line flags
// default to these values.
type Render struct {
	Width         int     `env:"FRACTAL_WIDTH" envDefault:"2560"`
	Height        int     `env:"FRACTAL_HEIGHT" envDefault:"1440"`
	MaxIterations int     `env:"FRACTAL_MAX_ITERATIONS" envDefault:"1000"`
	SubPixels     int     `env:"FRACTAL_SUBPIXELS" envDefault:"10"`
	Bailout       float64 `env:"FRACTAL_BAILOUT" envDefault:"2"`
	OutDir        string  `env:"FRACTAL_OUT_DIR" envDefault:"out"`

	// Workers below one means one per CPU.
	Workers int `env:"FRACTAL_WORKERS" envDefault:"0"`
}

var (
	ErrBadSize       = errors.New("config: width and height must be positive")
	ErrBadIterations = errors.New("config: max iterations must be positive")
	ErrBadSubPixels  = errors.New("config: subpixels must be positive")
	ErrBadBailout    = errors.New("config: bailout must be greater than 1")
	ErrNoOutDir      = errors.New("config: output directory must be set")
)

// FromEnv reads Render from the environment without validating it, so that
// flags still get a chance to override bad values.
func FromEnv() (Render, error) {
	var cfg Render
	if err := ParseEnv(&cfg); err != nil {
		return Render{}, err
	}
	return cfg, nil
}

// Load reads Render from the environment and validates it.
func Load() (Render, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Render{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Render{}, err
	}
	return cfg, nil
}

// Validate reports the first setting no renderer can work with.
func (r Render) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return ErrBadSize
	case r.MaxIterations <= 0:
		return ErrBadIterations
	case r.SubPixels <= 0:
		return ErrBadSubPixels
	case !(r.Bailout > 1):
		return ErrBadBailout
	case r.OutDir == "":
		return ErrNoOutDir
	}
	return nil
}
