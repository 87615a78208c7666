package config

import "gopkg.in/yaml.v3"

// Palifile represents the structure of the pali.yaml configuration file.
// Targets is kept as a raw yaml.Node so that declaration order survives
// decoding; Go maps would randomize it and resolution order must be stable.
type Palifile struct {
	Version string    `yaml:"version"`
	Targets yaml.Node `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Cmd         []string          `yaml:"cmd"`
	Outputs     []string          `yaml:"outputs"`
	DependsOn   []string          `yaml:"dependsOn"`
	Phony       bool              `yaml:"phony"`
	Environment map[string]string `yaml:"environment"`
	WorkingDir  string            `yaml:"workingDir"`
	Timeout     string            `yaml:"timeout"`
}
