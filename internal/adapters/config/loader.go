// Package config provides the configuration loader for pali.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/pali/internal/core/domain"
	"go.trai.ch/pali/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "pali.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a new Loader using the default filename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads the configuration from the given working directory and returns
// the validated target graph. Cycles and unknown prerequisite references are
// configuration errors and fail here, before any action runs.
func (l *Loader) Load(cwd string) (*domain.Graph, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Palifile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	g := domain.NewGraph()

	// The targets mapping is decoded pairwise off the raw node so that
	// declaration order is preserved.
	if file.Targets.Kind != 0 && file.Targets.Kind != yaml.MappingNode {
		return nil, zerr.New("targets must be a mapping")
	}
	for i := 0; i+1 < len(file.Targets.Content); i += 2 {
		name := file.Targets.Content[i].Value

		var dto TargetDTO
		if err := file.Targets.Content[i+1].Decode(&dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse target"), "target", name)
		}

		target, err := dtoToTarget(name, &dto)
		if err != nil {
			return nil, err
		}
		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("loaded %d targets from %s", g.TargetCount(), path))
	return g, nil
}

func dtoToTarget(name string, dto *TargetDTO) (*domain.Target, error) {
	var timeout time.Duration
	if dto.Timeout != "" {
		d, err := time.ParseDuration(dto.Timeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid timeout"), "target", name)
		}
		timeout = d
	}

	return &domain.Target{
		Name:          domain.NewInternedString(name),
		Command:       dto.Cmd,
		Outputs:       canonicalizeStrings(dto.Outputs),
		Prerequisites: internStrings(dto.DependsOn),
		Phony:         dto.Phony,
		Environment:   dto.Environment,
		WorkingDir:    domain.NewInternedString(dto.WorkingDir),
		Timeout:       timeout,
	}, nil
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}

func canonicalizeStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)

	unique := slices.Compact(sorted)
	res := make([]domain.InternedString, len(unique))
	for i, s := range unique {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
