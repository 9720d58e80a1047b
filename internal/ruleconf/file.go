// Package ruleconf decodes YAML program files into rule trees and loads the
// CLI run configuration.
package ruleconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"voxel-ca/internal/engine"
	"voxel-ca/pkg/automaton"
)

// File is the on-disk form of a program and the grid it runs on.
type File struct {
	Name     string      `yaml:"name"`
	Topology string      `yaml:"topology"`
	Size     []int       `yaml:"size"`
	Seed     int64       `yaml:"seed"`
	Stages   []StageSpec `yaml:"stages"`
}

// StageSpec is one stage of a program file.
type StageSpec struct {
	Name        string `yaml:"name"`
	Generations int    `yaml:"generations"`
	Rule        *Node  `yaml:"rule"`
}

// Load reads and parses a program file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a program file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty program file")
		}
		return nil, err
	}
	if len(f.Size) != 3 {
		return nil, fmt.Errorf("size must have 3 entries, got %d", len(f.Size))
	}
	if len(f.Stages) == 0 {
		return nil, errors.New("program has no stages")
	}
	return &f, nil
}

// Grid allocates the grid described by the file.
func (f *File) Grid() (automaton.Grid, error) {
	return automaton.NewGrid(automaton.Topology(f.Topology), f.Size[0], f.Size[1], f.Size[2])
}

// Program builds the rule trees of every stage. Random rules without an
// explicit seed get one derived from the file seed and their position.
func (f *File) Program() (engine.Program, error) {
	b := &builder{seed: f.Seed}
	p := engine.Program{Name: f.Name}
	for i, st := range f.Stages {
		if st.Rule == nil {
			return engine.Program{}, fmt.Errorf("stage %d (%s): missing rule", i, st.Name)
		}
		rule, err := b.build(st.Rule)
		if err != nil {
			return engine.Program{}, fmt.Errorf("stage %d (%s): %w", i, st.Name, err)
		}
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("stage-%d", i)
		}
		p.Stages = append(p.Stages, engine.Stage{Name: name, Rule: rule, Generations: st.Generations})
	}
	if err := p.Validate(); err != nil {
		return engine.Program{}, err
	}
	return p, nil
}
