package config

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// JobFile lists trace jobs as they appear on disk.
type JobFile struct {
	Jobs []JobSpec `json:"jobs" yaml:"jobs"`
}

// JobSpec describes one ray. Either End or Direction with Distance must be set.
type JobSpec struct {
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	Start     [3]float64  `json:"start" yaml:"start"`
	End       *[3]float64 `json:"end,omitempty" yaml:"end,omitempty"`
	Direction *[3]float64 `json:"direction,omitempty" yaml:"direction,omitempty"`
	Distance  float64     `json:"distance,omitempty" yaml:"distance,omitempty"`
	Solid     [][3]int    `json:"solid,omitempty" yaml:"solid,omitempty"`
}

func (j JobSpec) Validate() error {
	switch {
	case j.End != nil && j.Direction != nil:
		return fmt.Errorf("job %q: end and direction are mutually exclusive", j.ID)
	case j.End == nil && j.Direction == nil:
		return fmt.Errorf("job %q: one of end or direction is required", j.ID)
	case j.Direction != nil && j.Distance < 0:
		return fmt.Errorf("job %q: distance must not be negative", j.ID)
	}
	return nil
}

// LoadJobs decodes a YAML job file.
func LoadJobs(r io.Reader) ([]JobSpec, error) {
	var f JobFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return f.validated()
}

// LoadJobsJSON decodes a JSON job file.
func LoadJobsJSON(r io.Reader) ([]JobSpec, error) {
	var f JobFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return f.validated()
}

func (f JobFile) validated() ([]JobSpec, error) {
	for _, j := range f.Jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Jobs, nil
}
