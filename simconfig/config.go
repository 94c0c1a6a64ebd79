package simconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRunConfig reads and validates a RunConfig from a YAML file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("simconfig: read %s: %w", path, err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("simconfig: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration errors spec.md §7 calls out as fatal
// at init: non-positive image_num, grid dimension, or bandwidth, and an
// empty task list.
func (c *RunConfig) Validate() error {
	if c.ImageNum <= 0 {
		return ErrBadImageNum
	}
	if c.GridRows <= 0 || c.GridCols <= 0 {
		return ErrBadGridShape
	}
	if c.Bandwidth <= 0 {
		return ErrBadBandwidth
	}
	if len(c.TaskBehaviorList) == 0 {
		return ErrEmptyTaskList
	}
	return nil
}
