package simconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/simconfig"
)

const validYAML = `
image_num: 2
grid_rows: 1
grid_cols: 2
input_buffer_bits: 1024
output_buffer_bits: 1024
bandwidth: 8
mapping_strategy: naive
schedule_strategy: naive
routing: bfs
task_behavior_list:
  - - tile_id: 0
      task_id: 0
      source_tile_id: [-1]
      target_tile_id: [1]
      start_flag: true
      dependence:
        - latency: 10
          output:
            - x: 0
              y: 0
              start: 0
              end: 4
              bit: 8
              total: 100
              image_id: 0
              tile_id: 0
    - tile_id: 1
      task_id: 0
      source_tile_id: [0]
      target_tile_id: [-1]
      end_flag: true
      dependence: []
`

func TestLoadRunConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	cfg, err := simconfig.LoadRunConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.ImageNum)
	require.Len(t, cfg.TaskBehaviorList, 1)
	require.Len(t, cfg.TaskBehaviorList[0], 2)
	require.Equal(t, int64(8), cfg.Bandwidth)
}

func TestLoadRunConfig_InvalidImageNum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("image_num: 0\ngrid_rows: 1\ngrid_cols: 1\nbandwidth: 1\ntask_behavior_list: [[]]\n"), 0o644))

	_, err := simconfig.LoadRunConfig(path)
	require.ErrorIs(t, err, simconfig.ErrBadImageNum)
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := simconfig.LoadRunConfig("/nonexistent/path.yaml")
	require.Error(t, err)
}
