package simconfig

// ItemSpec is the YAML shape of one DataItem: either a payload fragment
// (X >= 0) or a control record (X < 0). ImageID is left as a template
// placeholder (-1 means "filled in per pass by the engine").
type ItemSpec struct {
	X       int64 `yaml:"x"`
	Y       int64 `yaml:"y"`
	Start   int64 `yaml:"start"`
	End     int64 `yaml:"end"`
	Bit     int64 `yaml:"bit"`
	Total   int64 `yaml:"total"`
	ImageID int   `yaml:"image_id"`
	Field7  int64 `yaml:"field7"`
	Field8  int64 `yaml:"field8"`
	TileID  int   `yaml:"tile_id"`
}

// DependenceSpec is one step of a tile's behavior template.
type DependenceSpec struct {
	Wait    []ItemSpec `yaml:"wait,omitempty"`
	Output  []ItemSpec `yaml:"output,omitempty"`
	Drop    []ItemSpec `yaml:"drop,omitempty"`
	Latency float64    `yaml:"latency"`
}

// TileBehavior is the YAML shape of one tile's placement and behavior,
// per spec.md §6's task_behavior_list entries.
type TileBehavior struct {
	TileID        int              `yaml:"tile_id"`
	TaskID        int              `yaml:"task_id"`
	LayerID       int              `yaml:"layer_id"`
	SourceTileID  []int            `yaml:"source_tile_id"`
	TargetTileID  []int            `yaml:"target_tile_id"`
	ControlTileID *int             `yaml:"control_tile_id,omitempty"`
	ExitID        *int             `yaml:"exit_id,omitempty"`
	Dependence    []DependenceSpec `yaml:"dependence"`
	StartFlag     bool             `yaml:"start_flag,omitempty"`
	EndFlag       bool             `yaml:"end_flag,omitempty"`
	ToExit        bool             `yaml:"to_exit,omitempty"`
}

// RunConfig is the full external description of one simulation run.
type RunConfig struct {
	TaskBehaviorList [][]TileBehavior `yaml:"task_behavior_list"`
	ImageNum         int              `yaml:"image_num"`
	GridRows         int              `yaml:"grid_rows"`
	GridCols         int              `yaml:"grid_cols"`
	InputBufferBits  int64            `yaml:"input_buffer_bits"`
	OutputBufferBits int64            `yaml:"output_buffer_bits"`
	Bandwidth        int64            `yaml:"bandwidth"`
	MappingStrategy  string           `yaml:"mapping_strategy"`
	ScheduleStrategy string           `yaml:"schedule_strategy"`
	Routing          string           `yaml:"routing"`
	SampleList       [][]bool         `yaml:"sample_list"`
}
