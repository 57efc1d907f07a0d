package compiler

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DriverConfig is the optional `giscript.yaml` project file a batch
// compile can load: search paths for future `.gis` includes, the output
// directory for compiled `.gil` projects, and per-event parameter name
// hints. The hints are loaded but not read anywhere: Options() passes on
// only the search paths, and the registry resolves events by each
// declared parameter's own name and type.
type DriverConfig struct {
	SearchPaths      []string            `yaml:"search_paths"`
	OutputDir        string              `yaml:"output_dir"`
	EventParamHints  map[string][]string `yaml:"event_param_hints"`
}

// LoadConfig reads a DriverConfig from a YAML file at path.
func LoadConfig(path string) (*DriverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &DriverConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options translates the config into the DriverOption set New accepts.
func (c *DriverConfig) Options() []DriverOption {
	if c == nil {
		return nil
	}
	var opts []DriverOption
	if len(c.SearchPaths) > 0 {
		opts = append(opts, WithSearchPaths(c.SearchPaths))
	}
	return opts
}
