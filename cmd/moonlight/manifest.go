package main

import (
	"fmt"
	"os"

	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Manifest lets a corpus's solve parameters live in source control as
// a YAML file instead of being retyped on every invocation. Flags
// explicitly passed on the command line always win over the manifest.
type Manifest struct {
	Directory string `yaml:"directory,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	Weighted  string `yaml:"weighted,omitempty"`
	Analytics string `yaml:"analytics,omitempty"`
	LargeData bool   `yaml:"large_data,omitempty"`
	Greedy    bool   `yaml:"greedy,omitempty"`
	Workers   int    `yaml:"workers,omitempty"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read manifest %s: %v", moonerr.ErrIO, path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: invalid manifest %s: %v", moonerr.ErrFormat, path, err)
	}
	return &m, nil
}

// applyManifest fills any flag the user did not pass explicitly from m.
func (fs *flagSet) applyManifest(cmd *cobra.Command, m *Manifest) {
	changed := cmd.Flags().Changed
	if !changed("directory") && m.Directory != "" {
		fs.directory = m.Directory
	}
	if !changed("name") && m.Name != "" {
		fs.name = m.Name
	}
	if !changed("pattern") && m.Pattern != "" {
		fs.pattern = m.Pattern
	}
	if !changed("weighted") && m.Weighted != "" {
		fs.weighted = m.Weighted
	}
	if !changed("analytics") && m.Analytics != "" {
		fs.analytics = m.Analytics
	}
	if !changed("large-data") && m.LargeData {
		fs.largeData = true
	}
	if !changed("greedy") && m.Greedy {
		fs.greedy = true
	}
	if !changed("workers") && m.Workers != 0 {
		fs.workers = m.Workers
	}
}
