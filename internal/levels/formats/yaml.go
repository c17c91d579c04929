package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Grid string `yaml:"grid"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid := NormalizeGrid(yl.Grid)
	if strings.TrimSpace(grid) == "" {
		return Level{}, errors.New("yaml level has an empty grid")
	}

	return Level{
		ID:   yl.ID,
		Name: yl.Name,
		Grid: grid,
	}, nil
}
