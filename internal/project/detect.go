package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MarkerFile is written into every generated project so later commands can
// recognize it.
const MarkerFile = "backforge.yml"

// Marker records how a project was generated.
type Marker struct {
	Name      string `yaml:"name"`
	Template  string `yaml:"template"`
	CreatedAt string `yaml:"created_at"`
	Version   string `yaml:"backforge_version"`
}

// IsProject checks if a directory contains backforge.yml.
func IsProject(rootPath string) bool {
	_, err := os.Stat(filepath.Join(rootPath, MarkerFile))
	return err == nil
}

// DetectProject checks for backforge.yml and parses it.
// Returns (found bool, marker *Marker, error).
func DetectProject(rootPath string) (bool, *Marker, error) {
	markerPath := filepath.Join(rootPath, MarkerFile)
	data, err := os.ReadFile(markerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to read %s: %w", MarkerFile, err)
	}

	var marker Marker
	if err := yaml.Unmarshal(data, &marker); err != nil {
		return false, nil, fmt.Errorf("failed to parse %s: %w", MarkerFile, err)
	}

	return true, &marker, nil
}
