package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProjectFile is the top-level JSON structure for project import and
// export. Task prices are authoritative when present; tasks without a
// price share the project budget.
type ProjectFile struct {
	Project ProjectFields `json:"project"`
	Tasks   []TaskFields  `json:"tasks,omitempty"`
}

// ProjectFields defines the project-level fields in the transfer file.
type ProjectFields struct {
	Title       string `json:"title"`
	Client      string `json:"client,omitempty"`
	Description string `json:"description,omitempty"`
	Budget      *int   `json:"budget,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TaskFields defines a task in the transfer file.
type TaskFields struct {
	Name  string   `json:"name"`
	Price *int     `json:"price,omitempty"`
	Hours *float64 `json:"hours,omitempty"`
	Done  bool     `json:"done,omitempty"`
}

// LoadProjectFile reads and parses a project transfer JSON file.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ProjectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return &pf, nil
}

// SaveProjectFile writes a transfer file as indented JSON.
func SaveProjectFile(path string, pf *ProjectFile) error {
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
