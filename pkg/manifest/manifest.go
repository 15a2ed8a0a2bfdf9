package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Counts summarizes what a generation run produced.
type Counts struct {
	Structs  int `yaml:"structs" json:"structs"`
	Commands int `yaml:"commands" json:"commands"`
	Methods  int `yaml:"methods" json:"methods"`
}

// Snapshot is one recorded generator output.
type Snapshot struct {
	Name       string `yaml:"name" json:"name"`
	Version    string `yaml:"version" json:"version"`
	File       string `yaml:"file" json:"file"`
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`
	HeaderDict string `yaml:"header_dict,omitempty" json:"header_dict,omitempty"`
	Counts     Counts `yaml:"counts" json:"counts"`
}

// Manifest tracks generated snapshots and which two are current/previous.
type Manifest struct {
	CurrentVersion  string     `yaml:"current_version" json:"current_version"`
	PreviousVersion string     `yaml:"previous_version" json:"previous_version"`
	Snapshots       []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// Load reads a manifest. A missing file yields an empty manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddSnapshot records s as the current version. Re-recording an existing
// name/version replaces the entry; re-recording the current version does not
// move PreviousVersion.
func (m *Manifest) AddSnapshot(s Snapshot) {
	if m.CurrentVersion != "" && m.CurrentVersion != s.Version {
		m.PreviousVersion = m.CurrentVersion
	}
	m.CurrentVersion = s.Version

	for i := range m.Snapshots {
		if m.Snapshots[i].Name == s.Name && m.Snapshots[i].Version == s.Version {
			m.Snapshots[i] = s
			return
		}
	}

	m.Snapshots = append(m.Snapshots, s)
}

// Find returns the snapshot recorded for version.
func (m *Manifest) Find(version string) (Snapshot, bool) {
	for _, s := range m.Snapshots {
		if s.Version == version {
			return s, true
		}
	}
	return Snapshot{}, false
}

// SnapshotFile returns the file recorded for version, or "".
func (m *Manifest) SnapshotFile(version string) string {
	s, _ := m.Find(version)
	return s.File
}
