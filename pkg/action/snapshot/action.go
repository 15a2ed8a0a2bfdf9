package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/dx12gen/pkg/action/generate"
	"github.com/cmmoran/dx12gen/pkg/generator"
	"github.com/cmmoran/dx12gen/pkg/manifest"
)

var ErrNoSnapshots = errors.New("no current/previous snapshots recorded")

// Generate writes a snapshot of the current descriptors and records it in
// the manifest. The output file name carries the version so that earlier
// snapshots are not overwritten.
func Generate(opts *generator.Options, manifestPath, snapshotName, snapshotVersion string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	o := *opts
	o.Normalize()
	o.OutFile = VersionedFile(o.OutFile, snapshotVersion)

	res, err := generate.Generate(&o)
	if err != nil {
		return "", err
	}

	m.AddSnapshot(manifest.Snapshot{
		Name:       snapshotName,
		Version:    snapshotVersion,
		File:       res.File,
		Format:     o.Format,
		HeaderDict: o.HeaderDict,
		Counts:     res.Counts,
	})
	if err = m.Save(manifestPath); err != nil {
		return "", err
	}

	return res.File, nil
}

// VersionedFile inserts version before the extension of name:
// dx12_values_gen.yaml becomes dx12_values_gen.v2.yaml. Names that already
// mention the version are returned unchanged.
func VersionedFile(name, version string) string {
	version = strings.NewReplacer("/", "_", `\`, "_").Replace(strings.TrimSpace(version))
	if version == "" || strings.Contains(name, version) {
		return name
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + version + ext
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious compares the current snapshot against the previous
// one. YAML and JSON snapshots of the same format are compared as documents,
// anything else as text. An empty result means the two are identical.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}
	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", ErrNoSnapshots
	}

	current, ok := m.Find(m.CurrentVersion)
	if !ok {
		return "", fmt.Errorf("current snapshot %q not in manifest", m.CurrentVersion)
	}
	previous, ok := m.Find(m.PreviousVersion)
	if !ok {
		return "", fmt.Errorf("previous snapshot %q not in manifest", m.PreviousVersion)
	}

	asDocument := current.Format == previous.Format
	prev, err := readSnapshot(previous, asDocument)
	if err != nil {
		return "", err
	}
	cur, err := readSnapshot(current, asDocument)
	if err != nil {
		return "", err
	}

	return cmp.Diff(prev, cur), nil
}

// readSnapshot returns the decoded *generator.Document of a YAML or JSON
// snapshot when asDocument is set, the file text otherwise.
func readSnapshot(s manifest.Snapshot, asDocument bool) (any, error) {
	data, err := os.ReadFile(s.File)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.Version, err)
	}
	if !asDocument {
		return string(data), nil
	}

	doc := &generator.Document{}
	switch s.Format {
	case generator.FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case generator.FormatJSON:
		err = json.Unmarshal(data, doc)
	default:
		return string(data), nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.Version, err)
	}
	return doc, nil
}
