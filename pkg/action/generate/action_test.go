package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/dx12gen/pkg/generator"
	"github.com/cmmoran/dx12gen/pkg/manifest"
)

func TestGenerateWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out")
	opts := generator.NewOptions()
	opts.HeaderDict = filepath.Join("testdata", "d3d12.yaml")
	opts.OutDir = out
	opts.Format = generator.FormatYAML

	res, err := Generate(opts)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "dx12_values_gen.yaml"), res.File)
	require.Equal(t, manifest.Counts{Structs: 4, Commands: 2, Methods: 3}, res.Counts)

	data, err := os.ReadFile(res.File)
	require.NoError(t, err)
	var doc generator.Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Structs, 4)
}

func TestGenerateMissingDictionary(t *testing.T) {
	opts := generator.NewOptions()
	opts.HeaderDict = filepath.Join(t.TempDir(), "missing.yaml")
	opts.OutDir = t.TempDir()

	_, err := Generate(opts)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		counts manifest.Counts
		want   string
	}{
		{manifest.Counts{Structs: 4, Commands: 1, Methods: 3}, "4 structs, 1 command, 3 methods"},
		{manifest.Counts{}, "0 structs, 0 commands, 0 methods"},
		{manifest.Counts{Structs: 1, Commands: 2, Methods: 1}, "1 struct, 2 commands, 1 method"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Result{Counts: tt.counts}.Summary())
		})
	}
}
