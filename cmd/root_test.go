package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/dx12gen/pkg/generator"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"debug+1", slog.LevelDebug + 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := parseLevel("loud")
	require.Error(t, err)
}

func TestGenerateFlagsExist(t *testing.T) {
	for _, c := range []string{"generate", "snapshot"} {
		found, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		require.Equal(t, c, found.Name())
	}

	gen := NewGenerateCommand()
	for key, name := range generateFlags {
		require.NotNil(t, gen.Flags().Lookup(name), key)
	}
}

// runRoot executes rootCmd with args against a clean viper instance.
func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		viper.Reset()
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGenerateConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	headerDict, err := filepath.Abs(filepath.Join("..", "testdata", "fixtures", "canonical", "header_dict.yaml"))
	require.NoError(t, err)

	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`generate:
  header_dict: `+headerDict+`
  out_dir: `+outDir+`
  format: json
  package: cfgpkg
  struct_blacklist:
    - D3D12_BOX
`), 0o644))
	t.Setenv("DX12GEN_GENERATE_PACKAGE", "envpkg")

	runRoot(t, "generate", "--config", cfg, "--format", "yaml")

	opts, err := loadGenerateOptions()
	require.NoError(t, err)
	require.Equal(t, headerDict, opts.HeaderDict)
	require.Equal(t, outDir, opts.OutDir)
	require.Equal(t, generator.FormatYAML, opts.Format)
	require.Equal(t, "dx12_values_gen.yaml", opts.OutFile)
	require.Equal(t, "envpkg", opts.Package)
	require.True(t, opts.CheckBlacklist)
	require.Equal(t, []string{"D3D12_BOX"}, opts.StructBlacklist)

	data, err := os.ReadFile(filepath.Join(outDir, "dx12_values_gen.yaml"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "D3D12_BOX")
	require.Contains(t, string(data), "D3D12_SUBRESOURCE_DATA")
}

func TestVersion(t *testing.T) {
	require.Equal(t, "dev", Version())
	require.Contains(t, runRoot(t, "--version"), "dx12gen version dev")

	saved := version
	t.Cleanup(func() { version = saved })
	version = " v1.2.0 "
	require.Equal(t, "v1.2.0", Version())
}
