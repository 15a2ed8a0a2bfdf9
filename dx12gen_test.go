package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	. "github.com/cmmoran/dx12gen/pkg/generator"
)

func TestGenerateFixtures(ttt *testing.T) {
	headerDict := "testdata/fixtures/canonical/header_dict.yaml"
	expectDir := "testdata/fixtures/expectations"
	tests := []struct {
		name   string
		opts   []Option
		expect string
	}{
		{
			name:   "generate yaml with defaults",
			opts:   []Option{WithFormat(FormatYAML)},
			expect: "default.yaml",
		},
		{
			name:   "generate json with defaults",
			opts:   []Option{WithFormat(FormatJSON)},
			expect: "default.yaml",
		},
		{
			name:   "generate yaml with struct blacklist",
			opts:   []Option{WithFormat(FormatYAML), WithStructBlacklist("D3D12_BOX")},
			expect: "blacklist.yaml",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := append([]Option{
				WithHeaderDict(headerDict),
				WithOutDir(t.TempDir()),
			}, tt.opts...)

			g, err := New(opts...)
			require.NoError(t, err)
			require.NoError(t, g.Load())
			require.NoError(t, g.Generate())

			out := new(bytes.Buffer)
			require.NoError(t, g.Write(out))

			var got Document
			if g.Opts.Format == FormatJSON {
				require.NoError(t, json.Unmarshal(out.Bytes(), &got))
			} else {
				require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
			}

			expectedBytes, err := os.ReadFile(filepath.Join(expectDir, tt.expect))
			require.NoError(t, err)
			var want Document
			require.NoError(t, yaml.Unmarshal(expectedBytes, &want))

			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Logf("output: %s", out.String())
				t.Fatalf("Write() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateGoFixture(t *testing.T) {
	g, err := New(
		WithHeaderDict("testdata/fixtures/canonical/header_dict.yaml"),
		WithOutDir(t.TempDir()),
		WithPackage("fixture"),
	)
	require.NoError(t, err)
	require.NoError(t, g.Load())
	require.NoError(t, g.Generate())

	out := new(bytes.Buffer)
	require.NoError(t, g.Write(out))
	require.Contains(t, out.String(), "package fixture")
	require.Contains(t, out.String(), `"D3D12GetDebugInterface"`)
	require.Contains(t, out.String(), `"ID3D12Fence_SetEventOnCompletion"`)
	require.NotContains(t, out.String(), "DEFINE_GUID")
}
