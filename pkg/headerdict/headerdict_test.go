package headerdict

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/dx12gen/pkg/model"
)

func TestLoadYAML(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "d3d12.yaml"))
	require.NoError(t, err)

	require.Equal(t, []string{"d3d12.h", "d3dcommon.h"}, d.HeaderNames())
	require.True(t, d.IsStruct("D3D12_VIEWPORT"))
	require.False(t, d.IsStruct("ID3D12Device"))
	require.True(t, d.IsClass("ID3D12Device"))
	require.True(t, d.IsEnum("D3D_FEATURE_LEVEL"))

	u, ok := d.Union("<anon-union-1>")
	require.True(t, ok)
	require.Equal(t, "<anon-union-1>", u.Name)
	require.Len(t, u.Members, 3)

	_, ok = d.Union("<anon-union-2>")
	require.False(t, ok)

	h := d.Headers["d3d12.h"]
	desc := h.Classes["D3D12_RAYTRACING_INSTANCE_DESC"]
	require.Equal(t, "D3D12_RAYTRACING_INSTANCE_DESC", desc.Name)
	want := model.RawParam{
		Name:                  "Transform",
		Type:                  "FLOAT",
		Parent:                "D3D12_RAYTRACING_INSTANCE_DESC",
		ArraySize:             "12",
		MultiDimensionalArray: 1,
	}
	if diff := cmp.Diff(want, desc.Properties.Public[0]); diff != "" {
		t.Fatalf("member mismatch (-want +got):\n%s", diff)
	}

	dev := h.Classes["ID3D12Device"]
	require.Equal(t, model.ParentName("CreateCommandQueue"), dev.Methods.Public[0].Parameters[0].Parent)

	require.Equal(t, model.ParentName("D3D12CreateDevice"), h.Functions[0].Parameters[3].Parent)
	require.Equal(t, model.ParentName("ID3D12Object"), h.Functions[5].Parent)
}

func TestLoadJSON(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "small.json"))
	require.NoError(t, err)

	box := d.Headers["d3d12.h"].Classes["D3D12_BOX"]
	require.Len(t, box.Properties.Public, 3)
	require.Equal(t, model.Size(""), box.Properties.Public[0].ArraySize)
	require.Equal(t, model.Size("4"), box.Properties.Public[1].ArraySize)
	require.Equal(t, model.Size("MAX_NAMES"), box.Properties.Public[2].ArraySize)
	require.Equal(t, model.ParentName("D3D12_BOX"), box.Properties.Public[2].Parent)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("struct_list: [A]\n"))
	require.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = Parse([]byte("{ not json"))
	require.Error(t, err)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParseParentRecord(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "yaml",
			doc: `header_dict:
  d3d12.h:
    classes:
      D3D12_RANGE:
        declaration_method: struct
        properties:
          public:
            - name: Begin
              type: SIZE_T
              parent:
                name: D3D12_RANGE
    functions:
      - name: Release
        rtnType: ULONG
        parent:
          name: IUnknown
        parameters: []
      - name: D3D12CreateDevice
        rtnType: HRESULT
        parent: null
        parameters: []
`,
		},
		{
			name: "json",
			doc: `{
	"header_dict": {
		"d3d12.h": {
			"classes": {
				"D3D12_RANGE": {
					"declaration_method": "struct",
					"properties": {"public": [{"name": "Begin", "type": "SIZE_T", "parent": {"name": "D3D12_RANGE"}}]}
				}
			},
			"functions": [
				{"name": "Release", "rtnType": "ULONG", "parent": {"name": "IUnknown"}, "parameters": []},
				{"name": "D3D12CreateDevice", "rtnType": "HRESULT", "parent": null, "parameters": []}
			]
		}
	}
}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			h := d.Headers["d3d12.h"]
			require.Equal(t, model.ParentName("D3D12_RANGE"), h.Classes["D3D12_RANGE"].Properties.Public[0].Parent)
			require.Equal(t, model.ParentName("IUnknown"), h.Functions[0].Parent)
			require.Equal(t, model.ParentName(""), h.Functions[1].Parent)
		})
	}

	_, err := Parse([]byte("header_dict:\n  a.h:\n    functions:\n      - name: F\n        parent: [x]\n"))
	require.Error(t, err)
}
