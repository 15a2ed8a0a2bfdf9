package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/dx12gen/pkg/model"
)

func TestIsComOutptr(t *testing.T) {
	n := New(nil, testCatalog())

	require.True(t, n.IsComOutptr("D3D12CreateRootSignatureDeserializer", "ppRootSignatureDeserializer", "_Out_ void * *"))
	require.True(t, n.IsComOutptr("D3D12CreateVersionedRootSignatureDeserializer", "ppRootSignatureDeserializer", "void * *"))
	require.True(t, n.IsComOutptr("D3D12CreateDevice", "ppDevice", "_COM_Outptr_opt_ void * *"))
	require.False(t, n.IsComOutptr("D3D12CreateDevice", "pAdapter", "_In_opt_ IUnknown *"))
	require.False(t, n.IsComOutptr("D3D12CreateRootSignatureDeserializer", "pSrcData", "LPCVOID"))
}

func TestIsClass(t *testing.T) {
	n := New(nil, testCatalog())

	out := n.ValueInfo(model.RawParam{Name: "ppDevice", Type: "_COM_Outptr_opt_ void * *", Parent: "D3D12CreateDevice"})
	require.True(t, out.IsComOutptr)
	require.True(t, n.IsClass(out))

	override := n.ValueInfo(model.RawParam{
		Name:   "ppRootSignatureDeserializer",
		Type:   "_Out_ void * *",
		Parent: "D3D12CreateRootSignatureDeserializer",
	})
	require.True(t, override.IsComOutptr)
	require.True(t, n.IsClass(override))

	plain := n.ValueInfo(model.RawParam{Name: "ppData", Type: "void * *", Parent: "Map"})
	require.False(t, n.IsClass(plain))

	blob := n.ValueInfo(model.RawParam{Name: "pBlob", Type: "ID3DBlob *", Parent: "Fn"})
	require.Equal(t, "ID3D10Blob", blob.BaseType)
	require.True(t, n.IsClass(blob))
}

func TestCatalogPredicates(t *testing.T) {
	n := New(nil, testCatalog())

	require.True(t, n.IsStruct("D3D12_VIEWPORT"))
	require.False(t, n.IsStruct("ID3D12Device"))
	require.True(t, n.IsEnum("D3D12_COMMAND_LIST_TYPE"))
	require.False(t, n.IsEnum("D3D12_VIEWPORT"))
	require.True(t, n.IsUnion("<anon-union-1>"))
	require.False(t, n.IsUnion("D3D12_VIEWPORT"))
	require.True(t, n.IsHandle("HWND"))
	require.False(t, n.IsHandle("HRESULT"))

	bare := New(nil, nil)
	require.False(t, bare.IsStruct("D3D12_VIEWPORT"))
	require.False(t, bare.IsClass(model.ValueInfo{BaseType: "ID3D12Device"}))
}

func TestInvocationTypeName(t *testing.T) {
	n := New(nil, testCatalog())
	tests := map[string]string{
		"UINT":                      "UInt32",
		"unsigned int":              "UInt32",
		"BYTE":                      "UInt8",
		"HRESULT":                   "Int32",
		"D3D12_GPU_VIRTUAL_ADDRESS": "UInt64",
		"HWND":                      "Handle",
		"char":                      "String",
		"wchar_t":                   "WString",
		"PFN_DESTRUCTION_CALLBACK":  "FunctionPtr",
		"<anon-union-1>":            "Union",
		"D3D12_VIEWPORT":            "D3D12_VIEWPORT",
	}
	for in, want := range tests {
		require.Equal(t, want, n.InvocationTypeName(in), in)
	}
}
