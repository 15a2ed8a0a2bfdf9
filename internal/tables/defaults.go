package tables

import "sync"

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the D3D12 tables. The value is built once and shared.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = New(d3d12ArraySizes, d3d12Aliases, d3d12Encoders, d3d12BitFields, d3d12ComOutptrs)
	})
	return defaultTables
}

var d3d12ArraySizes = []ArraySizeHint{
	{"D3D12_PIPELINE_STATE_STREAM_DESC", "pPipelineStateSubobjectStream", "SizeInBytes"},
	{"D3D12_AUTO_BREADCRUMB_NODE", "pCommandHistory", "BreadcrumbCount"},
	{"D3D12_AUTO_BREADCRUMB_NODE1", "pCommandHistory", "BreadcrumbCount"},
	{"D3D12_AUTO_BREADCRUMB_NODE1", "pBreadcrumbContexts", "BreadcrumbContextsCount"},
	{"D3D12_FEATURE_DATA_PROTECTED_RESOURCE_SESSION_TYPES", "pTypes", "Count"},
}

// Struct, class and union spellings are rewritten to the tag names the
// header parser reports, and pointer typedefs are expanded.
var d3d12Aliases = []TypeAlias{
	{From: []string{"D3D12_RECT", "RECT"}, To: "tagRECT"},
	{From: []string{"POINT"}, To: "tagPOINT"},
	{From: []string{"REFIID", "REFGUID", "IID"}, To: "GUID"},
	{From: []string{"DXGI_RGBA"}, To: "D3DCOLORVALUE"},
	{From: []string{"ID3DBlob"}, To: "ID3D10Blob"},
	{From: []string{"SECURITY_ATTRIBUTES"}, To: "_SECURITY_ATTRIBUTES"},
	{From: []string{"D3D12_PRIMITIVE_TOPOLOGY"}, To: "D3D_PRIMITIVE_TOPOLOGY"},
	{From: []string{"LPCVOID"}, To: "void", ExtraPointers: 1, ForceConst: true},
	{From: []string{"LPVOID"}, To: "void", ExtraPointers: 1},
	{From: []string{"WCHAR"}, To: "wchar_t"},
	{From: []string{"LPCSTR"}, To: "char", ExtraPointers: 1, ForceConst: true},
	{From: []string{"LPCWSTR"}, To: "wchar_t", ExtraPointers: 1, ForceConst: true},
}

var d3d12Encoders = []EncoderMapping{
	{From: []string{"BYTE", "byte", "UINT8", "unsigned char"}, Encoder: "UInt8"},
	{From: []string{"INT8"}, Encoder: "Int8"},
	{From: []string{"UINT16", "unsigned short"}, Encoder: "UInt16"},
	{From: []string{"SHORT"}, Encoder: "Int16"},
	{From: []string{"unsigned long", "ULONG", "DWORD", "UINT", "UINT32", "unsigned int", "DXGI_USAGE"}, Encoder: "UInt32"},
	{From: []string{"HRESULT", "LONG", "BOOL", "INT", "int"}, Encoder: "Int32"},
	{From: []string{"UINT64", "D3D12_GPU_VIRTUAL_ADDRESS", "SIZE_T"}, Encoder: "UInt64"},
	{From: []string{"LARGE_INTEGER", "LONG_PTR"}, Encoder: "Int64"},
	{From: []string{"FLOAT", "float"}, Encoder: "Float"},
	{From: []string{"HANDLE", "HMONITOR", "HWND", "HMODULE", "HDC"}, Encoder: "Handle"},
	{From: []string{"void"}, Encoder: "Void"},
	{From: []string{"char"}, Encoder: "String"},
	{From: []string{"wchar_t"}, Encoder: "WString"},
	{From: []string{"PFN_DESTRUCTION_CALLBACK"}, Encoder: "Function"},
}

var d3d12BitFields = []BitField{
	{"D3D12_RAYTRACING_INSTANCE_DESC", "InstanceID", ":24"},
	{"D3D12_RAYTRACING_INSTANCE_DESC", "InstanceMask", ":8"},
	{"D3D12_RAYTRACING_INSTANCE_DESC", "InstanceContributionToHitGroupIndex", ":24"},
	{"D3D12_RAYTRACING_INSTANCE_DESC", "Flags", ":8"},
}

// These functions annotate their void** COM parameters with _Out_ instead
// of _COM_Outptr_.
var d3d12ComOutptrs = map[string][]string{
	"D3D12CreateRootSignatureDeserializer":          {"ppRootSignatureDeserializer"},
	"D3D12CreateVersionedRootSignatureDeserializer": {"ppRootSignatureDeserializer"},
}
