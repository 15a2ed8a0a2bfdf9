package generator

import (
	"path/filepath"
	"strings"
)

const (
	FormatGo   = "go"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Options control generation.
//
// HeaderDict      – header dictionary file (YAML or JSON) to read
// OutDir          – output directory
// OutFile         – output filename, defaults by Format
// Format          – go, yaml or json
// Package         – package name of generated Go code
// CheckBlacklist  – skip structs named in StructBlacklist
// StructBlacklist – struct names excluded when CheckBlacklist is set
type Options struct {
	HeaderDict      string   `json:"header_dict,omitempty" yaml:"header_dict,omitempty" toml:"header_dict,omitempty" mapstructure:"header_dict,omitempty"`
	OutDir          string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile         string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Format          string   `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty" mapstructure:"format,omitempty"`
	Package         string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty" mapstructure:"package,omitempty"`
	CheckBlacklist  bool     `json:"check_blacklist,omitempty" yaml:"check_blacklist,omitempty" toml:"check_blacklist,omitempty" mapstructure:"check_blacklist,omitempty"`
	StructBlacklist []string `json:"struct_blacklist,omitempty" yaml:"struct_blacklist,omitempty" toml:"struct_blacklist,omitempty" mapstructure:"struct_blacklist,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		HeaderDict: "header_dict.yaml",
		OutDir:     "generated",
		Format:     FormatGo,
		Package:    "dx12",
	}
}

func (o *Options) Normalize() {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = FormatGo
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "generated"
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if len(o.OutFile) == 0 {
		o.OutFile = "dx12_values_gen." + o.Format
	}
	if len(o.Package) == 0 {
		o.Package = "dx12"
	}
	for i, n := range o.StructBlacklist {
		o.StructBlacklist[i] = strings.TrimSpace(n)
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithHeaderDict(p string) Option { return func(o *Options) { o.HeaderDict = p } }
func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option    { return func(o *Options) { o.OutFile = f } }
func WithFormat(f string) Option     { return func(o *Options) { o.Format = f } }
func WithPackage(p string) Option    { return func(o *Options) { o.Package = p } }
func WithStructBlacklist(names ...string) Option {
	return func(o *Options) {
		o.CheckBlacklist = true
		for _, n := range names {
			o.StructBlacklist = append(o.StructBlacklist, strings.TrimSpace(n))
		}
	}
}
