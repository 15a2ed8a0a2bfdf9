package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cmmoran/dx12gen/internal/normalize"
	"github.com/cmmoran/dx12gen/internal/tables"
	"github.com/cmmoran/dx12gen/pkg/headerdict"
	"github.com/cmmoran/dx12gen/pkg/model"
)

var ErrNoDictionary = errors.New("no header dictionary loaded")

// Generator walks a header dictionary and collects value descriptors for
// structs, free functions ("commands") and class methods.
type Generator struct {
	Opts Options

	dict *headerdict.Dictionary
	norm *normalize.Normalizer
	log  *slog.Logger

	StructMembers map[string][]model.ValueInfo // struct name → members
	CmdParams     map[string]model.Signature   // function name → signature
	MethodParams  map[string]model.Signature   // Class_Method → signature
	HandleNames   []string
}

// New creates a Generator with opts applied over NewOptions.
func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Generator, error) {
	opts.Normalize()

	switch opts.Format {
	case FormatGo, FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	g := &Generator{
		Opts:          *opts,
		norm:          normalize.New(tables.Default(), nil),
		log:           slog.Default().With("component", "generator"),
		StructMembers: make(map[string][]model.ValueInfo),
		CmdParams:     make(map[string]model.Signature),
		MethodParams:  make(map[string]model.Signature),
	}

	return g, nil
}

// Load reads the header dictionary named by Opts.HeaderDict.
func (g *Generator) Load() error {
	d, err := headerdict.Load(g.Opts.HeaderDict)
	if err != nil {
		return err
	}
	g.UseDictionary(d)
	return nil
}

// UseDictionary sets the source dictionary. d must already be indexed.
func (g *Generator) UseDictionary(d *headerdict.Dictionary) {
	g.dict = d
	g.norm = normalize.New(tables.Default(), d)
}

// SetLogger replaces the logger used for diagnostics.
func (g *Generator) SetLogger(l *slog.Logger) {
	if l != nil {
		g.log = l
	}
}

// Normalizer exposes the normalizer bound to the current dictionary.
func (g *Generator) Normalizer() *normalize.Normalizer {
	return g.norm
}

// Generate runs every collection pass.
func (g *Generator) Generate() error {
	if g.dict == nil {
		return ErrNoDictionary
	}
	g.GenType("")
	g.log.Info("collected value descriptors",
		"structs", len(g.StructMembers),
		"commands", len(g.CmdParams),
		"methods", len(g.MethodParams),
		"handles", len(g.HandleNames),
	)
	return nil
}

// -----------------------------------------------------------------------------
// Traversal hooks
// -----------------------------------------------------------------------------

// GenType is invoked per type by the driving framework. Whatever the name,
// it re-runs every pass over the dictionary; passes overwrite the same keys
// so repeated calls are harmless.
func (g *Generator) GenType(name string) {
	g.GenStruct()
	g.GenCmd()
	g.GenMethod()
	g.GenHandle()
}

// GenStruct collects the members of every required struct.
func (g *Generator) GenStruct() {
	if g.dict == nil {
		return
	}
	for _, hname := range g.dict.HeaderNames() {
		h := g.dict.Headers[hname]
		for _, cname := range h.ClassNames() {
			c := h.Classes[cname]
			if !g.IsRequiredStruct(cname, c) {
				g.log.Debug("skip struct", "header", hname, "name", cname, "declaration", c.DeclarationMethod)
				continue
			}
			g.StructMembers[cname] = g.norm.ValueInfos(c.Properties.Public)
		}
	}
}

// GenCmd collects the signature of every required free function.
func (g *Generator) GenCmd() {
	if g.dict == nil {
		return
	}
	for _, hname := range g.dict.HeaderNames() {
		for _, f := range g.dict.Headers[hname].Functions {
			if !g.IsRequiredFunction(f) {
				g.log.Debug("skip function", "header", hname, "name", f.Name)
				continue
			}
			g.CmdParams[f.Name] = model.Signature{
				ReturnType: normalize.CleanType(f.RtnType),
				Values:     g.norm.ValueInfos(f.Parameters),
			}
		}
	}
}

// GenMethod collects the public methods of every required class under
// "Class_Method".
func (g *Generator) GenMethod() {
	if g.dict == nil {
		return
	}
	for _, hname := range g.dict.HeaderNames() {
		h := g.dict.Headers[hname]
		for _, cname := range h.ClassNames() {
			c := h.Classes[cname]
			if !g.IsRequiredClass(c) {
				continue
			}
			for _, m := range c.Methods.Public {
				g.MethodParams[cname+"_"+m.Name] = model.Signature{
					ReturnType: normalize.CleanType(m.RtnType),
					Values:     g.norm.ValueInfos(m.Parameters),
				}
			}
		}
	}
}

func (g *Generator) GenHandle() {
	g.HandleNames = slices.Clone(normalize.HandleNames)
}

// -----------------------------------------------------------------------------
// Name lists
// -----------------------------------------------------------------------------

// FilteredStructNames returns the dictionary struct list, minus blacklisted
// names when blacklist checking is enabled.
func (g *Generator) FilteredStructNames() []string {
	if g.dict == nil {
		return nil
	}
	if !g.Opts.CheckBlacklist {
		return slices.Clone(g.dict.StructList)
	}
	out := make([]string, 0, len(g.dict.StructList))
	for _, n := range g.dict.StructList {
		if !g.isStructBlacklisted(n) {
			out = append(out, n)
		}
	}
	return out
}

// FilteredMethodNames returns the collected method keys in sorted order.
func (g *Generator) FilteredMethodNames() []string {
	return sortedKeys(g.MethodParams)
}
