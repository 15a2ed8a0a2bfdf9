package generator

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/mod/modfile"

	"github.com/cmmoran/dx12gen/pkg/model"
)

const modelPkg = "github.com/cmmoran/dx12gen/pkg/model"

// GenerateFile renders the collected descriptors as Go map literals.
func (g *Generator) GenerateFile() *jen.File {
	var f *jen.File
	if importPath, err := g.outputImportPath(); err == nil {
		f = jen.NewFilePathName(importPath, g.Opts.Package)
	} else {
		g.log.Debug("output directory is not inside a module", "dir", g.Opts.OutDir, "error", err)
		f = jen.NewFile(g.Opts.Package)
	}
	f.HeaderComment("Code generated by dx12gen. DO NOT EDIT.")

	f.Comment("StructMembers maps a struct name to its member descriptors.")
	f.Var().Id("StructMembers").Op("=").Map(jen.String()).Index().Qual(modelPkg, "ValueInfo").Values(
		jen.DictFunc(func(d jen.Dict) {
			for name, values := range g.StructMembers {
				d[jen.Lit(name)] = valuesLiteral(values)
			}
		}),
	)

	f.Comment("CommandParams maps a free function name to its signature.")
	f.Var().Id("CommandParams").Op("=").Map(jen.String()).Qual(modelPkg, "Signature").Values(
		signaturesDict(g.CmdParams),
	)

	f.Comment("MethodParams maps Class_Method to its signature.")
	f.Var().Id("MethodParams").Op("=").Map(jen.String()).Qual(modelPkg, "Signature").Values(
		signaturesDict(g.MethodParams),
	)

	f.Comment("HandleNames lists the opaque handle types.")
	f.Var().Id("HandleNames").Op("=").Index().String().ValuesFunc(func(grp *jen.Group) {
		for _, h := range g.HandleNames {
			grp.Lit(h)
		}
	})

	return f
}

func signaturesDict(sigs map[string]model.Signature) jen.Code {
	return jen.DictFunc(func(d jen.Dict) {
		for name, sig := range sigs {
			fields := jen.Dict{
				jen.Id("ReturnType"): jen.Lit(sig.ReturnType),
				jen.Id("Values"):     jen.Index().Qual(modelPkg, "ValueInfo").Add(valuesLiteral(sig.Values)),
			}
			if sig.Proto != "" {
				fields[jen.Id("Proto")] = jen.Lit(sig.Proto)
			}
			d[jen.Lit(name)] = jen.Values(fields)
		}
	})
}

// valuesLiteral renders {{...}, {...}} with element types elided.
func valuesLiteral(values []model.ValueInfo) *jen.Statement {
	return jen.ValuesFunc(func(grp *jen.Group) {
		for _, v := range values {
			grp.Values(valueDict(v))
		}
	})
}

// valueDict renders the non-zero fields of v.
func valueDict(v model.ValueInfo) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"):     jen.Lit(v.Name),
		jen.Id("BaseType"): jen.Lit(v.BaseType),
		jen.Id("FullType"): jen.Lit(v.FullType),
	}
	if v.PointerCount != 0 {
		d[jen.Id("PointerCount")] = jen.Lit(v.PointerCount)
	}
	if v.IsConst {
		d[jen.Id("IsConst")] = jen.True()
	}
	if v.ArrayLength != "" {
		d[jen.Id("ArrayLength")] = jen.Lit(v.ArrayLength)
	}
	if v.ArrayCapacity != "" {
		d[jen.Id("ArrayCapacity")] = jen.Lit(v.ArrayCapacity)
	}
	if v.ArrayDimension != 0 {
		d[jen.Id("ArrayDimension")] = jen.Lit(v.ArrayDimension)
	}
	if v.BitfieldWidth != "" {
		d[jen.Id("BitfieldWidth")] = jen.Lit(v.BitfieldWidth)
	}
	if len(v.UnionMembers) > 0 {
		d[jen.Id("UnionMembers")] = jen.Index().Qual(modelPkg, "UnionMember").ValuesFunc(func(grp *jen.Group) {
			for _, m := range v.UnionMembers {
				grp.Values(jen.Dict{
					jen.Id("Name"): jen.Lit(m.Name),
					jen.Id("Type"): jen.Lit(m.Type),
				})
			}
		})
	}
	if v.IsComOutptr {
		d[jen.Id("IsComOutptr")] = jen.True()
	}
	return d
}

// outputImportPath derives the import path of OutDir from the go.mod of the
// enclosing module.
func (g *Generator) outputImportPath() (string, error) {
	outDir, err := filepath.Abs(g.Opts.OutDir)
	if err != nil {
		return "", err
	}
	modDir, err := findGoModDir(outDir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(modDir, "go.mod"))
	}
	rel, err := filepath.Rel(modDir, outDir)
	if err != nil {
		return "", err
	}
	return path.Join(modPath, filepath.ToSlash(rel)), nil
}

// findGoModDir walks up from dir until it finds go.mod.
func findGoModDir(dir string) (string, error) {
	from := dir
	for {
		if _, err := os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		from = parent
	}
}
