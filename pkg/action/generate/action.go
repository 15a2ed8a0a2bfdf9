package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/dx12gen/pkg/generator"
	"github.com/cmmoran/dx12gen/pkg/manifest"
)

// Result describes a finished generation run.
type Result struct {
	File   string
	Counts manifest.Counts
}

// Summary renders counts as "4 structs, 1 command, 3 methods".
func (r Result) Summary() string {
	return fmt.Sprintf("%s, %s, %s",
		count(r.Counts.Structs, "struct"),
		count(r.Counts.Commands, "command"),
		count(r.Counts.Methods, "method"),
	)
}

func count(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// Generate loads the header dictionary, collects every descriptor and writes
// them to OutDir/OutFile.
func Generate(opts *generator.Options) (*Result, error) {
	g, err := generator.NewWithOpts(opts)
	if err != nil {
		return nil, err
	}
	if err = g.Load(); err != nil {
		return nil, err
	}
	if err = g.Generate(); err != nil {
		return nil, err
	}

	if err = os.MkdirAll(g.Opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	outFile := filepath.Clean(filepath.Join(g.Opts.OutDir, g.Opts.OutFile))
	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	if err = g.Write(ff); err != nil {
		_ = ff.Close()
		return nil, err
	}
	if err = ff.Close(); err != nil {
		return nil, fmt.Errorf("close output file: %w", err)
	}

	return &Result{
		File: outFile,
		Counts: manifest.Counts{
			Structs:  len(g.StructMembers),
			Commands: len(g.CmdParams),
			Methods:  len(g.MethodParams),
		},
	}, nil
}
