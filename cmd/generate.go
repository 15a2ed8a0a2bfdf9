package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/dx12gen/pkg/action/generate"
	"github.com/cmmoran/dx12gen/pkg/generator"
)

// generateConfig is the shape of the config file section read by generate.
type generateConfig struct {
	Generate generator.Options `mapstructure:"generate"`
}

// generateFlags maps viper keys to the flags that override them.
var generateFlags = map[string]string{
	"generate.header_dict":      "header-dict",
	"generate.out_dir":          "output-directory",
	"generate.out_file":         "output-file",
	"generate.format":           "format",
	"generate.package":          "package",
	"generate.check_blacklist":  "check-blacklist",
	"generate.struct_blacklist": "struct-blacklist",
}

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the dx12gen generate command
	var generateCmd = &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "generate value descriptors",
		Long:    "Normalize every required struct, function and method of a header dictionary and write their value descriptors",
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindGenerateFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadGenerateOptions()
			if err != nil {
				return err
			}
			res, err := generate.Generate(opts)
			if err != nil {
				return err
			}
			slog.Info("generated value descriptors", "file", res.File, "summary", res.Summary())
			return nil
		},
	}
	addGenerateFlags(generateCmd)

	return generateCmd
}

func addGenerateFlags(c *cobra.Command) {
	d := generator.NewOptions()
	c.Flags().StringP("header-dict", "i", d.HeaderDict, "header dictionary to read (yaml or json)")
	c.Flags().StringP("output-directory", "o", d.OutDir, "directory to write generated descriptors")
	c.Flags().StringP("output-file", "f", "", "output file name (default dx12_values_gen.<format>)")
	c.Flags().String("format", d.Format, "output format: go, yaml or json")
	c.Flags().StringP("package", "p", d.Package, "package name of generated go code")
	c.Flags().BoolP("check-blacklist", "b", false, "skip structs named in the struct blacklist")
	c.Flags().StringSlice("struct-blacklist", []string{}, "struct names to skip; implies --check-blacklist")
}

// bindGenerateFlags binds c's flags at run time so that generate and
// snapshot create can share the same viper keys.
func bindGenerateFlags(c *cobra.Command) error {
	for key, name := range generateFlags {
		if err := viper.BindPFlag(key, c.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func loadGenerateOptions() (*generator.Options, error) {
	var cfg generateConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode generate config: %w", err)
	}
	opts := &cfg.Generate
	if len(opts.StructBlacklist) > 0 {
		opts.CheckBlacklist = true
	}
	opts.Normalize()
	return opts, nil
}
