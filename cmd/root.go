package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/spf13/cobra"
)

// LevelTrace sits below slog.LevelDebug for per-declaration tracing.
const LevelTrace = slog.Level(-8)

var (
	configFiles []string
	level       string

	// version is set at build time:
	//
	//	go build -ldflags "-X github.com/cmmoran/dx12gen/cmd.version=v1.2.0"
	version string
)

// Version reports the build version, "dev" for unstamped builds.
func Version() string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	return "dev"
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "dx12gen",
	Short:         "Generate D3D12 value descriptors from a header dictionary",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version()
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// parseLevel accepts slog level names plus "trace".
func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace, nil
	}
	var ll slog.Level
	if err := ll.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return ll, nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/dx12gen")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("DX12GEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Config is read before the logger exists; outcomes are logged below.
	readErr := viper.ReadInConfig()
	var merged, mergeErrs []string
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			configBytes, err := os.ReadFile(file)
			if err == nil {
				err = viper.MergeConfig(bytes.NewReader(configBytes))
			}
			if err != nil {
				mergeErrs = append(mergeErrs, file+": "+err.Error())
			} else {
				merged = append(merged, file)
			}
		}
	}

	// --level wins when given explicitly; otherwise common.log.level, then the flag default.
	lvl := level
	if f := rootCmd.PersistentFlags().Lookup("level"); f != nil && !f.Changed {
		if cfg := viper.GetString("common.log.level"); cfg != "" {
			lvl = cfg
		}
	}
	ll, err := parseLevel(lvl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     ll,
	}))
	slog.SetDefault(l)
	l.Debug("starting dx12gen", "version", Version())

	if readErr == nil {
		l.With("config", viper.ConfigFileUsed()).Info("using config file(s)")
	} else {
		l.With("error", readErr, "config", viper.ConfigFileUsed()).Debug("unable to use config file(s)")
	}
	for _, file := range merged {
		l.With("file", file).Info("merged config file")
	}
	for _, e := range mergeErrs {
		l.With("error", e).Warn("failed to merge config file")
	}
}
