package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cmmoran/dx12gen/pkg/action/generate"
	"github.com/cmmoran/dx12gen/pkg/action/snapshot"
)

const defaultManifest = "dx12gen-manifest.yaml"

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var manifestPath string

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "manage generated descriptor snapshots",
	}
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", defaultManifest, "snapshot manifest file")

	var name, version string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "generate descriptors and record them as a snapshot",
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindGenerateFlags(c)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if version == "" {
				return errors.New("--snapshot-version is required")
			}
			opts, err := loadGenerateOptions()
			if err != nil {
				return err
			}
			file, err := snapshot.Generate(opts, manifestPath, name, version)
			if err != nil {
				return err
			}
			slog.Info("recorded snapshot", "name", name, "version", version, "file", file, "manifest", manifestPath)
			return nil
		},
	}
	addGenerateFlags(createCmd)
	createCmd.Flags().StringVar(&name, "name", "dx12", "snapshot name")
	createCmd.Flags().StringVar(&version, "snapshot-version", "", "snapshot version")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			for _, s := range m.Snapshots {
				marker := " "
				switch s.Version {
				case m.CurrentVersion:
					marker = "*"
				case m.PreviousVersion:
					marker = "-"
				}
				_, _ = fmt.Fprintf(out, "%s %s@%s\t%s\t%s\n",
					marker, s.Name, s.Version, s.File, generate.Result{Counts: s.Counts}.Summary())
			}
			return nil
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			if diff == "" {
				slog.Info("snapshots are identical")
				return nil
			}
			_, err = fmt.Fprint(c.OutOrStdout(), diff)
			return err
		},
	}

	snapshotCmd.AddCommand(createCmd, listCmd, diffCmd)

	return snapshotCmd
}
