package treesift

import (
	"fmt"

	"github.com/arthur-debert/treesift/pkg/config"
	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/filesystem"
	"github.com/arthur-debert/treesift/pkg/ignore"
	"github.com/arthur-debert/treesift/pkg/style"
	"github.com/arthur-debert/treesift/pkg/walker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var markerName string

	cmd := &cobra.Command{
		Use:     "check [path]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("marker-file") {
				markerName = cfg.Walk.Marker
			}

			log.Info().
				Str("root", root).
				Str("marker", markerName).
				Msg("Checking marker files")

			report, err := ignore.CheckTree(filesystem.NewOS(), root, markerName)
			if err != nil {
				return fmt.Errorf(MsgErrCheckTree, root, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderCheckReport(report))

			if !report.Clean() {
				// The report above already describes every problem; this
				// error only carries the exit status.
				return errors.Newf(errors.ErrCheckFailed,
					"%d problems found", len(report.Findings))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&markerName, "marker-file", "m", walker.DefaultMarkerName, MsgFlagMarker)

	return cmd
}
