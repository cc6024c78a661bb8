package treesift

import (
	"fmt"

	"github.com/arthur-debert/treesift/pkg/commands/genconfig"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.Options{
				Write: write,
				Force: force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.Content)
				return nil
			}
			if result.Written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, use --force to overwrite\n", result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
