package treesift

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arthur-debert/treesift/pkg/config"
	"github.com/arthur-debert/treesift/pkg/output"
	"github.com/arthur-debert/treesift/pkg/style"
	"github.com/arthur-debert/treesift/pkg/walker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		markerName     string
		directories    bool
		includeMarkers bool
		formatFlag     string
		print0         bool
	)

	cmd := &cobra.Command{
		Use:     "list [path]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
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
			// Flags win over config; config wins over the built-in default.
			if !cmd.Flags().Changed("marker-file") {
				markerName = cfg.Walk.Marker
			}
			if !cmd.Flags().Changed("format") {
				formatFlag = cfg.Output.Format
			}

			format, err := output.Resolve(formatFlag, os.Stdout)
			if err != nil {
				return err
			}

			mode := walker.ModeFiles
			if directories {
				mode = walker.ModeDirectories
			}

			log.Info().
				Str("root", root).
				Str("marker", markerName).
				Str("mode", mode.String()).
				Str("format", format.String()).
				Msg("Listing tree")

			w := walker.New(walker.Options{
				MarkerName:     markerName,
				Mode:           mode,
				IncludeMarkers: includeMarkers,
			})

			if format == output.FormatJSON {
				return listJSON(cmd, w, root)
			}
			return listLines(cmd, w, root, mode, format, print0)
		},
	}

	cmd.Flags().StringVarP(&markerName, "marker-file", "m", walker.DefaultMarkerName, MsgFlagMarker)
	cmd.Flags().BoolVarP(&directories, "directories", "d", false, MsgFlagDirectories)
	cmd.Flags().BoolVar(&includeMarkers, "include-marker-files", false, MsgFlagIncludeMarkers)
	cmd.Flags().StringVar(&formatFlag, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&print0, "print0", false, MsgFlagPrint0)
	cmd.MarkFlagsMutuallyExclusive("directories", "include-marker-files")

	return cmd
}

// listLines streams paths as the walk produces them, so a consumer that
// stops reading (head, fzf) stops the walk instead of the whole scan.
func listLines(cmd *cobra.Command, w *walker.Walker, root string, mode walker.Mode, format output.Format, print0 bool) error {
	sep := byte('\n')
	if print0 {
		sep = 0
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	count := 0
	for path, err := range w.Walk(root) {
		if err != nil {
			_ = out.Flush()
			return fmt.Errorf(MsgErrListTree, root, err)
		}
		_, _ = out.WriteString(path)
		_ = out.WriteByte(sep)
		count++
	}
	if err := out.Flush(); err != nil {
		return err
	}

	// On terminals a short summary goes to stderr, leaving stdout pipeable.
	if format == output.FormatTerminal {
		var noun string
		switch {
		case mode == walker.ModeDirectories && count == 1:
			noun = "directory"
		case mode == walker.ModeDirectories:
			noun = "directories"
		case count == 1:
			noun = "file"
		default:
			noun = "files"
		}
		summary := style.MutedStyle.Render(fmt.Sprintf(MsgSummaryFormat, count, noun))
		fmt.Fprintln(os.Stderr, summary)
	}
	return nil
}

func listJSON(cmd *cobra.Command, w *walker.Walker, root string) error {
	paths, err := w.Collect(root)
	if err != nil {
		return fmt.Errorf(MsgErrListTree, root, err)
	}
	if paths == nil {
		paths = []string{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(paths)
}
