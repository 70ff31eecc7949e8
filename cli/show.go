package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amphipod/diagram"
)

// newShowCmd creates the show command, which prints the burrow a solve run
// would start from.
func (a *App) newShowCmd() *cobra.Command {
	var (
		file string
		part int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the parsed (and for part 2, unfolded) burrow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := readRooms(file, cmd.InOrStdin(), part)
			if err != nil {
				return err
			}
			text, err := diagram.Format(rooms)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.stdout, text)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `Input diagram ("-" for stdin)`)
	cmd.Flags().IntVarP(&part, "part", "p", 1, "Puzzle part: 1 or 2")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
