package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
)

func addClear(topLevel *cobra.Command) {
	confirmed := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record for the current user. Irreversible.",
		Example: `
semana clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to wipe records without --yes")
			}
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			if err := s.ClearAll(); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("cleared all records for %s\n", s.User())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false,
		"Confirm the wipe.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
