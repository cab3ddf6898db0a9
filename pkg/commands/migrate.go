package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
)

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade legacy weekday-keyed tasks to the current schema.",
		Long: `Runs the legacy task migration explicitly. The same migration happens
automatically on startup; this just reports what it found. The legacy key is
left in place but is never read again once migrated tasks exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("%s: %d tasks on the current schema\n", s.User(), len(s.Snapshot().Tasks))
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
