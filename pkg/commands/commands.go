package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "semana",
		Short: "Weekly tasks, goals and gym tracking on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addRoutine(topLevel)
	addLog(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addMigrate(topLevel)
	addAccount(topLevel)
	addTimer(topLevel)
	addClear(topLevel)
	addVersion(topLevel)
}
