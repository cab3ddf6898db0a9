package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
semana add task pay rent --on=2026-03-01
semana add goal "run a 10k" --due=2026-06-01
semana add note remember stretching
semana add metric 82.5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addGoal(cmd)
	addNote(cmd)
	addMetric(cmd)
	addRoutineSet(cmd, "routine <day>", []string{"routines"})

	topLevel.AddCommand(cmd)
}

func joinedArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
