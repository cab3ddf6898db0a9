package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/printers"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "complete",
		Short:   "Toggle completion of a task or goal.",
		Aliases: []string{"toggle", "done"},
		Example: `
semana complete task --id=171dff69-f8b9-9dca
semana complete goal --id=281eff70-a9c0-0edb
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCompleteTask(cmd)
	addCompleteGoal(cmd)

	topLevel.AddCommand(cmd)
}

func addCompleteTask(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Toggle a task's completed flag.",
		Aliases: []string{"tasks", "t"},
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" && len(args) == 0 {
				return errors.New("requires --id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				io.ID = args[0]
			}
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			t, err := s.ToggleTask(io.ID)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Tasks(t)
			return nil
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addCompleteGoal(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "goal",
		Short:   "Toggle a goal's completed flag.",
		Aliases: []string{"goals", "g"},
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" && len(args) == 0 {
				return errors.New("requires --id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				io.ID = args[0]
			}
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			g, err := s.ToggleGoal(io.ID)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Goals(dates.FormatDay(s.Now()), g)
			return nil
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
