package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove",
		Short:   "Remove an entry by id, or a routine by weekday.",
		Aliases: []string{"rm", "delete"},
		Example: `
semana remove task --id=171dff69-f8b9-9dca
semana remove routine friday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveByID(cmd, "task", []string{"tasks", "t"}, func(id string) error {
		s, err := loadService()
		if err != nil {
			return err
		}
		return s.RemoveTask(id)
	})
	addRemoveByID(cmd, "goal", []string{"goals", "g"}, func(id string) error {
		s, err := loadService()
		if err != nil {
			return err
		}
		return s.RemoveGoal(id)
	})
	addRemoveByID(cmd, "note", []string{"notes", "n"}, func(id string) error {
		s, err := loadService()
		if err != nil {
			return err
		}
		return s.RemoveNote(id)
	})
	addRemoveByID(cmd, "metric", []string{"metrics"}, func(id string) error {
		s, err := loadService()
		if err != nil {
			return err
		}
		return s.RemoveMetric(id)
	})
	addRemoveByID(cmd, "workout", []string{"workouts", "w"}, func(id string) error {
		s, err := loadService()
		if err != nil {
			return err
		}
		return s.RemoveWorkout(id)
	})
	addRemoveRoutine(cmd)

	topLevel.AddCommand(cmd)
}

func addRemoveByID(topLevel *cobra.Command, noun string, aliases []string, remove func(id string) error) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     noun,
		Short:   "Remove a " + noun + " by id.",
		Aliases: aliases,
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
			return oo.HandleError(remove(io.ID))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRemoveRoutine(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "routine <day>",
		Short:   "Remove the routine for a weekday.",
		Aliases: []string{"routines"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a weekday, example: friday")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.RemoveRoutine(args[0]))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
