package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/app"
	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/record"
)

func addTask(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	to := &options.TaskOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Add or update a scheduled task.",
		Aliases: []string{"tasks", "t"},
		Example: `
semana add task pay rent --on=2026-03-01 --at=10:00
semana add task leg day --category=gym --priority=high --minutes=90
semana add task new title --id=171dff69 --on=2026-03-02
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("requires a task name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			in := app.TaskInput{
				Name:             joinedArgs(args),
				Date:             date,
				Time:             to.Time,
				Category:         to.Category,
				Priority:         record.Priority(to.Priority),
				Description:      to.Details,
				EstimatedMinutes: to.Minutes,
				Reminder:         to.Reminder,
			}
			var t record.Task
			if io.ID != "" {
				t, err = s.UpdateTask(io.ID, in)
			} else {
				t, err = s.AddTask(in)
			}
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Tasks(t)
			return nil
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddTaskArgs(cmd, to)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
