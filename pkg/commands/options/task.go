package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Time     string
	Category string
	Priority string
	Details  string
	Minutes  int
	Reminder bool
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Time, "at", "",
		`Time of day, example: --at="07:30". Defaults to 09:00.`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category label, example: work, gym, study.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"One of high, medium, low. Defaults to medium.")
	cmd.Flags().StringVarP(&o.Details, "details", "d", "",
		"Free-form description.")
	cmd.Flags().IntVarP(&o.Minutes, "minutes", "m", 0,
		"Estimated minutes of effort.")
	cmd.Flags().BoolVar(&o.Reminder, "reminder", false,
		"Mark the task for a reminder.")
}
