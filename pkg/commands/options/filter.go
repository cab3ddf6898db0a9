package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Category string
	Priority string
	State    string
	Date     string
	Search   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only tasks in this category.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Only tasks with this priority.")
	cmd.Flags().StringVar(&o.State, "state", "",
		"One of pending or completed.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Only tasks on this day, example: --date=2026-02-28.")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Match name or description, case-insensitive.")
}
