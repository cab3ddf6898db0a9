package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/stats"
)

func addStats(topLevel *cobra.Command) {
	full := false

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Streak, weekly progress and habit distributions.",
		Aliases: []string{"report", "streak"},
		Example: `
semana stats
semana stats --full
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			now := s.Now()
			snap := s.Snapshot()

			pp := printers.PrettyPrint{}
			d := stats.ComputeDashboard(snap, now)
			gym := stats.ComputeWorkoutWeek(snap.Workouts, dates.WeekDates(now))
			pp.Title("this week")
			pp.Dashboard(d, gym)

			urgent := stats.UrgentGoals(snap.Goals, d.Today, 5)
			if len(urgent) > 0 {
				pp.TitleWithCount("due soon", len(urgent))
				for _, st := range urgent {
					pp.Goals(d.Today, st.Goal)
				}
			}

			if full {
				pp.Title("habits")
				pp.Distributions(stats.ComputeDistributions(snap.Tasks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false,
		"Include the weekday, time-band, category and priority histograms.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
