package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/app"
	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/stats"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get tasks, goals, routines, workouts, notes or metrics.",
		Example: `
semana get today
semana get tasks --state=pending --category=gym
semana get goals
semana get exercises legs
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetToday(cmd)
	addGetTasks(cmd)
	addGetGoals(cmd)
	addGetRoutines(cmd)
	addGetWorkouts(cmd)
	addGetNotes(cmd)
	addGetMetrics(cmd)
	addGetExercises(cmd)

	topLevel.AddCommand(cmd)
}

func addGetToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Today's tasks plus the headline numbers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			now := s.Now()
			today := dates.FormatDay(now)

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			d := stats.ComputeDashboard(s.Snapshot(), now)
			gym := stats.ComputeWorkoutWeek(s.Snapshot().Workouts, dates.WeekDates(now))
			pp.Title(today)
			pp.Dashboard(d, gym)
			pp.TitleWithCount("tasks", len(s.TasksByDate(today)))
			pp.Tasks(s.TasksByDate(today)...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "List tasks, optionally filtered.",
		Aliases: []string{"task", "t"},
		Example: `
semana get tasks
semana get tasks --state=pending --priority=high
semana get tasks --search=rent
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			var tasks []record.Task
			if fo.Search != "" {
				tasks = s.SearchTasks(fo.Search)
			} else {
				tasks = s.FilterTasks(app.TaskFilter{
					Category: fo.Category,
					Priority: record.Priority(fo.Priority),
					State:    fo.State,
					Date:     fo.Date,
				})
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.TitleWithCount("tasks", len(tasks))
			pp.Tasks(tasks...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetGoals(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	urgent := false

	cmd := &cobra.Command{
		Use:     "goals",
		Short:   "List goals with their urgency.",
		Aliases: []string{"goal", "g"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			today := dates.FormatDay(s.Now())
			goals := s.Goals()
			if urgent {
				var filtered []record.Goal
				for _, st := range stats.UrgentGoals(goals, today, 0) {
					if st.Bucket != stats.BucketNormal {
						filtered = append(filtered, st.Goal)
					}
				}
				goals = filtered
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.TitleWithCount("goals", len(goals))
			pp.Goals(today, goals...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&urgent, "urgent", false,
		"Only goals overdue, due today or due within the urgency window.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetRoutines(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "gym",
		Short:   "Show the weekly gym plan.",
		Aliases: []string{"routines", "routine"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Title("weekly plan")
			pp.Routines(s.Routines())
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetWorkouts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "workouts",
		Short:   "Show the workout history, most recent first.",
		Aliases: []string{"workout", "w"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.TitleWithCount("workouts", len(s.Workouts()))
			pp.Workouts(s.Workouts()...)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetNotes(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "notes",
		Short:   "Show notes, newest first.",
		Aliases: []string{"note", "n"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.TitleWithCount("notes", len(s.Notes()))
			pp.Notes(s.Notes()...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetMetrics(topLevel *cobra.Command) {
	window := 7

	cmd := &cobra.Command{
		Use:     "metrics",
		Short:   "Show body measurements with deltas.",
		Aliases: []string{"metric", "weight"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.TitleWithCount("metrics", len(s.Metrics()))
			pp.Metrics(stats.MetricsDeltas(s.Metrics(), window)...)
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 7,
		"Days back for the windowed delta column.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGetExercises(topLevel *cobra.Command) {
	var search string

	cmd := &cobra.Command{
		Use:     "exercises [group]",
		Short:   "Browse the exercise catalog, optionally by muscle group.",
		Aliases: []string{"exercise", "catalog"},
		Example: `
semana get exercises
semana get exercises legs
semana get exercises --search=press
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []record.CatalogEntry
			switch {
			case search != "":
				entries = record.SearchCatalog(search)
			case len(args) > 0:
				entries = record.CatalogByGroup(strings.ToLower(args[0]))
			default:
				entries = record.Catalog()
			}
			pp := printers.PrettyPrint{}
			pp.TitleWithCount("exercises", len(entries))
			pp.Catalog(entries...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "",
		"Match name, group or tags, case-insensitive.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
