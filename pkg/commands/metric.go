package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/stats"
)

func addMetric(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var notes, photo string

	cmd := &cobra.Command{
		Use:     "metric <weight>",
		Short:   "Record a body weight measurement.",
		Aliases: []string{"metrics", "weight"},
		Example: `
semana add metric 82.5
semana add metric 81.9 --on=2026-03-01 --notes="post cut"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one weight value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			if _, err := s.AddMetric(date, weight, photo, notes); err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Metrics(stats.MetricsDeltas(s.Metrics(), 7)...)
			return nil
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes on the measurement.")
	cmd.Flags().StringVar(&photo, "photo", "", "Path or URL of a progress photo.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
