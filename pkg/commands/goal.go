package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/printers"
)

func addGoal(topLevel *cobra.Command) {
	var start, due string

	cmd := &cobra.Command{
		Use:     "goal",
		Short:   "Add a medium-term goal.",
		Aliases: []string{"goals", "g"},
		Example: `
semana add goal "run a 10k" --due=2026-06-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("requires the goal text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			g, err := s.AddGoal(joinedArgs(args), start, due)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Goals(dates.Today(), g)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "",
		`Start date, example: --start="2026-03-01".`)
	cmd.Flags().StringVar(&due, "due", "",
		`Due date, example: --due="2026-06-01".`)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
