package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/calendar"
	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/printers"
)

func addCalendar(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "calendar [year month]",
		Short:   "Show the month grid with task markers.",
		Aliases: []string{"cal", "month"},
		Example: `
semana calendar
semana calendar 2026 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return errors.New("requires no arguments or a year and month")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			now := s.Now()
			year, month := now.Year(), int(now.Month())
			if len(args) == 2 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return oo.HandleError(err)
				}
				if month, err = strconv.Atoi(args[1]); err != nil {
					return oo.HandleError(err)
				}
			}

			grid := calendar.BuildMonthGrid(year, month, s.Snapshot().Tasks, dates.FormatDay(now))
			first := dates.MonthStart(year, month)
			title := fmt.Sprintf("%s %d", first.Month(), first.Year())

			pp := printers.PrettyPrint{}
			pp.Month(title, calendar.Weeks(grid))
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
