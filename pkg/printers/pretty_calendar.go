package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/semana/pkg/calendar"
)

var weekHeader = []string{"mo", "tu", "we", "th", "fr", "sa", "su"}

// Month prints a month grid, one row per week. Days outside the month are
// dimmed; today is highlighted; a dot marks days with tasks and a check
// marks fully-completed days.
func (pp *PrettyPrint) Month(title string, weeks [][]calendar.Cell) {
	pp.Title(title)

	head := color.New(color.Faint)
	_, _ = head.Println("  " + strings.Join(weekHeader, "   "))

	in := color.New()
	out := color.New(color.Faint)
	today := color.New(color.Bold, color.FgHiCyan)
	done := color.New(color.FgHiGreen)

	for _, week := range weeks {
		for _, cell := range week {
			printer := in
			switch {
			case cell.IsToday:
				printer = today
			case !cell.InMonth:
				printer = out
			case cell.Completed:
				printer = done
			}
			mark := " "
			if cell.TaskCount > 0 {
				mark = "·"
				if cell.Completed {
					mark = "✔"
				}
			}
			_, _ = printer.Printf("%3d%s ", cell.Day, mark)
		}
		fmt.Println("")
	}
	fmt.Println("")
}
