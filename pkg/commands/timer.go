package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/timer"
)

func addTimer(topLevel *cobra.Command) {
	minutes := 25

	cmd := &cobra.Command{
		Use:     "timer",
		Short:   "Run a focus countdown in the terminal.",
		Aliases: []string{"pomodoro", "focus"},
		Example: `
semana timer
semana timer --minutes=50
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := timer.New(minutes * 60)

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			done := make(chan struct{})
			line := color.New(color.Bold, color.FgHiCyan)

			_, _ = line.Printf("\r%s", c.Display())
			c.Start(func(remaining int) {
				_, _ = line.Printf("\r%s", c.Display())
			}, func() {
				close(done)
			})

			select {
			case <-done:
				fmt.Println("\ntime's up")
			case <-interrupt:
				c.Pause()
				fmt.Printf("\nstopped with %s left\n", c.Display())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25,
		"Length of the countdown in minutes.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
