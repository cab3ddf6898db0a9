package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/printers"
	"tableflip.dev/semana/pkg/record"
)

func addLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a performed workout against the weekly plan.",
		Example: `
semana log workout monday -d "Bench Press: 8x60, 8x60, 6x65" --notes="felt strong"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLogWorkout(cmd)

	topLevel.AddCommand(cmd)
}

func addLogWorkout(topLevel *cobra.Command) {
	var did []string
	var notes string

	cmd := &cobra.Command{
		Use:     "workout <day>",
		Short:   "Log today's session from a weekday's routine.",
		Aliases: []string{"workouts", "w"},
		Example: `
semana log workout monday -d "Bench Press: 8x60, 8x60, 6x65" -d "Dips: 10x0"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a weekday, example: monday")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			performed := make(map[string][]record.WorkoutSet)
			for _, entry := range did {
				name, sets, err := parsePerformed(entry)
				if err != nil {
					return oo.HandleError(err)
				}
				performed[name] = sets
			}
			w, err := s.LogWorkout(args[0], performed, notes)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Workouts(w)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&did, "did", "d", nil,
		`Performed sets as "<exercise>: <reps>x<weight>, <reps>x<weight>". Repeatable.`)
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// parsePerformed parses "<exercise>: <reps>x<weight>, ...".
func parsePerformed(entry string) (string, []record.WorkoutSet, error) {
	name, rest, found := strings.Cut(entry, ":")
	if !found {
		return "", nil, errors.New("expected \"<exercise>: <reps>x<weight>, ...\", got: " + entry)
	}
	name = strings.TrimSpace(name)
	var sets []record.WorkoutSet
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		repsStr, weightStr, found := strings.Cut(part, "x")
		if !found {
			return "", nil, errors.New("bad set, expected <reps>x<weight>: " + part)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
		if err != nil {
			return "", nil, errors.New("bad reps in set: " + part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil {
			return "", nil, errors.New("bad weight in set: " + part)
		}
		sets = append(sets, record.WorkoutSet{Reps: reps, Weight: weight})
	}
	return name, sets, nil
}
