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

func addRoutine(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the weekly gym plan.",
		Example: `
semana routine set monday --focus=chest -e "Bench Press 4x8@60" -e "Dips 3x10"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRoutineSet(cmd, "set <day>", nil)

	topLevel.AddCommand(cmd)
}

func addRoutineSet(topLevel *cobra.Command, use string, aliases []string) {
	var focus string
	var specs []string

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   "Install or replace the routine for a weekday.",
		Example: `
semana routine set monday --focus=chest -e "Bench Press 4x8@60" -e "Dips 3x10"
semana routine set thursday --focus=legs -e "Squat 5x5@100"
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
			var exercises []record.Exercise
			for _, spec := range specs {
				ex, err := parseExerciseSpec(spec)
				if err != nil {
					return oo.HandleError(err)
				}
				exercises = append(exercises, ex)
			}
			if _, err := s.SetRoutine(args[0], focus, exercises); err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Routines(s.Routines())
			return nil
		},
	}

	cmd.Flags().StringVarP(&focus, "focus", "f", "",
		"Muscle-group focus, example: chest, legs, full.")
	cmd.Flags().StringArrayVarP(&specs, "exercise", "e", nil,
		`Exercise as "<name> <sets>x<reps>[@<weight>]". Repeatable.`)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// parseExerciseSpec parses "<name> <sets>x<reps>[@<weight>]". The part before
// the optional @weight reuses the legacy line grammar.
func parseExerciseSpec(spec string) (record.Exercise, error) {
	spec = strings.TrimSpace(spec)
	weight := 0.0
	if at := strings.LastIndex(spec, "@"); at >= 0 {
		w, err := strconv.ParseFloat(strings.TrimSpace(spec[at+1:]), 64)
		if err != nil {
			return record.Exercise{}, errors.New("bad weight in exercise spec: " + spec)
		}
		weight = w
		spec = strings.TrimSpace(spec[:at])
	}
	parsed := record.ParseLegacyExercises(spec)
	if len(parsed) != 1 {
		return record.Exercise{}, errors.New("bad exercise spec: " + spec)
	}
	ex := parsed[0]
	ex.Weight = weight
	return ex, nil
}
