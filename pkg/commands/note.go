package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/printers"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Short:   "Add a quick note stamped with the current time.",
		Aliases: []string{"notes", "n"},
		Example: `
semana add note deload week starts monday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("requires the note text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			n, err := s.AddNote(joinedArgs(args))
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Notes(n)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
