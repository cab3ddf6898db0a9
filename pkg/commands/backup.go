package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/commands/options"
)

func addExport(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write all records as a portable JSON backup.",
		Example: `
semana export
semana export backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			data, err := s.ExportJSON()
			if err != nil {
				return oo.HandleError(err)
			}
			if len(args) > 0 {
				out = args[0]
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "",
		"File to write instead of stdout.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all records with a backup document.",
		Long: `Replace every record with the contents of a previously exported backup.
This is a destructive overwrite, not a merge. A malformed document is
rejected whole; nothing is applied.`,
		Example: `
semana import backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			if err := s.ImportJSON(raw); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("imported %s\n", args[0])
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
