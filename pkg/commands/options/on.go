package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/semana/pkg/dates"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28". Defaults to today.`)
}

// GetOn resolves the flag to a day id, defaulting to today.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return dates.Today(), nil
	}
	if _, err := dates.ParseDay(o.OnString); err != nil {
		return "", err
	}
	return o.OnString, nil
}
