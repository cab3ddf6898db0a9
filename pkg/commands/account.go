package commands

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tableflip.dev/semana/pkg/account"
	"tableflip.dev/semana/pkg/commands/options"
	"tableflip.dev/semana/pkg/store"
)

func addAccount(topLevel *cobra.Command) {
	addRegister(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
}

func addRegister(topLevel *cobra.Command) {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account. Each account keeps its own records.",
		Example: `
semana register ana --email=ana@example.com
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a username")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			if password == "" {
				if password, err = promptPassword("password: "); err != nil {
					return oo.HandleError(err)
				}
			}
			m := account.NewManager(p)
			a, err := m.Register(args[0], email, password)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("registered %s\n", a.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email for the account.")
	cmd.Flags().StringVar(&password, "password", "",
		"Password. Prompted when omitted.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and switch to that account's records.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a username")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			if password == "" {
				if password, err = promptPassword("password: "); err != nil {
					return oo.HandleError(err)
				}
			}
			m := account.NewManager(p)
			s, err := m.Login(args[0], password)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("signed in as %s\n", s.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "",
		"Password. Prompted when omitted.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and fall back to the shared local records.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(account.NewManager(p).Logout())
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account, if any.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			if s, ok := p.Session(); ok {
				fmt.Println(s.Username)
				return nil
			}
			fmt.Println("not signed in (using local records)")
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println("")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
