package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new account on the MoneyViewer API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireRemote(cmd.Context())
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if err := a.gate.Register(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Printf("Account %q created. Log in with: moneyviewer login %s\n", args[0], args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and save the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireRemote(cmd.Context())
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if err := a.gate.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}
		if err := saveToken(a.cfg.TokenPath, a.client.Token()); err != nil {
			return fmt.Errorf("saving session token: %w", err)
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and discard the saved token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireRemote(cmd.Context())
		if err != nil {
			return err
		}

		// The token is discarded even if the server call fails.
		logoutErr := a.gate.Logout(cmd.Context())
		if err := clearToken(a.cfg.TokenPath); err != nil {
			return fmt.Errorf("removing session token: %w", err)
		}
		if logoutErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: server logout failed: %v\n", logoutErr)
		}
		fmt.Println("Logged out")
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show whether the saved token still names a valid session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireRemote(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.gate.CheckSession(cmd.Context()); err != nil {
			return err
		}
		if username, ok := a.gate.Identity(); ok {
			fmt.Printf("Logged in as %s\n", username)
		} else {
			fmt.Println("Not logged in")
		}
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(raw), nil
}
