// Package cli implements the moneyviewer command-line client. It drives the
// same ledger engine as the API server: a record store over either the local
// slot store or the remote API, with a session gate in front when remote.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yashuu213/MoneyViewer/internal/config"
	"github.com/Yashuu213/MoneyViewer/internal/ledger"
	"github.com/Yashuu213/MoneyViewer/internal/ledger/local"
	"github.com/Yashuu213/MoneyViewer/internal/ledger/remote"
	"github.com/Yashuu213/MoneyViewer/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "moneyviewer",
	Short: "Track transactions, debts, and who owes whom",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, sessionCmd)
	rootCmd.AddCommand(txCmd, debtCmd)
	rootCmd.AddCommand(summaryCmd, analysisCmd, lendingCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles the engine pieces a command needs. In local mode there is no
// gate or client; records live in the on-device slot store.
type app struct {
	cfg    *config.Config
	store  *ledger.Store
	gate   *session.Gate
	client *remote.Client
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	a := &app{cfg: cfg}

	switch cfg.StoreMode {
	case config.StoreModeRemote:
		a.client = remote.New(cfg.APIBaseURL, nil)
		if token, err := loadToken(cfg.TokenPath); err == nil && token != "" {
			a.client.SetToken(token)
		}
		a.store = ledger.NewStore(a.client)
		a.gate = session.NewGate(a.client, a.store)

	case config.StoreModeLocal:
		adapter, err := local.New(cfg.LocalStorePath)
		if err != nil {
			return nil, fmt.Errorf("opening local store: %w", err)
		}
		a.store = ledger.NewStore(adapter)
		if err := a.store.Reload(ctx); err != nil {
			return nil, fmt.Errorf("loading local records: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown STORE_MODE %q (use local or remote)", cfg.StoreMode)
	}

	return a, nil
}

// openStore resolves the session (remote mode) and returns an app whose
// store is ready for reads and writes.
func openStore(ctx context.Context) (*app, error) {
	a, err := newApp(ctx)
	if err != nil {
		return nil, err
	}
	if a.gate != nil {
		if err := a.gate.CheckSession(ctx); err != nil {
			return nil, fmt.Errorf("checking session: %w", err)
		}
		if _, ok := a.gate.Identity(); !ok {
			return nil, fmt.Errorf("not logged in (run: moneyviewer login <username>)")
		}
	}
	return a, nil
}

// requireRemote returns an app in remote mode, or an error explaining that
// the command only makes sense against the API.
func requireRemote(ctx context.Context) (*app, error) {
	a, err := newApp(ctx)
	if err != nil {
		return nil, err
	}
	if a.client == nil {
		return nil, fmt.Errorf("this command requires STORE_MODE=remote")
	}
	return a, nil
}

func loadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(path, token string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func clearToken(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
