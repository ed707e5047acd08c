// Package cli implements the dosewise CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dosewise/dosewise/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dosewise",
	Short: "Daily medication and supplement schedule planner",
	Long:  "Plans the clock times for a day's medications and supplements from interaction rules. Deterministic, SQLite-backed history, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $DOSEWISE_DB or ~/.dosewise/dosewise.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("DOSEWISE_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dosewise", "dosewise.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
