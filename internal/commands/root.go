package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/i18n"
	"github.com/ajitssourat/aji/internal/tui"
)

// EnvDebug turns on the debug log
const EnvDebug = "AJI_DEBUG"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	dbPath   string
	conn     *gorm.DB
	store    *db.Store
	provider *i18n.Provider
	logFile  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "aji",
	Short: "Aji Tssourat, a rehabilitation coach for the terminal",
	Long: `aji guides a motor assessment, plays exercise sessions and tracks your
progress, all from the terminal. Run it without arguments for the interactive app.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeAll()
	},
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := tui.Run(newEnv(), tui.PathHome); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// setupLogging sends the log package to the debug file when AJI_DEBUG is
// set. Otherwise logs are dropped so they never draw over the UI.
func setupLogging() {
	if os.Getenv(EnvDebug) == "" {
		log.SetOutput(io.Discard)
		return
	}
	path, err := db.DefaultPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	path = filepath.Join(filepath.Dir(path), "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := tea.LogToFile(path, "aji")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		log.SetOutput(io.Discard)
		return
	}
	logFile = f
}

// initDB opens the database and the language provider
func initDB() error {
	if store != nil {
		return nil
	}
	path, err := db.ResolvePath(dbPath)
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}
	c, err := db.Open(path)
	if err != nil {
		return err
	}
	conn = c
	store = db.NewStore(c)
	provider = i18n.NewProvider(store)
	log.Printf("db: opened %s", path)
	return nil
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fn(cmd, args)
	}
}

func newEnv() *tui.Env {
	return &tui.Env{Store: store, I18n: provider}
}

func closeAll() {
	if conn != nil {
		_ = db.Close(conn)
		conn, store, provider = nil, nil, nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// requireUser returns the signed-in email or prints a hint
func requireUser() (string, bool) {
	email := store.CurrentUser()
	if email == "" {
		fmt.Println("Not signed in. Use 'aji login <email>' or 'aji register <email>' first.")
		return "", false
	}
	return email, true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aji %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database (default $AJI_DB or ~/.aji/aji.db)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(bilanCmd)
	rootCmd.AddCommand(programCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(faqCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
