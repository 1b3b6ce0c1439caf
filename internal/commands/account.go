package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitssourat/aji/internal/db"
	"github.com/ajitssourat/aji/internal/home"
	"github.com/ajitssourat/aji/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in with a local account",
	Long: `Sign in with a local account. Opens the login screen by default.

Examples:
  aji login
  aji login amina@example.com --password secret1`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		password, _ := cmd.Flags().GetString("password")
		if len(args) == 0 || password == "" {
			if err := tui.Run(newEnv(), tui.PathLogin); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		user, err := store.Authenticate(args[0], password)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.SignIn(user.Email); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Signed in as %s\n", user.Email)
		if !store.OnboardingCompleted(user.Email) {
			fmt.Println("💡 Record your weekly activity with 'aji onboard --met <score>'.")
		}
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create a local account and sign in",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		password, _ := cmd.Flags().GetString("password")
		user, err := store.Register(args[0], password)
		if errors.Is(err, db.ErrEmailTaken) {
			fmt.Printf("Error: %s is already registered, use 'aji login'\n", strings.TrimSpace(args[0]))
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.SignIn(user.Email); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Account created - signed in as %s\n", user.Email)
		fmt.Println("💡 Record your weekly activity with 'aji onboard --met <score>'.")
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := home.Logout(store); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("👋 Signed out")
	}),
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Record your weekly MET score (IPAQ)",
	Long: `Record your weekly MET score from the IPAQ questionnaire. Without --met
the onboarding screen opens.

Examples:
  aji onboard --met 1800`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		email, ok := requireUser()
		if !ok {
			return
		}
		if !cmd.Flags().Changed("met") {
			if err := tui.Run(newEnv(), tui.PathOnboarding); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		met, _ := cmd.Flags().GetInt("met")
		level, err := home.Onboard(store, email, met)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ %d %s - %s: %s\n", met, provider.T("metUnit"), provider.T("onboardingTitle"), provider.T(level.Key()))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard summary",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		dash, redirect, err := home.Load(store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		switch redirect {
		case home.PathLogin:
			fmt.Println("Not signed in. Use 'aji login <email>' or 'aji register <email>' first.")
			return
		case home.PathOnboarding:
			fmt.Println("Onboarding not completed. Use 'aji onboard --met <score>'.")
			return
		}

		t := provider.T
		level := t("notAvailable")
		if dash.Level != "" {
			level = t(home.Level(dash.Level).Key())
		}
		fmt.Printf("%s %s\n\n", t("signedInAs"), dash.Email)
		fmt.Printf("%-22s %d %s (%s)\n", "MET", dash.MetScore, t("metUnit"), level)
		fmt.Printf("%-22s %s %3.0f%%\n", "", ring(dash.Ring, 20), dash.Ring*100)
		fmt.Printf("%-22s %d/10\n", t("averageMotricity"), dash.AverageScore)
		fmt.Printf("%-22s %d\n", t("sessionsCompleted"), dash.CompletedSessions)
	}),
}

// ring draws a text progress bar of width cells
func ring(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "account password")
	registerCmd.Flags().StringP("password", "p", "", "account password (at least 6 characters)")
	_ = registerCmd.MarkFlagRequired("password")
	onboardCmd.Flags().Int("met", 0, "weekly MET-min score")
}
