package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajitssourat/aji/internal/bilan"
	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
	"github.com/ajitssourat/aji/internal/tui"
)

var bilanCmd = &cobra.Command{
	Use:     "bilan",
	Aliases: []string{"assessment"},
	Short:   "List the motor assessment tests",
	Long: `List the motor assessment tests with completion and scores. Opens the
interactive list by default, use --no-ui for text output.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.Run(newEnv(), tui.PathBilan); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		overview, err := bilan.LoadOverview(store, store.CurrentUser())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		t := provider.T

		fmt.Printf("%s: %d/%d (%d%%)   %s: %d/10\n\n",
			t("testsCompleted"), overview.CompletedCount(), len(overview.Tests()), overview.Progress(),
			t("averageScore"), overview.AverageScore())
		fmt.Printf("%-4s %-32s %-6s %-10s %s\n", "ID", "TEST", "MIN", "STATUS", "SCORE")
		fmt.Println(strings.Repeat("-", 64))
		for _, test := range overview.Tests() {
			status := t("pending")
			if overview.IsCompleted(test.ID) {
				status = t("completed")
			}
			score := "-"
			if v, ok := overview.Score(test.ID); ok {
				score = fmt.Sprintf("%d/%d", v, test.MaxScore)
			}
			fmt.Printf("%-4d %-32s %-6d %-10s %s\n", test.ID, t(test.Name), test.Minutes, status, score)
		}
	}),
}

var bilanRunCmd = &cobra.Command{
	Use:   "run [test-id]",
	Short: "Take a test and save its evaluation",
	Long: `Take one motor test: the timer runs for the test duration, then the
evaluation is saved with the given score and observation.

Examples:
  aji bilan run 1 --no-ui --score 7 --note "légère douleur"`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid test ID '%s'\n", args[0])
			return
		}
		test, err := catalog.FindTest(id)
		if err != nil {
			fmt.Printf("Error: no test with ID %d\n", id)
			return
		}
		email, ok := requireUser()
		if !ok {
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunTest(newEnv(), test); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		score, _ := cmd.Flags().GetInt("score")
		note, _ := cmd.Flags().GetString("note")
		interval, _ := cmd.Flags().GetDuration("interval")

		detail := bilan.NewDetail(test, bilan.StoreReporter{Store: store, Email: email})
		fmt.Printf("⏱️  %s - %s\n", provider.T(test.Name), engine.Clock(detail.Remaining()))
		fmt.Println("Press Ctrl+C to finish early.")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		err = engine.RunEvery(ctx, detail.Engine(), interval)
		stop()
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Printf("Error: %v\n", err)
			return
		}
		detail.Finish()

		detail.SetScore(score)
		detail.SetObservation(note)
		out, err := detail.SaveAndExit()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ %s: %d/%d\n", provider.T("scoreObtained"), out.Score, out.MaxScore)
	}),
}

func init() {
	bilanCmd.Flags().Bool("no-ui", false, "plain text output")

	bilanRunCmd.Flags().Bool("no-ui", false, "run the timer in the terminal without the interactive UI")
	bilanRunCmd.Flags().Int("score", bilan.DefaultScore, "evaluation score (0-10)")
	bilanRunCmd.Flags().String("note", "", "observation")
	bilanRunCmd.Flags().Duration("interval", time.Second, "length of one timer second")
	_ = bilanRunCmd.Flags().MarkHidden("interval")

	bilanCmd.AddCommand(bilanRunCmd)
}
