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

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/engine"
	"github.com/ajitssourat/aji/internal/program"
	"github.com/ajitssourat/aji/internal/tui"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "List the exercise sessions",
	Long: `List the exercise sessions of your program. Opens the interactive list by
default, use --no-ui for text output.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.Run(newEnv(), tui.PathProgram); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		t := provider.T
		record := program.LoadRecord(store, store.CurrentUser())
		sessions := catalog.Sessions()

		fmt.Printf("%s: %d/%d\n\n", t("sessionsCompleted"), record.Count(), len(sessions))
		fmt.Printf("%-4s %-32s %-6s %-10s %s\n", "ID", "SESSION", "MIN", "LEVEL", "DONE")
		fmt.Println(strings.Repeat("-", 64))
		for _, s := range sessions {
			done := ""
			if record.Contains(s.ID) {
				done = "✓"
			}
			fmt.Printf("%-4d %-32s %-6d %-10s %s\n", s.ID, t(s.Name), s.Minutes, t(s.Difficulty), done)
			for i, ex := range s.Exercises {
				fmt.Printf("       %d. %s (%d %s)\n", i+1, t(ex.Name), ex.Minutes, t("minutes"))
			}
		}
	}),
}

var programStartCmd = &cobra.Command{
	Use:   "start [session-id]",
	Short: "Play a session",
	Long: `Play an exercise session. Opens the interactive player by default, use
--no-ui to run the countdown in the terminal.

Examples:
  aji program start 1
  aji program start 2 --no-ui`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		session, err := catalog.FindSession(id)
		if err != nil {
			fmt.Printf("Error: no session with ID %d\n", id)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunSession(newEnv(), session); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		t := provider.T
		interval, _ := cmd.Flags().GetDuration("interval")
		record := program.LoadRecord(store, store.CurrentUser())
		player := program.NewPlayer(session, record, func(int) {
			fmt.Printf("🎉 %s\n", t("sessionComplete"))
		})

		fmt.Printf("▶️  %s - %s %s\n", t(session.Name), t("sessionTime"), engine.Clock(player.SessionRemaining()))
		if ex, ok := player.Exercise(); ok {
			fmt.Printf("   1. %s (%d %s)\n", t(ex.Name), ex.Minutes, t("minutes"))
		}
		fmt.Println("Press Ctrl+C to stop.")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err = engine.RunEvery(ctx, player.Engine(), interval)
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\n⏸️  Stopped at %d. %s, %s %s left\n",
				player.Index()+1, t(exerciseName(player)), t("sessionTime"), engine.Clock(player.SessionRemaining()))
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := player.Err(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func exerciseName(p *program.Player) string {
	if ex, ok := p.Exercise(); ok {
		return ex.Name
	}
	return ""
}

func init() {
	programCmd.Flags().Bool("no-ui", false, "plain text output")

	programStartCmd.Flags().Bool("no-ui", false, "run the countdown in the terminal without the interactive UI")
	programStartCmd.Flags().Duration("interval", time.Second, "length of one timer second")
	_ = programStartCmd.Flags().MarkHidden("interval")

	programCmd.AddCommand(programStartCmd)
}
