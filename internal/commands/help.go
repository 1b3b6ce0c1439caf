package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for aji",
	Long:  `Display detailed help for all aji commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 █████╗      ██╗██╗
██╔══██╗     ██║██║
███████║     ██║██║
██╔══██║██   ██║██║
██║  ██║╚█████╔╝██║
╚═╝  ╚═╝ ╚════╝ ╚═╝

aji - Aji Tssourat, rehabilitation coach for the terminal

COMMANDS:

  aji                     Open the interactive app (dashboard)

  register <email>        Create a local account and sign in
    -p, --password        Password (at least 6 characters)
  login [email]           Sign in (login screen without arguments)
    -p, --password        Password
  logout                  Sign out

  onboard                 Record your weekly MET score (IPAQ)
    --met                 MET-min per week; < 600 low, < 3000 moderate, else high
  status                  Dashboard summary: MET score, level, progress

  bilan                   Motor assessment: the 8 tests
    --no-ui               Plain text output
  bilan run <id>          Take a test, then save its evaluation
    --no-ui               Countdown in the terminal (Ctrl+C finishes early)
    --score               Evaluation score 0-10 (default 5)
    --note                Observation

  program                 Exercise sessions
    --no-ui               Plain text output
  program start <id>      Play a session
    --no-ui               Countdown in the terminal (Ctrl+C stops)

  results                 Saved assessment results, newest first
    --no-ui               Plain text output

  faq [query]             Search the frequently asked questions
    -c, --category        Only this category
    --list-categories     List the categories

  lang [fr|ar]            Show or switch the language (ar is right-to-left)
  version                 Print the version

GLOBAL FLAGS:
  --db                    Database path (default $AJI_DB or ~/.aji/aji.db)

ENVIRONMENT:
  AJI_DB                  Database path
  AJI_DEBUG               Write a debug log to ~/.aji/debug.log

INTERACTIVE KEYS:
  space                   Start / pause the timer
  r                       Reset the current step
  f                       Finish a test early
  n                       Next exercise
  ←/→                     Adjust the evaluation score
  ?                       Toggle the FAQ
  esc                     Back
  ctrl+c                  Quit
`)
}
