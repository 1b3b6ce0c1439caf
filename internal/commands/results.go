package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitssourat/aji/internal/catalog"
	"github.com/ajitssourat/aji/internal/tui"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show saved assessment results",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		email, ok := requireUser()
		if !ok {
			return
		}
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.Run(newEnv(), tui.PathResults); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		results, err := store.Results(email)
		if err != nil {
			fmt.Printf("Error fetching results: %v\n", err)
			return
		}
		if len(results) == 0 {
			fmt.Println(provider.T("noResults"))
			return
		}

		fmt.Printf("%-17s %-32s %-6s %s\n", "DATE", "TEST", "SCORE", "OBSERVATION")
		fmt.Println(strings.Repeat("-", 80))
		for _, r := range results {
			name := fmt.Sprintf("#%d", r.TestID)
			if test, err := catalog.FindTest(r.TestID); err == nil {
				name = provider.T(test.Name)
			}
			fmt.Printf("%-17s %-32s %-6s %s\n",
				r.CreatedAt.Format("02/01/2006 15:04"),
				name,
				fmt.Sprintf("%d/%d", r.Score, r.MaxScore),
				r.Observation)
		}
	}),
}

func init() {
	resultsCmd.Flags().Bool("no-ui", false, "plain text output")
}
