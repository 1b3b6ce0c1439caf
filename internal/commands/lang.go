package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitssourat/aji/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:   "lang [fr|ar]",
	Short: "Show or switch the interface language",
	Args:  cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Printf("%s: %s (%s)\n", provider.T("language"), provider.T("languageName"), provider.Dir())
			return
		}
		l, err := i18n.Parse(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := provider.SetLanguage(l); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ %s: %s\n", provider.T("language"), provider.T("languageName"))
	}),
}
