package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitssourat/aji/internal/faq"
)

var faqCmd = &cobra.Command{
	Use:   "faq [query]",
	Short: "Search the frequently asked questions",
	Long: `Search the frequently asked questions in the active language.

Examples:
  aji faq protocole
  aji faq --category Santé poids`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		w := faq.New(faq.Catalog(provider))
		category, _ := cmd.Flags().GetString("category")
		w.SelectCategory(category)
		w.SetQuery(strings.Join(args, " "))

		if cmd.Flags().Changed("list-categories") {
			for _, c := range w.Categories() {
				fmt.Println(c)
			}
			return
		}

		items := w.Filtered()
		if len(items) == 0 {
			fmt.Printf("%s. %s\n", provider.T("noQuestionsFound"), provider.T("tryAnotherSearch"))
			return
		}
		fmt.Printf("%d %s\n\n", len(items), provider.T("questionsFound"))
		for _, it := range items {
			fmt.Printf("[%s] %s\n    %s\n\n", it.Category, it.Question, it.Answer)
		}
	}),
}

func init() {
	faqCmd.Flags().StringP("category", "c", "", "only show questions of this category")
	faqCmd.Flags().Bool("list-categories", false, "list the categories")
}
