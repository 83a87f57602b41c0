package cmd

import (
	"fmt"

	"swipedeck/internal/cli"
	"swipedeck/internal/store"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened decks and their saved pages",
	RunE:  runRecent,
}

var flagForget string

func init() {
	recentCmd.Flags().StringVar(&flagForget, "forget", "", "Drop the saved state for a deck key")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(_ *cobra.Command, _ []string) error {
	st, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if flagForget != "" {
		if err := st.Forget(flagForget); err != nil {
			return err
		}
		fmt.Printf("  Forgot %s\n", flagForget)
		return nil
	}

	records, err := st.Recent(20)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("  No decks opened yet.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%d/%d", r.LastPage+1, r.PageCount),
			cli.FormatAge(r.OpenedAt),
			r.Key,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent decks",
		Headers: []string{"Deck", "Page", "Opened", "Key"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
