package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"swipedeck/internal/cli"
	"swipedeck/internal/deck"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [path...]",
	Short: "List the pages of a deck without opening it",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPages,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

func runPages(_ *cobra.Command, args []string) error {
	d, err := deck.Load(args)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(pagesTable(d)))
	fmt.Println()
	return nil
}

func pagesTable(d *deck.Deck) cli.Table {
	rows := make([][]string, 0, d.Count())
	for i, p := range d.Pages {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Title,
			cli.FormatNumber(int64(len(strings.Fields(p.Body)))),
			cli.FormatBytes(p.Size),
		})
	}
	return cli.Table{
		Title:   fmt.Sprintf("%s — %d pages", d.Name, d.Count()),
		Headers: []string{"#", "Title", "Words", "Size"},
		Rows:    rows,
	}
}
