package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// newSearchCmd creates the search command for finding keys and values that
// contain a substring. Matching is case-insensitive; hits are reported with
// their dot/bracket path into the document.
func newSearchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <term> [file]",
		Short: "Find keys and values containing a substring",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 2 {
				input = args[1]
			}
			return runSearch(cmd.Context(), args[0], input, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print hits as JSON")
	return cmd
}

func runSearch(ctx context.Context, term, input string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	value, label, err := loadDocument(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed %s: %d nodes", label, jsontree.Count(value))

	hits, err := jsontree.Search(value, term, jsontree.SearchOptions{})
	if err != nil {
		return err
	}

	if asJSON {
		if hits == nil {
			hits = []jsontree.Hit{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		printWarning("No matches for %q", term)
		return nil
	}

	printSuccess("%d matches for %q", len(hits), term)
	printHitsTable(hits)
	return nil
}

// printHitsTable prints the hits as a bordered table of path, key, and value.
func printHitsTable(hits []jsontree.Hit) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(hits))
	for _, hit := range hits {
		value := jsontree.CanonicalString(hit.Value)
		if len(value) > 60 {
			value = value[:57] + "..."
		}
		rows = append(rows, []string{hit.Path, hit.Key, value})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Key", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
