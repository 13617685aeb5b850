package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apperrors "github.com/LizeLing/JSONVisualizer/pkg/errors"
	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// newViewCmd creates the view command for interactive tree browsing.
// With no argument (or "-") the document is read from stdin.
func newViewCmd() *cobra.Command {
	var searchTerm string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a JSON document as an interactive tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runView(cmd.Context(), input, searchTerm)
		},
	}

	cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "highlight keys and values containing this substring")
	return cmd
}

func runView(ctx context.Context, input, searchTerm string) error {
	logger := loggerFromContext(ctx)

	value, label, err := loadDocument(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed %s: %d nodes", label, jsontree.Count(value))

	root, err := jsontree.Build(value, jsontree.BuildOptions{
		Label:      label,
		SearchTerm: searchTerm,
	})
	if err != nil {
		return err
	}
	return runViewer(value, root)
}

// loadDocument reads and parses the document from a file path or stdin ("-").
// The returned label is the file's base name, or "stdin" when piped.
func loadDocument(input string) (jsontree.Value, string, error) {
	if input == "-" {
		value, err := jsontree.Parse(os.Stdin)
		return value, "stdin", err
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "failed to open %s", input)
	}
	defer f.Close()

	value, err := jsontree.Parse(f)
	return value, filepath.Base(input), err
}
