package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LizeLing/JSONVisualizer/internal/config"
	apperrors "github.com/LizeLing/JSONVisualizer/pkg/errors"
	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
	"github.com/LizeLing/JSONVisualizer/pkg/observability"
	"github.com/LizeLing/JSONVisualizer/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path ("" derives from input, "-" is stdout)
	format     string // output format: html, text, json, dot, svg, png
	searchTerm string // substring to highlight in the rendered tree
	annotate   bool   // mark highlighted lines in text output
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	"html": true, "text": true, "json": true,
	"dot": true, "svg": true, "png": true,
}

// newRenderCmd creates the render command for writing a document's tree to a
// static format. HTML mirrors the interactive tree with collapsible sections;
// dot, svg, and png go through Graphviz.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: config.DefaultFormat}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON document's tree to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			if !cmd.Flags().Changed("format") {
				if cfg, err := config.Load(); err == nil {
					opts.format = cfg.DefaultFormat
				}
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derives from input, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: html (default), text, json, dot, svg, png")
	cmd.Flags().StringVarP(&opts.searchTerm, "search", "s", "", "highlight keys and values containing this substring")
	cmd.Flags().BoolVar(&opts.annotate, "annotate", false, "mark highlighted lines in text output")

	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'html', 'text', 'json', 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// outputPath derives the output file path from the flags and input path.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	value, label, err := loadDocument(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed %s: %d nodes", label, jsontree.Count(value))

	root, err := jsontree.Build(value, jsontree.BuildOptions{
		Label:      label,
		SearchTerm: opts.searchTerm,
	})
	if err != nil {
		return err
	}

	renderStart := time.Now()
	data, err := renderTree(ctx, root, opts)
	observability.Document().OnRenderComplete(ctx, opts.format, len(data), time.Since(renderStart), err)
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input, opts.format)
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", label))
	printFile(path)
	printDetail("%d nodes, %d bytes", root.Count(), len(data))
	return nil
}

// renderTree dispatches to the sink for the requested format.
func renderTree(ctx context.Context, root *jsontree.Node, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case "html":
		return render.HTMLDocument(root), nil
	case "text":
		return render.Text(root, render.TextOptions{Annotate: opts.annotate}), nil
	case "json":
		return render.JSON(root)
	case "dot":
		return []byte(render.ToDOT(root)), nil
	case "svg":
		return render.SVG(ctx, render.ToDOT(root))
	case "png":
		return render.PNG(ctx, render.ToDOT(root))
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format: %s", opts.format)
	}
}
