package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tommct/publishutil/figsize"
	"github.com/tommct/publishutil/figure"
	"github.com/tommct/publishutil/labels"
	"github.com/tommct/publishutil/renderer"
	canvasrenderer "github.com/tommct/publishutil/renderer/canvas"
	"github.com/tommct/publishutil/style"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	root := &cobra.Command{
		Use:           "publishutil",
		Short:         "Publication figure sizing and panel labeling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(stylesCmd(), figsizeCmd(), renderCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List bundled publication styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range style.Available() {
				st, err := style.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), st)
			}
			return nil
		},
	}
}

func figsizeCmd() *cobra.Command {
	var styleName, spec string
	cmd := &cobra.Command{
		Use:   "figsize",
		Short: "Compute a figure size for a style",
		Example: `  publishutil figsize --style nature --spec "2col"
  publishutil figsize --style nature --spec "1col x 16:9"
  publishutil figsize --style path/to/style.yml --spec "0.5w x 0.4h"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := style.Resolve(styleName)
			if err != nil {
				return err
			}
			req, err := figsize.ParseSpec(spec)
			if err != nil {
				return err
			}
			size, err := figsize.Compute(st, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), size)
			return nil
		},
	}
	cmd.Flags().StringVarP(&styleName, "style", "s", "", "builtin style name or path to a style file")
	cmd.Flags().StringVar(&spec, "spec", "1col", `size spec, e.g. "2col", "0.75w", "2col x 16:9"`)
	_ = cmd.MarkFlagRequired("style")
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		styleName, spec, out, debugPath string
		rows, cols                      int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a labeled preview figure",
		Long: `Render builds a grid of empty panels at the computed figure size, places
panel labels per the style, and writes the result. The output format follows
the file extension (.pdf, .png or .svg).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := style.Resolve(styleName)
			if err != nil {
				return err
			}
			req, err := figsize.ParseSpec(spec)
			if err != nil {
				return err
			}
			format, err := canvasrenderer.ParseFormat(filepath.Ext(out))
			if err != nil {
				return err
			}
			return render(st, req, rows, cols, out, debugPath, canvasrenderer.New(format))
		},
	}
	cmd.Flags().StringVarP(&styleName, "style", "s", "", "builtin style name or path to a style file")
	cmd.Flags().StringVar(&spec, "spec", "2col", "size spec for the figure")
	cmd.Flags().StringVarP(&out, "out", "o", "figure.pdf", "output file (.pdf, .png or .svg)")
	cmd.Flags().IntVar(&rows, "rows", 2, "panel grid rows")
	cmd.Flags().IntVar(&cols, "cols", 2, "panel grid columns")
	cmd.Flags().StringVar(&debugPath, "debug", "", "write figure layout JSON to this path")
	_ = cmd.MarkFlagRequired("style")
	return cmd
}

// render wires sizing, the panel grid, label placement and the renderer.
func render(st *style.Style, req figsize.Request, rows, cols int, out, debugPath string, r renderer.Renderer) error {
	size, err := figsize.Compute(st, req)
	if err != nil {
		return err
	}
	logger.Info("computed figure size", "style", st.Name, "size", size)

	fig := figure.New(size.WH())
	m := map[*figure.Region]string{}
	for i, region := range panelGrid(fig, rows, cols) {
		m[region] = panelName(i)
	}

	placed := labels.Draw(fig, st, m, labels.Shift{})
	logger.Info("placed panel labels", "count", len(placed))

	if debugPath != "" {
		if err := figure.WriteDebugJSON(fig, debugPath); err != nil {
			return fmt.Errorf("writing layout JSON: %w", err)
		}
	}

	data, err := r.Render(fig)
	if err != nil {
		return fmt.Errorf("rendering figure: %w", err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote figure", "path", out, "bytes", len(data))
	return nil
}

// panelGrid lays out rows x cols regions with matplotlib-like margins.
func panelGrid(fig *figure.Figure, rows, cols int) []*figure.Region {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	const (
		left, right = 0.08, 0.03
		bottom, top = 0.08, 0.05
		wgap, hgap  = 0.08, 0.10
	)
	cellW := (1 - left - right - wgap*float64(cols-1)) / float64(cols)
	cellH := (1 - bottom - top - hgap*float64(rows-1)) / float64(rows)

	var regions []*figure.Region
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := left + float64(col)*(cellW+wgap)
			// first region at the top-left, reading order
			y := 1 - top - cellH - float64(row)*(cellH+hgap)
			regions = append(regions, fig.AddRegion(x, y, cellW, cellH))
		}
	}
	return regions
}

// panelName yields A..Z, then AA, AB, ...
func panelName(i int) string {
	name := string(rune('A' + i%26))
	for i = i/26 - 1; i >= 0; i = i/26 - 1 {
		name = string(rune('A'+i%26)) + name
	}
	return name
}
