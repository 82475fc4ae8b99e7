package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/gyre/internal/presentation/graph"
	"github.com/aretw0/gyre/internal/presentation/tui"
)

// GraphOptions contains the configuration for the 'graph' command.
type GraphOptions struct {
	DeclPath string
	Current  string // state to highlight, empty for none
	Pretty   bool   // render through the terminal markdown renderer
}

// RunGraph writes a Mermaid diagram of the domain's cycle to out.
func RunGraph(opts GraphOptions, out io.Writer) error {
	dom, err := loadDomain(opts.DeclPath)
	if err != nil {
		return err
	}

	if opts.Current != "" && !dom.Contains(opts.Current) {
		return fmt.Errorf("--current %q is not a state of the domain", opts.Current)
	}

	var overlay *graph.Overlay
	if opts.Current != "" {
		overlay = &graph.Overlay{Current: opts.Current}
	}
	diagram := graph.Render(dom, overlay)

	if opts.Pretty {
		render := tui.NewRenderer()
		pretty, err := render("```mermaid\n" + diagram + "```\n")
		if err != nil {
			return fmt.Errorf("failed to render diagram: %w", err)
		}
		fmt.Fprint(out, pretty)
		return nil
	}

	fmt.Fprint(out, diagram)
	return nil
}
