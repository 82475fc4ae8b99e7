// Package graph renders a domain's fixed cycle as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/gyre/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Current string
}

// Render produces Mermaid flowchart syntax for the domain's cycle.
// Semantic styling:
//   - Start state: ((Circle))
//   - End state: [[Subroutine]]
//   - Others: [Rectangle]
//   - The wraparound edge (end -> start) is dotted.
//
// Node IDs are positional (s0, s1, ...) so state names never collide with
// Mermaid keywords ("end" being the obvious offender); the declared name is
// kept as the label.
func Render(dom *domain.Domain[string], overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := dom.States()
	n := len(states)

	for i, state := range states {
		opener, closer := "[", "]"
		switch i {
		case 0:
			opener, closer = "((", "))" // Circle
		case n - 1:
			if n > 1 {
				opener, closer = "[[", "]]" // Subroutine
			}
		}
		sb.WriteString(fmt.Sprintf("    s%d%s\"%s\"%s\n", i, opener, escapeLabel(state), closer))

		arrow := "-->"
		if i == n-1 {
			arrow = "-.->" // wraparound
		}
		sb.WriteString(fmt.Sprintf("    s%d %s s%d\n", i, arrow, (i+1)%n))
	}

	if overlay != nil && overlay.Current != "" {
		if idx, ok := dom.IndexOf(overlay.Current); ok {
			sb.WriteString("\n    %% Overlay Styles\n")
			// Force black text for high-contrast regardless of theme.
			sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
			sb.WriteString(fmt.Sprintf("    class s%d current;\n", idx))
		}
	}

	return sb.String()
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
