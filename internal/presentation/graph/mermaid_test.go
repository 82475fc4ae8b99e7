package graph_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/aretw0/gyre/internal/presentation/graph"
	"github.com/aretw0/gyre/pkg/domain"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		states   []string
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name:   "Start And End Shapes",
			states: []string{"start", "middle", "finish"},
			contains: []string{
				"s0((\"start\"))",
				"s1[\"middle\"]",
				"s2[[\"finish\"]]",
			},
		},
		{
			name:   "Wraparound Edge Is Dotted",
			states: []string{"a", "b"},
			contains: []string{
				"s0 --> s1",
				"s1 -.-> s0",
			},
		},
		{
			name:   "Reserved Names Are Safe As Labels",
			states: []string{"start", "end"},
			contains: []string{
				"s1[[\"end\"]]",
			},
		},
		{
			name:    "Current Overlay",
			states:  []string{"on", "off"},
			overlay: &graph.Overlay{Current: "off"},
			contains: []string{
				"classDef current",
				"class s1 current;",
			},
		},
		{
			name:    "Overlay Ignores Non Members",
			states:  []string{"a", "b"},
			overlay: &graph.Overlay{Current: "zzz"},
			contains: []string{
				"graph LR",
			},
		},
		{
			name:   "Label Quote Escaping",
			states: []string{`say "hi"`},
			contains: []string{
				"s0((\"say 'hi'\"))",
			},
		},
		{
			name:   "Single State Self Loop",
			states: []string{"only"},
			contains: []string{
				"s0 -.-> s0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.Render(domain.Must(tt.states...), tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}

	t.Run("Non Member Overlay Emits No Style Block", func(t *testing.T) {
		out := graph.Render(domain.Must("a", "b"), &graph.Overlay{Current: "zzz"})
		if strings.Contains(out, "classDef") {
			t.Errorf("unexpected overlay block:\n%s", out)
		}
	})
}

func TestRender_Golden(t *testing.T) {
	d := domain.Must("start", "next", "rollback", "error", "end")
	out := graph.Render(d, &graph.Overlay{Current: "rollback"})

	g := goldie.New(t)
	g.Assert(t, "cycle", []byte(out))
}
