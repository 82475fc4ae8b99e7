// Package cli contains the command logic behind cmd/gyre, kept separate
// from the cobra wiring so it can be tested with plain option structs.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/gyre"
	"github.com/aretw0/gyre/internal/logging"
	yamldecl "github.com/aretw0/gyre/pkg/adapters/yaml"
	"github.com/aretw0/gyre/pkg/domain"
)

// WalkOptions contains the configuration for the 'walk' command.
type WalkOptions struct {
	DeclPath string
	From     string // starting state; empty means the domain's start
	Once     bool   // bounded walk instead of cyclic
	Reverse  bool   // consume backward
	Take     int    // element count for cyclic walks
	Debug    bool
}

// RunWalk loads the declaration and writes the traversal to out, one state
// per line.
func RunWalk(opts WalkOptions, out io.Writer) error {
	nav, err := buildNavigator(opts.DeclPath, opts.From, opts.Debug)
	if err != nil {
		return err
	}

	var states []string
	switch {
	case opts.Once:
		walk := nav.WalkOnce()
		if opts.Reverse {
			states = walk.CollectBack()
		} else {
			states = walk.Collect()
		}
	default:
		if opts.Take <= 0 {
			return fmt.Errorf("cyclic walks never terminate; use --take or --once")
		}
		walk := nav.Walk()
		if opts.Reverse {
			states = walk.TakeBack(opts.Take)
		} else {
			states = walk.Take(opts.Take)
		}
	}

	for _, s := range states {
		fmt.Fprintln(out, s)
	}
	return nil
}

// buildNavigator is the shared setup path: declaration -> domain -> navigator.
func buildNavigator(declPath, from string, debug bool) (*gyre.Navigator[string], error) {
	dom, err := loadDomain(declPath)
	if err != nil {
		return nil, err
	}

	if from == "" {
		from = dom.Start()
	}

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	nav, err := gyre.NewNavigator(dom, from, gyre.WithLogger[string](logger))
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	return nav, nil
}

func loadDomain(declPath string) (*domain.Domain[string], error) {
	decl, err := yamldecl.Load(declPath)
	if err != nil {
		return nil, err
	}
	return decl.Domain()
}
