package cli

import (
	"fmt"
	"io"
	"strings"

	yamldecl "github.com/aretw0/gyre/pkg/adapters/yaml"
)

// ValidateOptions contains the configuration for the 'validate' command.
type ValidateOptions struct {
	DeclPath string
}

// RunValidate loads the declaration and writes a summary of the domain.
// A declaration that fails to produce a domain returns the underlying error.
func RunValidate(opts ValidateOptions, out io.Writer) error {
	decl, err := yamldecl.Load(opts.DeclPath)
	if err != nil {
		return err
	}

	dom, err := decl.Domain()
	if err != nil {
		return err
	}

	name := decl.Name
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Fprintf(out, "Domain:  %s\n", name)
	fmt.Fprintf(out, "States:  %d (%s)\n", dom.Len(), strings.Join(dom.States(), " -> "))
	fmt.Fprintf(out, "Start:   %s\n", dom.Start())
	fmt.Fprintf(out, "End:     %s\n", dom.End())
	fmt.Fprintf(out, "Flip:    %v\n", dom.IsBinary())
	return nil
}
