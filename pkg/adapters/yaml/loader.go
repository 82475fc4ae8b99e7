// Package yaml loads domain declarations from YAML documents.
//
// It is the concrete "declaration mechanism" shipped with the library: a
// small document naming a domain and listing its states in order. Hosts
// embedding gyre in Go code will usually declare domains directly with
// domain.New; this adapter exists for tooling and configuration-driven
// hosts.
package yaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/gyre/pkg/domain"
)

// Declaration is the on-disk shape of a domain:
//
//	name: deploy-phases
//	states:
//	  - start
//	  - next
//	  - rollback
//	  - error
//	  - end
type Declaration struct {
	Name   string   `yaml:"name"`
	States []string `yaml:"states"`
}

// Parse reads a single declaration document.
func Parse(r io.Reader) (*Declaration, error) {
	var decl Declaration
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil {
		return nil, fmt.Errorf("failed to decode declaration: %w", err)
	}
	return &decl, nil
}

// Load reads a declaration from a file.
func Load(path string) (*Declaration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declaration: %w", err)
	}
	defer f.Close()

	decl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decl, nil
}

// Domain builds the ordered domain the declaration describes.
// Validation (empty, duplicates) is delegated to domain.New and its
// sentinel errors surface wrapped with the declaration name.
func (d *Declaration) Domain() (*domain.Domain[string], error) {
	dom, err := domain.New(d.States...)
	if err != nil {
		return nil, fmt.Errorf("declaration %q: %w", d.Name, err)
	}
	return dom, nil
}
