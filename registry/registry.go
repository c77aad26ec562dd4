//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use
// of this software will be governed by the GNU Lesser General Public Licence v3
//

package registry

//go:generate mockgen -source registry.go -destination registry_mock.go -package registry

import (
	"fmt"
	"sort"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
)

// Provision is one entry of the legal-document index: a provision identifier
// as emitted by the evaluators, with its article number and a short citation.
type Provision struct {
	ID      string `yaml:"id"`
	Article int    `yaml:"article"`
	Title   string `yaml:"title"`
}

// Index resolves provision identifiers against the canonical register of
// constitutional text. The rule core never depends on it at evaluation time;
// it exists for reporting and for the cross-reference consistency check.
type Index interface {
	// Lookup resolves a provision identifier, e.g. "55(2)".
	Lookup(id string) (Provision, bool)

	// All returns every indexed provision, ordered by identifier.
	All() []Provision
}

//go:embed provisions.yaml
var provisionsYAML []byte

type yamlIndex struct {
	byID  map[string]Provision
	order []string
}

// NewIndex loads the embedded provision register.
func NewIndex() (Index, error) {
	var doc struct {
		Provisions []Provision `yaml:"provisions"`
	}
	if err := yaml.Unmarshal(provisionsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse provision register: %w", err)
	}
	idx := &yamlIndex{byID: make(map[string]Provision, len(doc.Provisions))}
	for _, p := range doc.Provisions {
		if _, dup := idx.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate provision %q in register", p.ID)
		}
		idx.byID[p.ID] = p
		idx.order = append(idx.order, p.ID)
	}
	sort.Strings(idx.order)
	return idx, nil
}

func (i *yamlIndex) Lookup(id string) (Provision, bool) {
	p, ok := i.byID[id]
	return p, ok
}

func (i *yamlIndex) All() []Provision {
	out := make([]Provision, 0, len(i.order))
	for _, id := range i.order {
		out = append(out, i.byID[id])
	}
	return out
}

// Cite renders a violation with the citation of its provision, falling back
// to the plain error text for provisions the index does not know.
func Cite(idx Index, v *common.Violation) string {
	p, ok := idx.Lookup(v.Provision)
	if !ok {
		return v.Error()
	}
	return fmt.Sprintf("Art. %s (%s): %s", p.ID, p.Title, v.Detail())
}
